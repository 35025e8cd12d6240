package service

import (
	"vocaquiz/internal/repository"

	"go.uber.org/zap"
)

// StatsService reports usage figures for the periodic stats job
type StatsService struct {
	userRepo repository.UserRepository
	quiz     *QuizService
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo repository.UserRepository, quiz *QuizService, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo: userRepo,
		quiz:     quiz,
		logger:   logger,
	}
}

// LogUsage logs the total recorded users and the active session count
func (s *StatsService) LogUsage() error {
	users, err := s.userRepo.CountUsers()
	if err != nil {
		s.logger.Error("Failed to count users", zap.Error(err))
		return err
	}

	s.logger.Info("Usage stats",
		zap.Int("total_users", users),
		zap.Int("active_sessions", s.quiz.ActiveSessions()),
	)
	return nil
}
