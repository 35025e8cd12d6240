package service

import (
	"vocaquiz/internal/domain"
	"vocaquiz/internal/vocab"

	"go.uber.org/zap"
)

// QuizService exposes the quiz operations keyed by user identifier. It owns
// the session registry and removes sessions once they finish, so the
// registry only ever holds live sessions.
type QuizService struct {
	registry *SessionRegistry
	vocab    *vocab.Store
	logger   *zap.Logger
}

// NewQuizService creates a quiz service over the given vocabulary
func NewQuizService(store *vocab.Store, logger *zap.Logger) *QuizService {
	return &QuizService{
		registry: NewSessionRegistry(),
		vocab:    store,
		logger:   logger,
	}
}

// StartNew creates a fresh session for the user. If a session already
// exists it is terminated first and its summary returned; callers decide
// whether to surface it or discard it.
func (s *QuizService) StartNew(userID int64) *domain.Summary {
	fresh := NewQuizSession(userID, s.vocab)
	prev := s.registry.Put(userID, fresh)
	if prev == nil {
		s.logger.Info("quiz session started", zap.Int64("user_id", userID))
		return nil
	}

	summary := prev.Stop()
	s.logger.Info("quiz session restarted",
		zap.Int64("user_id", userID),
		zap.Int("prior_questions", summary.TotalQuestions),
		zap.Int("prior_attempts", summary.Attempts),
	)
	return &summary
}

// SetLimit configures the user's session and returns the first question,
// or the final summary if the limit is zero or the vocabulary is empty of
// unseen words. Returns ErrNoSession if the user has no session.
func (s *QuizService) SetLimit(userID int64, text string) (string, *domain.Summary, error) {
	sess, ok := s.registry.Get(userID)
	if !ok {
		return "", nil, ErrNoSession
	}

	word, summary, err := sess.SetLimit(text)
	if err != nil {
		return "", nil, err
	}
	if summary != nil {
		s.registry.Remove(userID, sess)
	}
	return word, summary, nil
}

// NextQuestion advances the user's session to the next question, or
// finishes it and returns the summary. Returns ErrNoSession if the user
// has no session.
func (s *QuizService) NextQuestion(userID int64) (string, *domain.Summary, error) {
	sess, ok := s.registry.Get(userID)
	if !ok {
		return "", nil, ErrNoSession
	}

	word, summary := sess.NextQuestion()
	if summary != nil {
		s.registry.Remove(userID, sess)
	}
	return word, summary, nil
}

// SubmitAnswer judges the user's answer against their outstanding question.
// Returns ErrNoActiveQuestion when the user has no session or no question
// is outstanding.
func (s *QuizService) SubmitAnswer(userID int64, text string) (bool, error) {
	sess, ok := s.registry.Get(userID)
	if !ok {
		return false, ErrNoActiveQuestion
	}
	return sess.SubmitAnswer(text)
}

// Stop terminates the user's session and returns its summary. Stopping a
// user with no session is a no-op reported by ok == false.
func (s *QuizService) Stop(userID int64) (*domain.Summary, bool) {
	sess, ok := s.registry.Get(userID)
	if !ok {
		return nil, false
	}

	summary := sess.Stop()
	s.registry.Remove(userID, sess)
	s.logger.Info("quiz session stopped",
		zap.Int64("user_id", userID),
		zap.Int("questions", summary.TotalQuestions),
		zap.Int("attempts", summary.Attempts),
	)
	return &summary, true
}

// AwaitingLimit reports whether the user's session still needs its
// question limit. Used by the driver to route free text.
func (s *QuizService) AwaitingLimit(userID int64) bool {
	sess, ok := s.registry.Get(userID)
	return ok && sess.AwaitingLimit()
}

// ActiveSessions returns the number of sessions currently in the registry
func (s *QuizService) ActiveSessions() int {
	return s.registry.Len()
}
