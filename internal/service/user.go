package service

import (
	"vocaquiz/internal/repository"
)

// UserService maintains the append-only log of users who have talked to
// the bot. Quiz logic never reads it back.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Record adds the user to the log if not already present
func (s *UserService) Record(userID int64) error {
	return s.userRepo.RecordUser(userID)
}

// Count returns the number of recorded users
func (s *UserService) Count() (int, error) {
	return s.userRepo.CountUsers()
}
