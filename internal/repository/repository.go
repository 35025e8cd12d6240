package repository

import (
	"vocaquiz/internal/domain"
)

// UserRepository defines the append-only user log operations
type UserRepository interface {
	RecordUser(userID int64) error
	CountUsers() (int, error)
}

// VocabRepository defines vocabulary source operations
type VocabRepository interface {
	LoadAll() ([]domain.WordPair, error)
}
