package postgres

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_RecordUser(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockError     error
		expectedError bool
	}{
		{
			name:          "new user",
			userID:        123,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "already recorded user",
			userID:        456,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("connection lost"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "INSERT INTO users \\(user_id\\) VALUES \\(\\$1\\) ON CONFLICT \\(user_id\\) DO NOTHING"

			if tt.mockError != nil {
				mock.ExpectExec(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectExec(query).WithArgs(tt.userID).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = repo.RecordUser(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_CountUsers(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:          "users recorded",
			mockRows:      sqlmock.NewRows([]string{"count"}).AddRow(5),
			expectedCount: 5,
			expectedError: false,
		},
		{
			name:          "no users",
			mockRows:      sqlmock.NewRows([]string{"count"}).AddRow(0),
			expectedCount: 0,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("connection lost"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT COUNT\\(\\*\\) FROM users"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			count, err := repo.CountUsers()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
