package service

import (
	"fmt"
	"testing"

	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Record(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockError     error
		expectedError bool
	}{
		{
			name:          "user recorded",
			userID:        123,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			userID:        456,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("RecordUser", tt.userID).Return(tt.mockError)

			service := NewUserService(mockRepo)

			err := service.Record(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Count(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("CountUsers").Return(7, nil)

	service := NewUserService(mockRepo)

	count, err := service.Count()
	assert.NoError(t, err)
	assert.Equal(t, 7, count)

	mockRepo.AssertExpectations(t)
}
