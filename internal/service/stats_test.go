package service

import (
	"fmt"
	"testing"

	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_LogUsage(t *testing.T) {
	tests := []struct {
		name          string
		mockCount     int
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful log",
			mockCount:     42,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "count fails",
			mockCount:     0,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("CountUsers").Return(tt.mockCount, tt.mockError)

			quiz := newTestQuizService(twoWordVocab())
			service := NewStatsService(mockRepo, quiz, testutil.NewTestLogger())

			err := service.LogUsage()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
