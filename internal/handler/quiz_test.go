package handler

import (
	"testing"

	"vocaquiz/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuestion(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{
			name:     "plain word",
			word:     "house",
			expected: "📌 Write the Russian translation of *house*.",
		},
		{
			name:     "word with spaces",
			word:     "front door",
			expected: "📌 Write the Russian translation of *front door*.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatQuestion(tt.word)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  domain.Summary
		expected string
	}{
		{
			name:     "empty quiz",
			summary:  domain.Summary{TotalQuestions: 0, Attempts: 0},
			expected: "🛑 *Quiz finished!*\n📊 *Questions:* 0\n📌 *Attempts:* 0",
		},
		{
			name:     "quiz with retries",
			summary:  domain.Summary{TotalQuestions: 2, Attempts: 3},
			expected: "🛑 *Quiz finished!*\n📊 *Questions:* 2\n📌 *Attempts:* 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSummary(tt.summary)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestKeyboards(t *testing.T) {
	main := mainMenuMarkup()
	assert.Len(t, main.ReplyKeyboard, 1)

	limit := limitMarkup()
	assert.Len(t, limit.ReplyKeyboard, 2)
	assert.Len(t, limit.ReplyKeyboard[0], 3)

	quiz := quizMarkup()
	assert.Len(t, quiz.ReplyKeyboard, 1)
	assert.Len(t, quiz.ReplyKeyboard[0], 1)
}
