package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start. A running quiz is terminated first and its
// summary reported, matching the stop flow.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if summary, ok := h.quizService.Stop(userID); ok {
		if err := c.Send(formatSummary(*summary)); err != nil {
			return err
		}
	}

	return c.Send(
		"👋 Hi! Press «🎯 Start quiz» to test your vocabulary.",
		mainMenuMarkup(),
	)
}

// handleStartQuiz begins a fresh session and asks for the question limit.
// Any prior session is replaced; its summary is deliberately not shown,
// the user asked for a new quiz.
func (h *Handler) handleStartQuiz(c tele.Context) error {
	userID := c.Sender().ID

	if prior := h.quizService.StartNew(userID); prior != nil {
		h.logger.Info("Replaced running session",
			zap.Int64("user_id", userID),
			zap.Int("prior_questions", prior.TotalQuestions),
		)
	}

	return c.Send(
		"📌 How many questions? Pick a button or press «✏ Enter a number».",
		limitMarkup(),
	)
}
