package handler

import (
	"errors"
	"fmt"
	"strings"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLimitButton handles the preset limit buttons (5/10/15). Outside
// the limit prompt the same digits are just text, e.g. an answer.
func (h *Handler) handleLimitButton(c tele.Context) error {
	if h.quizService.AwaitingLimit(c.Sender().ID) {
		return h.applyLimit(c, c.Text())
	}
	return h.submitAnswer(c, strings.TrimSpace(c.Text()))
}

// handleCustomLimit prompts for a free-form question count
func (h *Handler) handleCustomLimit(c tele.Context) error {
	return c.Send("📌 How many questions? Type a number.")
}

// handleFinish handles the finish button
func (h *Handler) handleFinish(c tele.Context) error {
	userID := c.Sender().ID

	summary, ok := h.quizService.Stop(userID)
	if !ok {
		return c.Send("There is no quiz running.", mainMenuMarkup())
	}

	return c.Send(formatSummary(*summary), mainMenuMarkup())
}

// handleText routes free text: a limit while the session awaits one,
// otherwise an answer to the outstanding question.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if h.quizService.AwaitingLimit(userID) {
		return h.applyLimit(c, text)
	}

	return h.submitAnswer(c, text)
}

// applyLimit configures the session and sends the first question
func (h *Handler) applyLimit(c tele.Context, text string) error {
	userID := c.Sender().ID

	word, summary, err := h.quizService.SetLimit(userID, text)
	switch {
	case errors.Is(err, service.ErrInvalidLimit):
		return c.Send("📌 Please send a whole number of questions, 0 or more.")
	case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrLimitAlreadySet):
		return c.Send("⚠️ Please start the quiz first! Press «🎯 Start quiz».", mainMenuMarkup())
	case err != nil:
		h.logger.Error("Failed to set limit", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Something went wrong. Please try again.")
	}

	if summary != nil {
		return c.Send(formatSummary(*summary), mainMenuMarkup())
	}

	if err := c.Send("📌 Quiz started!", quizMarkup()); err != nil {
		return err
	}
	return c.Send(formatQuestion(word))
}

// submitAnswer judges the answer and advances the quiz on a correct one
func (h *Handler) submitAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	correct, err := h.quizService.SubmitAnswer(userID, text)
	if errors.Is(err, service.ErrNoActiveQuestion) {
		return c.Send("⚠️ Please start the quiz first! Press «🎯 Start quiz».", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to submit answer", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send("Something went wrong. Please try again.")
	}

	if !correct {
		return c.Send("❌ Wrong! Try again.")
	}

	if err := c.Send("🎉 Correct! Well done! ✅"); err != nil {
		return err
	}

	word, summary, err := h.quizService.NextQuestion(userID)
	if err != nil {
		// Session already gone (e.g. a concurrent stop); nothing to advance.
		h.logger.Warn("No session to advance", zap.Int64("user_id", userID))
		return nil
	}

	if summary != nil {
		return c.Send(formatSummary(*summary), mainMenuMarkup())
	}
	return c.Send(formatQuestion(word))
}

// formatQuestion renders the question prompt for a word
func formatQuestion(word string) string {
	return fmt.Sprintf("📌 Write the Russian translation of *%s*.", word)
}

// formatSummary renders the end-of-quiz report
func formatSummary(s domain.Summary) string {
	return fmt.Sprintf(
		"🛑 *Quiz finished!*\n📊 *Questions:* %d\n📌 *Attempts:* %d",
		s.TotalQuestions,
		s.Attempts,
	)
}
