package handler

import (
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler is the session driver: it maps inbound Telegram events onto quiz
// operations and quiz results back onto outbound messages. It holds no quiz
// state of its own; the session registry is the single source of truth.
type Handler struct {
	bot         *tele.Bot
	quizService *service.QuizService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	quizService *service.QuizService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		quizService: quizService,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Reply keyboard buttons (arrive as plain text, matched by label)
	h.bot.Handle(&btnStartQuiz, h.handleStartQuiz)
	h.bot.Handle(&btnLimit5, h.handleLimitButton)
	h.bot.Handle(&btnLimit10, h.handleLimitButton)
	h.bot.Handle(&btnLimit15, h.handleLimitButton)
	h.bot.Handle(&btnCustomLimit, h.handleCustomLimit)
	h.bot.Handle(&btnFinish, h.handleFinish)

	// Everything else: limit input or an answer, depending on session state
	h.bot.Handle(tele.OnText, h.handleText)
}

// Reply keyboard buttons
var (
	btnStartQuiz   = tele.Btn{Text: "🎯 Start quiz"}
	btnLimit5      = tele.Btn{Text: "5"}
	btnLimit10     = tele.Btn{Text: "10"}
	btnLimit15     = tele.Btn{Text: "15"}
	btnCustomLimit = tele.Btn{Text: "✏ Enter a number"}
	btnFinish      = tele.Btn{Text: "⏹ Finish"}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(btnStartQuiz),
	)
	return menu
}

// limitMarkup returns the question-limit picker keyboard
func limitMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(btnLimit5, btnLimit10, btnLimit15),
		menu.Row(btnCustomLimit),
	)
	return menu
}

// quizMarkup returns the in-quiz keyboard
func quizMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(btnFinish),
	)
	return menu
}
