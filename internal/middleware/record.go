package middleware

import (
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RecordUser creates middleware that logs every sender into the user
// record. Recording failures are logged and never block event handling.
func RecordUser(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				if err := userService.Record(sender.ID); err != nil {
					logger.Error("Failed to record user",
						zap.Int64("user_id", sender.ID),
						zap.Error(err),
					)
				}
			}
			return next(c)
		}
	}
}
