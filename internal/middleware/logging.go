package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every inbound update and recovers
// handler panics so one bad update cannot take the poller down.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Handler panicked",
						zap.Int64("user_id", c.Sender().ID),
						zap.Any("panic", r),
					)
				}
			}()

			kind := "message"
			if c.Callback() != nil {
				kind = "callback"
			}
			logger.Debug("Handling update",
				zap.String("kind", kind),
				zap.Int64("user_id", c.Sender().ID),
				zap.String("text", c.Text()),
			)

			return next(c)
		}
	}
}
