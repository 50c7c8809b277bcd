package mailer

import (
	"context"

	"go.uber.org/zap"
)

// LogDispatcher writes the passcode to the log instead of sending mail.
// This is the dev/test fallback when no SMTP transport is configured; it is
// never selected when transport credentials are present.
type LogDispatcher struct {
	log *zap.Logger
}

func NewLogDispatcher(log *zap.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With(zap.String("dispatcher", "log"))}
}

func (d *LogDispatcher) Dispatch(_ context.Context, to string, purpose Purpose, code string) error {
	d.log.Info("OTP code issued",
		zap.String("email", to),
		zap.String("purpose", string(purpose)),
		zap.String("code", code),
	)
	return nil
}
