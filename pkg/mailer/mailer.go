// Package mailer delivers one-time passcodes. Which implementation runs is a
// wiring decision driven by configuration, never by inspecting the
// environment at call time.
package mailer

import "context"

type Purpose string

const (
	PurposeVerification  Purpose = "email_verification"
	PurposePasswordReset Purpose = "password_reset"
)

// CodeDispatcher sends a passcode to an address. Sends are fire-and-forget
// from the caller's point of view; failures are not retried.
type CodeDispatcher interface {
	Dispatch(ctx context.Context, to string, purpose Purpose, code string) error
}
