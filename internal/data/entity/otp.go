package entity

import (
	"time"
)

// OTP is a short-lived verification code. Signup and password-reset flows
// share the same ledger and code space; issuing a new code replaces any
// earlier codes for the same email.
type OTP struct {
	BaseSimple
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
}
