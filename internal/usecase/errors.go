package usecase

import "errors"

// Sentinel errors for the protocol outcomes the adaptor maps to HTTP codes.
// The messages are the exact strings clients see; sign-in failure is
// deliberately generic so accounts cannot be enumerated, while duplicate
// registration and unknown forgot-password addresses reveal existence on
// purpose (a documented trade-off of the reference behavior).
var (
	ErrAccountExists      = errors.New("User already exists with this email")
	ErrAccountNotFound    = errors.New("User not found")
	ErrInvalidOTP         = errors.New("Invalid or expired OTP")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
