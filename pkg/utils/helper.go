package utils

import (
	"strings"
)

// NormalizeEmail lowercases and trims an address so it can serve as the
// unique account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
