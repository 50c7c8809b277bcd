package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	EmailKey     contextKey = "email"
)

// SetAccountContext attaches the authenticated identity to the context
func SetAccountContext(ctx context.Context, accountID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID.String())
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}

func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(AccountIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}
