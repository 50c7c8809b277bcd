// Package token issues and verifies the signed bearer tokens that are the
// only session credential. Tokens are self-contained; nothing is persisted
// and there is no revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure every verification problem collapses
// to. Callers must not tell external parties why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	validity time.Duration
}

// NewService builds a token service from the process-wide signing secret.
// Validating the secret itself is a deployment concern, not ours.
func NewService(secret string, validity time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		validity: validity,
	}
}

// Issue mints an HS256 token embedding the account ID and email.
func (s *Service) Issue(accountID uuid.UUID, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: accountID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// Malformed, expired and wrongly signed tokens all fail with ErrInvalidToken.
func (s *Service) Verify(tokenString string) (uuid.UUID, string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}

	return accountID, claims.Email, nil
}
