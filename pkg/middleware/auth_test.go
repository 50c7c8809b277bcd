package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clicksafe/pkg/token"
	"clicksafe/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	tokens := token.NewService("test-secret", time.Hour)
	accountID := uuid.New()

	var gotID uuid.UUID
	var gotEmail string
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotID, _ = utils.GetAccountIDFromContext(r.Context())
		gotEmail, _ = utils.GetEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(tokens, zap.NewNop())(next)

	t.Run("missing header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "No token provided")
		assert.False(t, called)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("invalid token", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
		assert.False(t, called)
	})

	t.Run("expired token", func(t *testing.T) {
		called = false
		expired, err := token.NewService("test-secret", -time.Minute).Issue(accountID, "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("valid token", func(t *testing.T) {
		called = false
		tok, err := tokens.Issue(accountID, "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, accountID, gotID)
		assert.Equal(t, "a@x.com", gotEmail)
	})
}
