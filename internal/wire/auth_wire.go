package wire

import (
	"clicksafe/internal/adaptor"
	"clicksafe/pkg/middleware"
	"clicksafe/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/send-otp", authHandler.SendOTP)
	r.Post("/api/auth/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/signin", authHandler.SignIn)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(tokens, log)).Get("/api/auth/profile", authHandler.Profile)
}
