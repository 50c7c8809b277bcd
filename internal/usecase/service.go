package usecase

import (
	"time"

	"clicksafe/internal/data/repository"
	"clicksafe/pkg/mailer"
	"clicksafe/pkg/token"
	"clicksafe/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
}

func NewService(
	repo *repository.Repository,
	tokens *token.Service,
	dispatcher mailer.CodeDispatcher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	otpTTL := time.Duration(config.OTP.ExpirySeconds) * time.Second

	return &Service{
		Auth: NewAuthService(repo, tokens, dispatcher, otpTTL, log),
	}
}
