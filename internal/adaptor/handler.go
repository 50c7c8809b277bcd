package adaptor

import (
	"clicksafe/internal/usecase"
	"clicksafe/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth *AuthHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, config, log),
	}
}
