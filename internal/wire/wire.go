package wire

import (
	"net/http"
	"time"

	"clicksafe/internal/adaptor"
	"clicksafe/internal/data/repository"
	"clicksafe/internal/dto/response"
	"clicksafe/internal/usecase"
	"clicksafe/pkg/mailer"
	"clicksafe/pkg/middleware"
	"clicksafe/pkg/token"
	"clicksafe/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependency graph
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewService(
		config.JWT.Secret,
		time.Duration(config.JWT.ExpiryDays)*24*time.Hour,
	)

	dispatcher := selectDispatcher(config, logger)

	service := usecase.NewService(repo, tokens, dispatcher, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

// selectDispatcher picks the mail transport from configuration. Missing
// SMTP credentials mean the diagnostic log sink, a dev/test-only setup.
func selectDispatcher(config *utils.Config, logger *zap.Logger) mailer.CodeDispatcher {
	if config.Email.User != "" && config.Email.Password != "" {
		logger.Info("Using SMTP code dispatcher",
			zap.String("host", config.Email.Host),
			zap.Int("port", config.Email.Port))
		return mailer.NewSMTPDispatcher(config.Email)
	}

	logger.Warn("SMTP transport not configured, OTP codes will be logged")
	return mailer.NewLogDispatcher(logger)
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, tokens *token.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, tokens, logger)

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, response.HealthEnvelope{
			Status:    "OK",
			Message:   "ClickSafe API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	return r
}
