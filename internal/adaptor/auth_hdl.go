package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"clicksafe/internal/dto/request"
	"clicksafe/internal/dto/response"
	"clicksafe/internal/usecase"
	"clicksafe/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	code, err := h.service.SendOTP(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "send OTP")
		return
	}

	resp := response.MessageEnvelope{Success: true, Message: "OTP sent successfully"}
	if h.config.App.Debug {
		resp.OTP = code
	}
	utils.ResponseJSON(w, http.StatusOK, resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	if err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.MessageEnvelope{
		Success: true,
		Message: "OTP verified successfully",
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.AuthEnvelope{
		Success: true,
		Message: "Registration successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "sign in")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.AuthEnvelope{
		Success: true,
		Message: "Sign in successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Profile handles GET /api/auth/profile (behind the auth middleware)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "No token provided")
		return
	}

	user, err := h.service.Profile(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err, "fetch profile")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ProfileEnvelope{
		Success: true,
		User:    *user,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	code, err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "forgot password")
		return
	}

	resp := response.MessageEnvelope{Success: true, Message: "Password reset OTP sent successfully"}
	if h.config.App.Debug {
		resp.OTP = code
	}
	utils.ResponseJSON(w, http.StatusOK, resp)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "reset password")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.MessageEnvelope{
		Success: true,
		Message: "Password reset successfully",
	})
}

// handleServiceError maps service outcomes to HTTP responses. Anything
// outside the sentinel set is an internal failure and stays generic.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrAccountExists):
		h.log.Warn(operation+" failed - account exists", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidOTP):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
