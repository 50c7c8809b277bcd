package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clicksafe/internal/data/entity"
	"clicksafe/internal/data/repository"
	"clicksafe/internal/dto/request"
	"clicksafe/internal/dto/response"
	"clicksafe/pkg/mailer"
	"clicksafe/pkg/token"
	"clicksafe/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService composes the OTP ledger, credential store and token service
// into the signup, sign-in and password-reset protocols. No state is held
// between steps; every request carries its own context and the flow is
// resumable from any step.
type AuthService interface {
	// SendOTP issues a fresh code for an unregistered email and dispatches
	// it. The returned code is for the debug echo only.
	SendOTP(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, email, code string) error
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResult, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResult, error)
	Profile(ctx context.Context, accountID uuid.UUID) (*response.UserResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo       *repository.Repository
	tokens     *token.Service
	dispatcher mailer.CodeDispatcher
	otpTTL     time.Duration
	log        *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Service,
	dispatcher mailer.CodeDispatcher,
	otpTTL time.Duration,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:       repo,
		tokens:     tokens,
		dispatcher: dispatcher,
		otpTTL:     otpTTL,
		log:        log,
	}
}

func (s *authService) SendOTP(ctx context.Context, email string) (string, error) {
	email = utils.NormalizeEmail(email)

	// Registration codes are only for addresses without an account.
	existing, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return "", ErrAccountExists
	}

	return s.issueOTP(ctx, email, mailer.PurposeVerification)
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	email = utils.NormalizeEmail(email)

	otp, err := s.repo.OTP.FindValid(ctx, email, code)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("look up OTP: %w", err)
	}
	if otp == nil {
		// Wrong code and expired code are indistinguishable on purpose.
		return ErrInvalidOTP
	}

	// Single use: consume on success.
	if err := s.repo.OTP.Delete(ctx, otp.ID); err != nil {
		s.log.Error("Failed to consume OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("consume OTP: %w", err)
	}

	s.log.Info("OTP verified", zap.String("email", email))
	return nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResult, error) {
	email := utils.NormalizeEmail(req.Email)

	existing, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	account := &entity.Account{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:              email,
		PasswordHash:       passwordHash,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		// Completing registration implies the email was verified; there is
		// no server-side cross-check against a confirmed-OTP flag.
		Verified: true,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration.
			return nil, ErrAccountExists
		}
		s.log.Error("Failed to create account", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	tokenString, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("account_id", account.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("email", account.Email))

	return &response.AuthResult{
		Token: tokenString,
		User:  response.AccountToResponse(account, false),
	}, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResult, error) {
	email := utils.NormalizeEmail(req.Email)

	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find account: %w", err)
	}

	// Absent account and wrong password produce the same generic failure.
	if account == nil {
		s.log.Warn("Sign-in for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		s.log.Warn("Sign-in with wrong password", zap.String("account_id", account.ID.String()))
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("account_id", account.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Account signed in", zap.String("account_id", account.ID.String()))

	return &response.AuthResult{
		Token: tokenString,
		User:  response.AccountToResponse(account, false),
	}, nil
}

func (s *authService) Profile(ctx context.Context, accountID uuid.UUID) (*response.UserResponse, error) {
	account, err := s.repo.Account.FindByID(ctx, accountID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("account_id", accountID.String()))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if account == nil {
		// The token stays structurally valid even if the account is gone.
		return nil, ErrAccountNotFound
	}

	user := response.AccountToResponse(account, true)
	return &user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = utils.NormalizeEmail(email)

	// Unlike SendOTP, the account must already exist here.
	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return "", ErrAccountNotFound
	}

	return s.issueOTP(ctx, email, mailer.PurposePasswordReset)
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	email := utils.NormalizeEmail(req.Email)

	otp, err := s.repo.OTP.FindValid(ctx, email, req.OTP)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("look up OTP: %w", err)
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find account", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find account: %w", err)
	}
	if account == nil {
		return ErrAccountNotFound
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Account.UpdatePassword(ctx, account.ID, passwordHash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("account_id", account.ID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	// Consume the code so it cannot reset the password twice.
	if err := s.repo.OTP.Delete(ctx, otp.ID); err != nil {
		s.log.Warn("Failed to consume OTP after reset", zap.Error(err), zap.String("email", email))
	}

	s.log.Info("Password reset", zap.String("account_id", account.ID.String()))
	return nil
}

// issueOTP replaces any outstanding code for the email and dispatches the
// new one. Both flows share the ledger and the code space.
func (s *authService) issueOTP(ctx context.Context, email string, purpose mailer.Purpose) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	now := time.Now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(s.otpTTL),
	}

	if err := s.repo.OTP.Replace(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("store OTP: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, email, purpose, code); err != nil {
		s.log.Error("Failed to dispatch OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("dispatch OTP: %w", err)
	}

	s.log.Info("OTP issued",
		zap.String("email", email),
		zap.String("purpose", string(purpose)),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	return code, nil
}
