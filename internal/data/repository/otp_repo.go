package repository

import (
	"context"
	"fmt"

	"clicksafe/internal/data/entity"
	"clicksafe/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	// Replace deletes every code for the email and inserts the new one, so
	// at most one valid code exists per address afterwards.
	Replace(ctx context.Context, otp *entity.OTP) error
	// FindValid returns the non-expired record matching the exact
	// (email, code) pair, or nil. Expired records look absent.
	FindValid(ctx context.Context, email, code string) (*entity.OTP, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Replace(ctx context.Context, otp *entity.OTP) error {
	// Two independent statements, matching the reference behavior. A race
	// between concurrent issues for one email is tolerated.
	deleteQuery := `DELETE FROM otps WHERE email = $1`

	if _, err := r.db.Exec(ctx, deleteQuery, otp.Email); err != nil {
		r.log.Error("Failed to delete previous OTPs",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("delete previous OTPs for %s: %w", otp.Email, err)
	}

	insertQuery := `
		INSERT INTO otps (id, email, code, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, insertQuery,
		otp.ID,
		otp.Email,
		otp.Code,
		otp.CreatedAt,
		otp.ExpiresAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindValid(ctx context.Context, email, code string) (*entity.OTP, error) {
	query := `
		SELECT id, email, code, created_at, expires_at
		FROM otps
		WHERE email = $1
		  AND code = $2
		  AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email, code).Scan(
		&otp.ID,
		&otp.Email,
		&otp.Code,
		&otp.CreatedAt,
		&otp.ExpiresAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find valid OTP for %s: %w", email, err)
	}

	return &otp, nil
}

func (r *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM otps WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete OTP",
			zap.Error(err),
			zap.String("otp_id", id.String()),
		)
		return fmt.Errorf("delete OTP %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP %s not found", id.String())
	}

	return nil
}

// DeleteExpired garbage-collects stale codes. Verification already ignores
// them, this just keeps the table from growing.
func (r *otpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM otps WHERE expires_at <= NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to delete expired OTPs", zap.Error(err))
		return 0, fmt.Errorf("delete expired OTPs: %w", err)
	}

	return result.RowsAffected(), nil
}
