package repository

import (
	"context"
	"errors"
	"fmt"

	"clicksafe/internal/data/entity"
	"clicksafe/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned when an insert trips the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, company_name,
		                      company_description, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.CompanyName,
		account.CompanyDescription,
		account.Verified,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		r.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("email", account.Email),
		)
		return fmt.Errorf("create account %s: %w", account.Email, err)
	}

	return nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, company_name, company_description,
		       verified, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CompanyName,
		&account.CompanyDescription,
		&account.Verified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find account by email %s: %w", email, err)
	}

	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, company_name, company_description,
		       verified, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.CompanyName,
		&account.CompanyDescription,
		&account.Verified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id.String(), err)
	}

	return &account, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return fmt.Errorf("update password for account %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id.String())
	}

	return nil
}
