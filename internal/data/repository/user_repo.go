package repository

import (
	"context"
	"fmt"

	"lostfound-api/internal/data/entity"
	"lostfound-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByIDOrEmail(ctx context.Context, identifier string) (*entity.Account, error)
	TouchLastLogin(ctx context.Context, userID string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new account. There is deliberately no existence
// pre-check: concurrent registrations race on the store's unique
// constraints, and the violated constraint is surfaced as a ConflictError.
func (ur *userRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO student_staff (user_id, full_name, email, phone_number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := ur.db.Exec(ctx, query,
		account.UserID,
		account.FullName,
		account.Email,
		account.PhoneNumber,
		account.PasswordHash,
		account.Role,
	)

	if err != nil {
		if conflict := classifyUniqueViolation(err); conflict != nil {
			ur.log.Warn("Duplicate account registration",
				zap.String("field", conflict.Field),
				zap.String("user_id", account.UserID),
				zap.String("email", account.Email),
			)
			return conflict
		}

		ur.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("user_id", account.UserID),
			zap.String("email", account.Email),
		)
		return fmt.Errorf("create account %s: %w", account.UserID, err)
	}

	return nil
}

// FindByIDOrEmail looks up a single account whose user ID or email equals
// the identifier. Both columns are unique, so at most one row can match.
func (ur *userRepository) FindByIDOrEmail(ctx context.Context, identifier string) (*entity.Account, error) {
	query := `
		SELECT user_id, full_name, email, phone_number, password_hash, role, last_login
		FROM student_staff
		WHERE user_id = $1 OR email = $1
		LIMIT 1
	`

	var account entity.Account
	err := ur.db.QueryRow(ctx, query, identifier).Scan(
		&account.UserID,
		&account.FullName,
		&account.Email,
		&account.PhoneNumber,
		&account.PasswordHash,
		&account.Role,
		&account.LastLogin,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find account",
			zap.Error(err),
			zap.String("identifier", identifier),
		)
		return nil, fmt.Errorf("find account %s: %w", identifier, err)
	}

	return &account, nil
}

// TouchLastLogin stamps the account's last login time. Callers treat a
// failure here as loggable only; it must never fail the login itself.
func (ur *userRepository) TouchLastLogin(ctx context.Context, userID string) error {
	query := `UPDATE student_staff SET last_login = NOW() WHERE user_id = $1`

	_, err := ur.db.Exec(ctx, query, userID)
	if err != nil {
		ur.log.Warn("Failed to update last login",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("touch last login %s: %w", userID, err)
	}

	return nil
}
