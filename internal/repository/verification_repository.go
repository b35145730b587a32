package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"
	"mvpduo/internal/util"

	"github.com/jmoiron/sqlx"
)

// SQLXVerificationRepository reads and writes email_verification rows.
type SQLXVerificationRepository struct {
	db *sqlx.DB
}

func NewSQLXVerificationRepository(db *sqlx.DB) *SQLXVerificationRepository {
	return &SQLXVerificationRepository{db: db}
}

// IsEmailVerified returns NOT_FOUND when the user has no verification record.
func (r *SQLXVerificationRepository) IsEmailVerified(ctx context.Context, userID string) (bool, error) {
	var verified bool
	query := `SELECT verified FROM email_verification WHERE user_id = $1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &verified, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.NewNotFoundError(fmt.Sprintf("verification record for %s not found", userID))
		}
		return false, fmt.Errorf("failed to read email verification: %w", err)
	}
	return verified, nil
}

// MarkEmailVerified records a verified address for userID.
func (r *SQLXVerificationRepository) MarkEmailVerified(ctx context.Context, userID, email string) error {
	now := time.Now()
	m := models.EmailVerification{
		UserID:     userID,
		Email:      email,
		Verified:   true,
		VerifiedAt: util.TimeToNullTime(now),
		CreatedAt:  now,
	}
	query := `INSERT INTO email_verification (user_id, email, verified, verified_at, created_at)
	          VALUES (:user_id, :email, :verified, :verified_at, :created_at)
	          ON CONFLICT (user_id) DO UPDATE SET
	              email = EXCLUDED.email,
	              verified = EXCLUDED.verified,
	              verified_at = EXCLUDED.verified_at`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}
