package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `id, email, current_kidem, current_level, current_bolum,
	total_questions_answered, total_correct_answers, total_points, streak_days, created_at, updated_at`

// sqlxProfileRepository implements domain.ProfileRepository using sqlx.
type sqlxProfileRepository struct {
	db *sqlx.DB
}

// NewSQLXProfileRepository creates a new instance of sqlxProfileRepository.
func NewSQLXProfileRepository(db *sqlx.DB) domain.ProfileRepository {
	return &sqlxProfileRepository{db: db}
}

// GetUserProfile retrieves a profile by user id.
func (r *sqlxProfileRepository) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var m models.UserProfile
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("profile %s not found", userID))
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return toDomainProfile(&m), nil
}

// CreateUserProfile inserts the default profile. A concurrent or earlier insert wins
// and its row is returned.
func (r *sqlxProfileRepository) CreateUserProfile(ctx context.Context, userID, email string) (*domain.UserProfile, error) {
	m := fromDomainProfile(domain.DefaultUserProfile(userID, email))
	query := `INSERT INTO user_profiles (` + profileColumns + `)
	          VALUES (:id, :email, :current_kidem, :current_level, :current_bolum,
	                  :total_questions_answered, :total_correct_answers, :total_points, :streak_days, :created_at, :updated_at)
	          ON CONFLICT (id) DO NOTHING`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}
	return r.GetUserProfile(ctx, userID)
}

// UpdateUserProfile writes the non-nil fields of update and returns the stored row.
func (r *sqlxProfileRepository) UpdateUserProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	if update.IsEmpty() {
		return r.GetUserProfile(ctx, userID)
	}

	args := map[string]interface{}{"id": userID, "updated_at": time.Now()}
	setClause := buildProfileSetClause(update, args)
	query := `UPDATE user_profiles SET ` + setClause + `, updated_at = :updated_at
	          WHERE id = :id RETURNING ` + profileColumns

	var m models.UserProfile
	if err := namedGet(ctx, GetExecutor(ctx, r.db), &m, query, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("profile %s not found", userID))
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return toDomainProfile(&m), nil
}

// buildProfileSetClause renders the SET assignments in a fixed column order.
func buildProfileSetClause(update domain.ProfileUpdate, args map[string]interface{}) string {
	fields := []struct {
		column string
		value  *int
	}{
		{"current_kidem", update.Kidem},
		{"current_level", update.Level},
		{"current_bolum", update.Bolum},
		{"total_questions_answered", update.TotalQuestionsAnswered},
		{"total_correct_answers", update.TotalCorrectAnswers},
		{"total_points", update.TotalPoints},
		{"streak_days", update.StreakDays},
	}

	var setClauses []string
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		setClauses = append(setClauses, f.column+" = :"+f.column)
		args[f.column] = *f.value
	}
	return strings.Join(setClauses, ", ")
}
