package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type sqlxPreferencesRepository struct {
	db *sqlx.DB
}

func NewSQLXPreferencesRepository(db *sqlx.DB) domain.PreferencesRepository {
	return &sqlxPreferencesRepository{db: db}
}

func (r *sqlxPreferencesRepository) GetExamPreferences(ctx context.Context, userID string) (*domain.ExamPreferences, error) {
	var m models.ExamPreferences
	query := `SELECT user_id, tyt_enabled, ayt_say_enabled, ayt_ea_enabled, ayt_soz_enabled, updated_at
	          FROM user_exam_preferences WHERE user_id = $1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("exam preferences for %s not found", userID))
		}
		return nil, fmt.Errorf("failed to get exam preferences: %w", err)
	}
	return toDomainPreferences(&m), nil
}

func (r *sqlxPreferencesRepository) UpsertExamPreferences(ctx context.Context, prefs *domain.ExamPreferences) error {
	if prefs.UpdatedAt.IsZero() {
		prefs.UpdatedAt = time.Now()
	}
	query := `INSERT INTO user_exam_preferences (user_id, tyt_enabled, ayt_say_enabled, ayt_ea_enabled, ayt_soz_enabled, updated_at)
	          VALUES (:user_id, :tyt_enabled, :ayt_say_enabled, :ayt_ea_enabled, :ayt_soz_enabled, :updated_at)
	          ON CONFLICT (user_id) DO UPDATE SET
	              tyt_enabled = EXCLUDED.tyt_enabled,
	              ayt_say_enabled = EXCLUDED.ayt_say_enabled,
	              ayt_ea_enabled = EXCLUDED.ayt_ea_enabled,
	              ayt_soz_enabled = EXCLUDED.ayt_soz_enabled,
	              updated_at = EXCLUDED.updated_at`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainPreferences(prefs)); err != nil {
		return fmt.Errorf("failed to upsert exam preferences: %w", err)
	}
	return nil
}
