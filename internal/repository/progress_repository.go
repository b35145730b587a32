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

type sqlxProgressRepository struct {
	db *sqlx.DB
}

func NewSQLXProgressRepository(db *sqlx.DB) domain.ProgressRepository {
	return &sqlxProgressRepository{db: db}
}

// UpsertProgress writes the mirror row; created_at survives later updates.
func (r *sqlxProgressRepository) UpsertProgress(ctx context.Context, mirror *domain.ProgressMirror) error {
	now := time.Now()
	m := models.UserProgress{
		UserID:    mirror.UserID,
		Kidem:     mirror.Unit.Kidem,
		Level:     mirror.Unit.Level,
		Bolum:     mirror.Unit.Bolum,
		CreatedAt: now,
		UpdatedAt: now,
	}
	query := `INSERT INTO user_progress (user_id, kidem, level, bolum, created_at, updated_at)
	          VALUES (:user_id, :kidem, :level, :bolum, :created_at, :updated_at)
	          ON CONFLICT (user_id) DO UPDATE SET
	              kidem = EXCLUDED.kidem,
	              level = EXCLUDED.level,
	              bolum = EXCLUDED.bolum,
	              updated_at = EXCLUDED.updated_at`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}
	return nil
}

func (r *sqlxProgressRepository) GetProgress(ctx context.Context, userID string) (*domain.ProgressMirror, error) {
	var m models.UserProgress
	query := `SELECT user_id, kidem, level, bolum, created_at, updated_at FROM user_progress WHERE user_id = $1`

	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("progress for %s not found", userID))
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return toDomainProgress(&m), nil
}
