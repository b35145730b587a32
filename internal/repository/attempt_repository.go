package repository

import (
	"context"
	"fmt"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"
	"mvpduo/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxAttemptRepository struct {
	db *sqlx.DB
}

func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

// RecordAttempt appends one answer to user_question_attempts.
func (r *sqlxAttemptRepository) RecordAttempt(ctx context.Context, attempt *domain.QuestionAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}
	m := models.QuestionAttempt{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		QuestionID:  attempt.QuestionID,
		IsCorrect:   attempt.IsCorrect,
		Kidem:       attempt.Unit.Kidem,
		Level:       attempt.Unit.Level,
		Bolum:       attempt.Unit.Bolum,
		AttemptedAt: attempt.AttemptedAt,
	}
	query := `INSERT INTO user_question_attempts (id, user_id, question_id, is_correct, kidem, level, bolum, attempted_at)
	          VALUES (:id, :user_id, :question_id, :is_correct, :kidem, :level, :bolum, :attempted_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}
