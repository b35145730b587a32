package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"
	"mvpduo/internal/util"

	"github.com/jmoiron/sqlx"
)

type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a repository over the questions table.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

// GetApprovedQuestions returns the approved questions of one unit in insertion order.
// An empty result is not an error.
func (r *sqlxQuestionRepository) GetApprovedQuestions(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	conditions := []string{"status = :status", "kidem = :kidem", "level = :level", "bolum = :bolum"}
	args := map[string]interface{}{
		"status": string(domain.QuestionApproved),
		"kidem":  filter.Kidem,
		"level":  filter.Level,
		"bolum":  filter.Bolum,
	}
	if tracks := filter.Tracks(); len(tracks) > 0 {
		placeholders := make([]string, len(tracks))
		for i, t := range tracks {
			name := fmt.Sprintf("exam_type_%d", i)
			placeholders[i] = ":" + name
			args[name] = string(t)
		}
		conditions = append(conditions, "exam_type IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.Division != "" {
		conditions = append(conditions, "division = :division")
		args["division"] = filter.Division
	}

	query := `SELECT id, exam_type, division, kidem, level, bolum, question_text, options,
	                 correct_option, explanation, status, created_at
	          FROM questions WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY created_at, id`

	bound, boundArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to bind question query: %w", err)
	}

	executor := GetExecutor(ctx, r.db)
	var rows []models.Question
	if err := executor.SelectContext(ctx, &rows, executor.Rebind(bound), boundArgs...); err != nil {
		return nil, fmt.Errorf("failed to get approved questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// SaveQuestions validates and upserts questions. It joins a transaction carried by ctx.
func (r *sqlxQuestionRepository) SaveQuestions(ctx context.Context, questions []domain.Question) error {
	query := `INSERT INTO questions (id, exam_type, division, kidem, level, bolum, question_text, options,
	                                 correct_option, explanation, status, created_at)
	          VALUES (:id, :exam_type, :division, :kidem, :level, :bolum, :question_text, :options,
	                  :correct_option, :explanation, :status, :created_at)
	          ON CONFLICT (id) DO UPDATE SET
	              exam_type = EXCLUDED.exam_type,
	              division = EXCLUDED.division,
	              kidem = EXCLUDED.kidem,
	              level = EXCLUDED.level,
	              bolum = EXCLUDED.bolum,
	              question_text = EXCLUDED.question_text,
	              options = EXCLUDED.options,
	              correct_option = EXCLUDED.correct_option,
	              explanation = EXCLUDED.explanation,
	              status = EXCLUDED.status`

	executor := GetExecutor(ctx, r.db)
	for i := range questions {
		q := questions[i]
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d (%s): %w", i, q.ID, err)
		}
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		if q.Status == "" {
			q.Status = domain.QuestionPending
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = time.Now()
		}
		if _, err := executor.NamedExecContext(ctx, query, fromDomainQuestion(&q)); err != nil {
			return fmt.Errorf("failed to save question %s: %w", q.ID, err)
		}
	}
	return nil
}
