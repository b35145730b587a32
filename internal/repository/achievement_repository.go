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

type sqlxAchievementRepository struct {
	db *sqlx.DB
}

func NewSQLXAchievementRepository(db *sqlx.DB) domain.AchievementRepository {
	return &sqlxAchievementRepository{db: db}
}

// CreateAchievement appends an achievement, assigning its id and timestamp when unset.
func (r *sqlxAchievementRepository) CreateAchievement(ctx context.Context, achievement *domain.Achievement) error {
	if achievement.ID == "" {
		achievement.ID = util.NewULID()
	}
	if achievement.CreatedAt.IsZero() {
		achievement.CreatedAt = time.Now()
	}
	m := models.Achievement{
		ID:              achievement.ID,
		UserID:          achievement.UserID,
		AchievementType: achievement.Type,
		AchievementName: achievement.Name,
		PointsEarned:    achievement.PointsEarned,
		CreatedAt:       achievement.CreatedAt,
	}
	query := `INSERT INTO user_achievements (id, user_id, achievement_type, achievement_name, points_earned, created_at)
	          VALUES (:id, :user_id, :achievement_type, :achievement_name, :points_earned, :created_at)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}
	return nil
}

// ListAchievements returns a user's achievements, newest first.
func (r *sqlxAchievementRepository) ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := `SELECT id, user_id, achievement_type, achievement_name, points_earned, created_at
	          FROM user_achievements WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	var rows []models.Achievement
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	achievements := make([]domain.Achievement, 0, len(rows))
	for i := range rows {
		achievements = append(achievements, toDomainAchievement(&rows[i]))
	}
	return achievements, nil
}
