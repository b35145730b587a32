package domain

import (
	"context"
	"time"
)

// QuestionAttempt is a logged answer to one question.
type QuestionAttempt struct {
	ID          string
	UserID      string
	QuestionID  string
	IsCorrect   bool
	Unit        Position
	AttemptedAt time.Time
}

// ProgressMirror is the secondary copy of a learner's position.
type ProgressMirror struct {
	UserID    string
	Unit      Position
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepository persists user profiles. Get returns a NOT_FOUND DomainError
// when no profile exists.
type ProfileRepository interface {
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)
	// CreateUserProfile inserts the default profile, or returns the existing one.
	CreateUserProfile(ctx context.Context, userID, email string) (*UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, update ProfileUpdate) (*UserProfile, error)
}

// PreferencesRepository persists exam track selections.
type PreferencesRepository interface {
	GetExamPreferences(ctx context.Context, userID string) (*ExamPreferences, error)
	UpsertExamPreferences(ctx context.Context, prefs *ExamPreferences) error
}

// QuestionRepository reads the content store.
type QuestionRepository interface {
	GetApprovedQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	SaveQuestions(ctx context.Context, questions []Question) error
}

// AttemptRepository logs answers.
type AttemptRepository interface {
	RecordAttempt(ctx context.Context, attempt *QuestionAttempt) error
}

// AchievementRepository stores achievements.
type AchievementRepository interface {
	CreateAchievement(ctx context.Context, achievement *Achievement) error
	ListAchievements(ctx context.Context, userID string) ([]Achievement, error)
}

// ProgressRepository maintains the progress mirror.
type ProgressRepository interface {
	UpsertProgress(ctx context.Context, mirror *ProgressMirror) error
	GetProgress(ctx context.Context, userID string) (*ProgressMirror, error)
}

// VerificationRepository reads email verification records.
type VerificationRepository interface {
	IsEmailVerified(ctx context.Context, userID string) (bool, error)
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
