package models

import (
	"database/sql"
	"time"
)

// UserProfile maps a row of user_profiles.
type UserProfile struct {
	ID                     string         `db:"id"`
	Email                  sql.NullString `db:"email"`
	CurrentKidem           int            `db:"current_kidem"`
	CurrentLevel           int            `db:"current_level"`
	CurrentBolum           int            `db:"current_bolum"`
	TotalQuestionsAnswered int            `db:"total_questions_answered"`
	TotalCorrectAnswers    int            `db:"total_correct_answers"`
	TotalPoints            int            `db:"total_points"`
	StreakDays             int            `db:"streak_days"`
	CreatedAt              time.Time      `db:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at"`
}

// ExamPreferences maps a row of user_exam_preferences.
type ExamPreferences struct {
	UserID        string    `db:"user_id"`
	TYTEnabled    bool      `db:"tyt_enabled"`
	AYTSayEnabled bool      `db:"ayt_say_enabled"`
	AYTEAEnabled  bool      `db:"ayt_ea_enabled"`
	AYTSozEnabled bool      `db:"ayt_soz_enabled"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// EmailVerification maps a row of email_verification.
type EmailVerification struct {
	UserID     string       `db:"user_id"`
	Email      string       `db:"email"`
	Verified   bool         `db:"verified"`
	VerifiedAt sql.NullTime `db:"verified_at"`
	CreatedAt  time.Time    `db:"created_at"`
}

// Question maps a row of questions.
type Question struct {
	ID            string         `db:"id"`
	ExamType      string         `db:"exam_type"`
	Division      sql.NullString `db:"division"`
	Kidem         int            `db:"kidem"`
	Level         int            `db:"level"`
	Bolum         int            `db:"bolum"`
	QuestionText  string         `db:"question_text"`
	Options       StringSlice    `db:"options"`
	CorrectOption int            `db:"correct_option"`
	Explanation   sql.NullString `db:"explanation"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
}

// QuestionAttempt maps a row of user_question_attempts.
type QuestionAttempt struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	QuestionID  string    `db:"question_id"`
	IsCorrect   bool      `db:"is_correct"`
	Kidem       int       `db:"kidem"`
	Level       int       `db:"level"`
	Bolum       int       `db:"bolum"`
	AttemptedAt time.Time `db:"attempted_at"`
}

// Achievement maps a row of user_achievements.
type Achievement struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	AchievementType string    `db:"achievement_type"`
	AchievementName string    `db:"achievement_name"`
	PointsEarned    int       `db:"points_earned"`
	CreatedAt       time.Time `db:"created_at"`
}

// UserProgress maps a row of user_progress.
type UserProgress struct {
	UserID    string    `db:"user_id"`
	Kidem     int       `db:"kidem"`
	Level     int       `db:"level"`
	Bolum     int       `db:"bolum"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
