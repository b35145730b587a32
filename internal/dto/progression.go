package dto

import (
	"time"

	"mvpduo/internal/domain"
)

// PositionResponse is a curriculum coordinate
type PositionResponse struct {
	Kidem int `json:"kidem"`
	Level int `json:"level"`
	Bolum int `json:"bolum"`
}

func NewPositionResponse(p domain.Position) PositionResponse {
	return PositionResponse{Kidem: p.Kidem, Level: p.Level, Bolum: p.Bolum}
}

// ProfileResponse represents the learner's profile in the API response
// @Description Learner profile. Degraded is true when the stored profile could not be read.
type ProfileResponse struct {
	ID                     string  `json:"id"`
	Email                  string  `json:"email,omitempty"`
	CurrentKidem           int     `json:"current_kidem"`
	CurrentLevel           int     `json:"current_level"`
	CurrentBolum           int     `json:"current_bolum"`
	TotalQuestionsAnswered int     `json:"total_questions_answered"`
	TotalCorrectAnswers    int     `json:"total_correct_answers"`
	TotalPoints            int     `json:"total_points"`
	StreakDays             int     `json:"streak_days"`
	Accuracy               float64 `json:"accuracy"`
	Source                 string  `json:"source,omitempty"`
	Degraded               bool    `json:"degraded,omitempty"`
}

func NewProfileResponse(p *domain.UserProfile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:                     p.ID,
		Email:                  p.Email,
		CurrentKidem:           p.Kidem,
		CurrentLevel:           p.Level,
		CurrentBolum:           p.Bolum,
		TotalQuestionsAnswered: p.TotalQuestionsAnswered,
		TotalCorrectAnswers:    p.TotalCorrectAnswers,
		TotalPoints:            p.TotalPoints,
		StreakDays:             p.StreakDays,
		Accuracy:               p.Accuracy(),
	}
}

// OnboardingResponse reports the onboarding gate
type OnboardingResponse struct {
	EmailVerified bool   `json:"email_verified"`
	HasExamTrack  bool   `json:"has_exam_track"`
	Complete      bool   `json:"complete"`
	NextStep      string `json:"next_step"`
}

func NewOnboardingResponse(s domain.OnboardingStatus) OnboardingResponse {
	return OnboardingResponse{
		EmailVerified: s.EmailVerified,
		HasExamTrack:  s.HasExamTrack,
		Complete:      s.Complete(),
		NextStep:      string(s.NextStep()),
	}
}

// PreferencesRequest sets the learner's exam tracks
// @Description At least one track must be enabled.
type PreferencesRequest struct {
	TYTEnabled    bool `json:"tyt_enabled"`
	AYTSayEnabled bool `json:"ayt_say_enabled"`
	AYTEAEnabled  bool `json:"ayt_ea_enabled"`
	AYTSozEnabled bool `json:"ayt_soz_enabled"`
}

func (r PreferencesRequest) ToDomain(userID string) domain.ExamPreferences {
	return domain.ExamPreferences{
		UserID:        userID,
		TYTEnabled:    r.TYTEnabled,
		AYTSayEnabled: r.AYTSayEnabled,
		AYTEAEnabled:  r.AYTEAEnabled,
		AYTSozEnabled: r.AYTSozEnabled,
	}
}

// LevelUnitResponse is one unit of the level map
type LevelUnitResponse struct {
	PositionResponse
	Tracks []string `json:"tracks"`
	State  string   `json:"state"`
}

// LevelMapResponse lists the twelve units of a level
type LevelMapResponse struct {
	Kidem int                 `json:"kidem"`
	Level int                 `json:"level"`
	Units []LevelUnitResponse `json:"units"`
}

func NewLevelUnitResponse(pos domain.Position, tracks []domain.ExamTrack, state domain.UnitState) LevelUnitResponse {
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = string(t)
	}
	return LevelUnitResponse{PositionResponse: NewPositionResponse(pos), Tracks: names, State: string(state)}
}

// StartSessionRequest opens a session on one unit
type StartSessionRequest struct {
	Kidem    int    `json:"kidem"`
	Level    int    `json:"level"`
	Bolum    int    `json:"bolum"`
	ExamType string `json:"exam_type,omitempty"`
	Division string `json:"division,omitempty"`
}

func (r StartSessionRequest) Unit() domain.Position {
	return domain.Position{Kidem: r.Kidem, Level: r.Level, Bolum: r.Bolum}
}

// SessionQuestionResponse is a question as shown to the learner, without its answer.
type SessionQuestionResponse struct {
	ID       string   `json:"id"`
	ExamType string   `json:"exam_type"`
	Division string   `json:"division,omitempty"`
	Text     string   `json:"question_text"`
	Options  []string `json:"options"`
}

// SessionResponse represents an in-progress quiz session
type SessionResponse struct {
	ID        string                    `json:"id"`
	Unit      PositionResponse          `json:"unit"`
	ExamType  string                    `json:"exam_type,omitempty"`
	Questions []SessionQuestionResponse `json:"questions"`
	Answered  int                       `json:"answered"`
	Total     int                       `json:"total"`
	Correct   int                       `json:"correct"`
	Mistakes  int                       `json:"mistakes"`
	StartedAt time.Time                 `json:"started_at"`
}

func NewSessionResponse(s *domain.QuizSession) SessionResponse {
	questions := make([]SessionQuestionResponse, len(s.Questions))
	for i, q := range s.Questions {
		questions[i] = SessionQuestionResponse{
			ID:       q.ID,
			ExamType: string(q.ExamType),
			Division: q.Division,
			Text:     q.Text,
			Options:  q.Options,
		}
	}
	return SessionResponse{
		ID:        s.ID,
		Unit:      NewPositionResponse(s.Unit),
		ExamType:  string(s.ExamType),
		Questions: questions,
		Answered:  s.Answered(),
		Total:     s.Total(),
		Correct:   s.Correct,
		Mistakes:  s.Mistakes,
		StartedAt: s.StartedAt,
	}
}

// SubmitAnswerRequest answers the current question of a session
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Option     *int   `json:"option"`
}

// AnswerResponse reports one answer and the running totals
type AnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation,omitempty"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
	Mistakes      int    `json:"mistakes"`
	CanStillPass  bool   `json:"can_still_pass"`
	Complete      bool   `json:"complete"`
}

// AchievementResponse represents an earned achievement
type AchievementResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"achievement_type"`
	Name         string    `json:"achievement_name"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAchievementResponse(a domain.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:           a.ID,
		Type:         a.Type,
		Name:         a.Name,
		PointsEarned: a.PointsEarned,
		CreatedAt:    a.CreatedAt,
	}
}

// AchievementsResponse lists achievements, newest first
type AchievementsResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

// FinishSessionResponse is the result of finishing a session
// @Description Profile and Achievement are set only when the session passed.
type FinishSessionResponse struct {
	SessionID    string               `json:"session_id"`
	Unit         PositionResponse     `json:"unit"`
	Passed       bool                 `json:"passed"`
	CorrectCount int                  `json:"correct_count"`
	TotalCount   int                  `json:"total_count"`
	MistakeCount int                  `json:"mistake_count"`
	Profile      *ProfileResponse     `json:"profile,omitempty"`
	Achievement  *AchievementResponse `json:"achievement,omitempty"`
	Warnings     []string             `json:"warnings,omitempty"`
}
