package domain

import (
	"time"
)

// UserProfile is a learner's position in the curriculum plus cumulative stats.
type UserProfile struct {
	ID                     string    `json:"id"`
	Email                  string    `json:"email"`
	Kidem                  int       `json:"current_kidem"`
	Level                  int       `json:"current_level"`
	Bolum                  int       `json:"current_bolum"`
	TotalQuestionsAnswered int       `json:"total_questions_answered"`
	TotalCorrectAnswers    int       `json:"total_correct_answers"`
	TotalPoints            int       `json:"total_points"`
	StreakDays             int       `json:"streak_days"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DefaultUserProfile builds the profile a learner gets on first authentication.
// It is also the fallback whenever the stored profile cannot be read.
func DefaultUserProfile(userID, email string) *UserProfile {
	now := time.Now()
	start := StartPosition()
	return &UserProfile{
		ID:        userID,
		Email:     email,
		Kidem:     start.Kidem,
		Level:     start.Level,
		Bolum:     start.Bolum,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Position returns the profile's current curriculum pointer.
func (p *UserProfile) Position() Position {
	return Position{Kidem: p.Kidem, Level: p.Level, Bolum: p.Bolum}
}

// Accuracy is the share of answered questions that were correct, in [0,1].
func (p *UserProfile) Accuracy() float64 {
	if p.TotalQuestionsAnswered == 0 {
		return 0
	}
	return float64(p.TotalCorrectAnswers) / float64(p.TotalQuestionsAnswered)
}

// Validate validates the profile
func (p *UserProfile) Validate() error {
	if p.ID == "" {
		return NewValidationError("user id is required")
	}
	if err := p.Position().Validate(); err != nil {
		return err
	}
	if p.TotalQuestionsAnswered < 0 || p.TotalCorrectAnswers < 0 || p.TotalPoints < 0 || p.StreakDays < 0 {
		return NewValidationError("counters must not be negative")
	}
	if p.TotalCorrectAnswers > p.TotalQuestionsAnswered {
		return NewValidationError("correct answers cannot exceed questions answered")
	}
	return nil
}

// ProfileUpdate carries the fields of a partial profile update. Nil fields are left untouched.
type ProfileUpdate struct {
	Kidem                  *int
	Level                  *int
	Bolum                  *int
	TotalQuestionsAnswered *int
	TotalCorrectAnswers    *int
	TotalPoints            *int
	StreakDays             *int
}

// IsEmpty reports whether the update sets no field.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Kidem == nil && u.Level == nil && u.Bolum == nil &&
		u.TotalQuestionsAnswered == nil && u.TotalCorrectAnswers == nil &&
		u.TotalPoints == nil && u.StreakDays == nil
}

// ApplyTo returns a copy of profile with the update applied.
func (u ProfileUpdate) ApplyTo(profile UserProfile) UserProfile {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&profile.Kidem, u.Kidem)
	set(&profile.Level, u.Level)
	set(&profile.Bolum, u.Bolum)
	set(&profile.TotalQuestionsAnswered, u.TotalQuestionsAnswered)
	set(&profile.TotalCorrectAnswers, u.TotalCorrectAnswers)
	set(&profile.TotalPoints, u.TotalPoints)
	set(&profile.StreakDays, u.StreakDays)
	return profile
}

// ExamTrack names one exam the learner can study for.
type ExamTrack string

const (
	TrackTYT    ExamTrack = "TYT"
	TrackAYTSay ExamTrack = "AYT_SAY"
	TrackAYTEA  ExamTrack = "AYT_EA"
	TrackAYTSoz ExamTrack = "AYT_SOZ"
)

// AllExamTracks lists the tracks in canonical order.
var AllExamTracks = []ExamTrack{TrackTYT, TrackAYTSay, TrackAYTEA, TrackAYTSoz}

// ParseExamTrack maps a track name to an ExamTrack.
func ParseExamTrack(s string) (ExamTrack, bool) {
	for _, t := range AllExamTracks {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// ExamPreferences holds the exam tracks a learner has enabled.
type ExamPreferences struct {
	UserID        string    `json:"user_id"`
	TYTEnabled    bool      `json:"tyt_enabled"`
	AYTSayEnabled bool      `json:"ayt_say_enabled"`
	AYTEAEnabled  bool      `json:"ayt_ea_enabled"`
	AYTSozEnabled bool      `json:"ayt_soz_enabled"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Enabled reports whether track is switched on.
func (p ExamPreferences) Enabled(track ExamTrack) bool {
	switch track {
	case TrackTYT:
		return p.TYTEnabled
	case TrackAYTSay:
		return p.AYTSayEnabled
	case TrackAYTEA:
		return p.AYTEAEnabled
	case TrackAYTSoz:
		return p.AYTSozEnabled
	}
	return false
}

// EnabledTracks returns the enabled tracks in canonical order.
func (p ExamPreferences) EnabledTracks() []ExamTrack {
	var tracks []ExamTrack
	for _, t := range AllExamTracks {
		if p.Enabled(t) {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// HasAnyTrack reports whether at least one track is enabled.
func (p ExamPreferences) HasAnyTrack() bool {
	return len(p.EnabledTracks()) > 0
}

// OnboardingStep is the next thing a learner must do before using the curriculum.
type OnboardingStep string

const (
	StepEmailVerification OnboardingStep = "email_verification"
	StepExamPreferences   OnboardingStep = "exam_preferences"
	StepComplete          OnboardingStep = "complete"
)

// OnboardingStatus gathers the facts that gate first use of the progression engine.
type OnboardingStatus struct {
	EmailVerified bool `json:"email_verified"`
	HasExamTrack  bool `json:"has_exam_track"`
}

// Complete reports whether the email is verified and at least one track is enabled.
func (s OnboardingStatus) Complete() bool {
	return s.EmailVerified && s.HasExamTrack
}

// NextStep returns the first unfinished onboarding step.
func (s OnboardingStatus) NextStep() OnboardingStep {
	switch {
	case !s.EmailVerified:
		return StepEmailVerification
	case !s.HasExamTrack:
		return StepExamPreferences
	default:
		return StepComplete
	}
}
