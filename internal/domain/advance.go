package domain

import (
	"fmt"
	"time"
)

const (
	// PointsPerCorrect is awarded for every correct answer in a passed session.
	PointsPerCorrect = 10

	// AchievementBolumCompleted tags the achievement emitted for a passed unit.
	AchievementBolumCompleted = "bolum_completed"
)

// Achievement is an append-only record of a completed unit.
type Achievement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"achievement_type"`
	Name         string    `json:"achievement_name"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

// Advancement is the computed result of a passed session: the next profile state
// and the achievement to record.
type Advancement struct {
	Profile     UserProfile `json:"profile"`
	Achievement Achievement `json:"achievement"`
}

// Advance computes the profile that follows a passed session on target. The next
// position is derived from target, not from the stored pointer, so finishing a unit
// reached by direct navigation still moves the learner on from that unit.
//
// Advance is deterministic and has no side effects. Applying it twice to the same
// profile advances twice: persist the returned profile, do not recompute.
func Advance(profile UserProfile, target Position, outcome SessionOutcome) (Advancement, error) {
	if !outcome.Passed {
		return Advancement{}, NewOutcomeNotPassedError(outcome.MistakeCount)
	}
	if err := target.Validate(); err != nil {
		return Advancement{}, err
	}

	next := target.Next()
	points := outcome.CorrectCount * PointsPerCorrect

	profile.Kidem = next.Kidem
	profile.Level = next.Level
	profile.Bolum = next.Bolum
	profile.TotalQuestionsAnswered += outcome.TotalCount
	profile.TotalCorrectAnswers += outcome.CorrectCount
	profile.TotalPoints += points

	return Advancement{
		Profile: profile,
		Achievement: Achievement{
			UserID:       profile.ID,
			Type:         AchievementBolumCompleted,
			Name:         fmt.Sprintf("Bölüm %d Tamamlandı", target.Bolum),
			PointsEarned: points,
		},
	}, nil
}

// ProfileUpdate returns the partial update that moves the stored profile to a.Profile.
func (a Advancement) ProfileUpdate() ProfileUpdate {
	p := a.Profile
	return ProfileUpdate{
		Kidem:                  &p.Kidem,
		Level:                  &p.Level,
		Bolum:                  &p.Bolum,
		TotalQuestionsAnswered: &p.TotalQuestionsAnswered,
		TotalCorrectAnswers:    &p.TotalCorrectAnswers,
		TotalPoints:            &p.TotalPoints,
	}
}
