package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passed(correct, total int) SessionOutcome {
	return SessionOutcome{Passed: true, CorrectCount: correct, TotalCount: total, MistakeCount: total - correct}
}

func TestAdvance_WithinLevel(t *testing.T) {
	base := *DefaultUserProfile("u1", "u1@example.com")
	for bolum := 1; bolum < MaxBolum; bolum++ {
		target := Position{Kidem: 2, Level: 40, Bolum: bolum}
		adv, err := Advance(base, target, passed(7, 7))
		require.NoError(t, err)
		assert.Equal(t, Position{Kidem: 2, Level: 40, Bolum: bolum + 1}, adv.Profile.Position())
	}
}

func TestAdvance_Wraps(t *testing.T) {
	base := *DefaultUserProfile("u1", "")

	adv, err := Advance(base, Position{Kidem: 1, Level: 7, Bolum: 12}, passed(5, 5))
	require.NoError(t, err)
	assert.Equal(t, Position{Kidem: 1, Level: 8, Bolum: 1}, adv.Profile.Position())

	adv, err = Advance(base, Position{Kidem: 1, Level: 100, Bolum: 12}, passed(5, 5))
	require.NoError(t, err)
	assert.Equal(t, Position{Kidem: 2, Level: 1, Bolum: 1}, adv.Profile.Position())
}

func TestAdvance_Scenario(t *testing.T) {
	profile := *DefaultUserProfile("u1", "u1@example.com")
	profile.Level = 24
	profile.Bolum = 6
	profile.TotalQuestionsAnswered = 100
	profile.TotalCorrectAnswers = 80
	profile.TotalPoints = 800

	adv, err := Advance(profile, profile.Position(), passed(5, 7))
	require.NoError(t, err)

	assert.Equal(t, Position{Kidem: 1, Level: 24, Bolum: 7}, adv.Profile.Position())
	assert.Equal(t, 107, adv.Profile.TotalQuestionsAnswered)
	assert.Equal(t, 85, adv.Profile.TotalCorrectAnswers)
	assert.Equal(t, 850, adv.Profile.TotalPoints)

	assert.Equal(t, "u1", adv.Achievement.UserID)
	assert.Equal(t, AchievementBolumCompleted, adv.Achievement.Type)
	assert.Equal(t, "Bölüm 6 Tamamlandı", adv.Achievement.Name)
	assert.Equal(t, 50, adv.Achievement.PointsEarned)

	// the input profile is a value and stays untouched
	assert.Equal(t, 6, profile.Bolum)
}

func TestAdvance_FromTargetNotStoredPointer(t *testing.T) {
	profile := *DefaultUserProfile("u1", "")
	profile.Level = 30
	profile.Bolum = 2

	adv, err := Advance(profile, Position{Kidem: 1, Level: 12, Bolum: 4}, passed(6, 6))
	require.NoError(t, err)
	assert.Equal(t, Position{Kidem: 1, Level: 12, Bolum: 5}, adv.Profile.Position())
}

func TestAdvance_RejectsFailedOutcome(t *testing.T) {
	profile := *DefaultUserProfile("u1", "")
	_, err := Advance(profile, profile.Position(), SessionOutcome{Passed: false, CorrectCount: 3, TotalCount: 7, MistakeCount: 4})
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrOutcomeNotPassed))
}

func TestAdvance_RejectsInvalidTarget(t *testing.T) {
	_, err := Advance(*DefaultUserProfile("u1", ""), Position{Kidem: 1, Level: 1, Bolum: 13}, passed(1, 1))
	assert.True(t, HasCode(err, ErrInvalidInput))
}

func TestAdvancement_ProfileUpdate(t *testing.T) {
	profile := *DefaultUserProfile("u1", "")
	profile.StreakDays = 4
	adv, err := Advance(profile, profile.Position(), passed(3, 4))
	require.NoError(t, err)

	update := adv.ProfileUpdate()
	require.False(t, update.IsEmpty())
	assert.Nil(t, update.StreakDays)

	applied := update.ApplyTo(profile)
	assert.Equal(t, adv.Profile, applied)
}
