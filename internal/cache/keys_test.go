package cache

import (
	"strings"
	"testing"

	"mvpduo/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{"without paramsKey", "user", "profile", "123", nil, "mvpduo:user:profile:123"},
		{"with empty paramsKey", "user", "profile", "123", []string{}, "mvpduo:user:profile:123"},
		{"with one paramsKey", "questions", "approved", "1-2-3", []string{"TYT"}, "mvpduo:questions:approved:1-2-3:TYT"},
		{"with multiple paramsKey", "questions", "approved", "1-2-3", []string{"AYT_SAY", "fizik"}, "mvpduo:questions:approved:1-2-3:AYT_SAY_fizik"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestActiveSessionKey(t *testing.T) {
	assert.Equal(t, "mvpduo:session:active:u1", ActiveSessionKey("u1"))
}

func TestQuestionSetKey(t *testing.T) {
	pos := domain.Position{Kidem: 1, Level: 24, Bolum: 6}
	a := QuestionSetKey(domain.FilterFor(pos, domain.TrackTYT, ""))
	b := QuestionSetKey(domain.FilterFor(pos, domain.TrackAYTSay, ""))
	c := QuestionSetKey(domain.FilterFor(pos, domain.TrackTYT, "math"))
	d := QuestionSetKey(domain.FilterFor(domain.Position{Kidem: 1, Level: 24, Bolum: 7}, domain.TrackTYT, ""))

	assert.Equal(t, "mvpduo:questions:approved:1-24-6:TYT", a)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Equal(t, a, QuestionSetKey(domain.FilterFor(pos, domain.TrackTYT, "")))

	multi := QuestionSetKey(domain.FilterForTracks(pos, []domain.ExamTrack{domain.TrackTYT, domain.TrackAYTSoz}, ""))
	assert.Equal(t, "mvpduo:questions:approved:1-24-6:TYT+AYT_SOZ", multi)
	assert.Equal(t, a, QuestionSetKey(domain.FilterForTracks(pos, []domain.ExamTrack{domain.TrackTYT}, "")))
}

func TestQuestionSetUnitPattern(t *testing.T) {
	unit := domain.Position{Kidem: 2, Level: 10, Bolum: 1}
	pattern := QuestionSetUnitPattern(unit)
	assert.Equal(t, "mvpduo:questions:approved:2-10-1:*", pattern)

	key := QuestionSetKey(domain.FilterFor(unit, domain.TrackTYT, ""))
	assert.True(t, strings.HasPrefix(key, strings.TrimSuffix(pattern, "*")))
}
