package cache

import (
	"fmt"
	"strings"

	"mvpduo/internal/domain"
)

const (
	GlobalKeyPrefix = "mvpduo"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuestionSetKey addresses the cached approved questions of one unit and track.
func QuestionSetKey(filter domain.QuestionFilter) string {
	unit := fmt.Sprintf("%d-%d-%d", filter.Kidem, filter.Level, filter.Bolum)
	tracks := make([]string, 0, len(filter.Tracks()))
	for _, t := range filter.Tracks() {
		tracks = append(tracks, string(t))
	}
	params := []string{strings.Join(tracks, "+")}
	if filter.Division != "" {
		params = append(params, filter.Division)
	}
	return GenerateCacheKey("questions", "approved", unit, params...)
}

// QuestionSetUnitPattern matches every cached question set of one unit, across tracks and divisions.
func QuestionSetUnitPattern(unit domain.Position) string {
	id := fmt.Sprintf("%d-%d-%d", unit.Kidem, unit.Level, unit.Bolum)
	return GenerateCacheKey("questions", "approved", id) + ":*"
}

// ActiveSessionKey addresses a user's in-progress quiz session.
func ActiveSessionKey(userID string) string {
	return GenerateCacheKey("session", "active", userID)
}
