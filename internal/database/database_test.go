package database

import (
	"io/fs"
	"strings"
	"testing"

	"mvpduo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	_, err := ParseURL("")
	assert.Error(t, err)

	cfg, err := ParseURL("postgres://u:p@db.internal:5432/app?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "app", cfg.Database)
}

func TestNewSQLXDB_InvalidURL(t *testing.T) {
	_, err := NewSQLXDB(config.DBConfig{})
	assert.Error(t, err)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFS, "migrations")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)

	all := ""
	for name := range ups {
		b, err := fs.ReadFile(migrationFS, "migrations/"+name+".up.sql")
		require.NoError(t, err)
		all += string(b)
	}
	for _, table := range []string{"user_profiles", "user_exam_preferences", "email_verification",
		"questions", "user_question_attempts", "user_achievements", "user_progress"} {
		assert.Contains(t, all, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}
