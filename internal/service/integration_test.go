//go:build integration

package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"mvpduo/internal/config"
	"mvpduo/internal/database"
	"mvpduo/internal/domain"
	"mvpduo/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("mvpduo"),
		postgres.WithUsername("mvpduo"),
		postgres.WithPassword("mvpduo"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := database.NewSQLXDB(config.DBConfig{URL: url, MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db.DB))
	return db
}

func TestProgressionFlow_Postgres(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	userID := uuid.NewString()
	unit := domain.StartPosition()

	questionRepo := repository.NewSQLXQuestionRepository(db)
	seeded := make([]domain.Question, 5)
	for i := range seeded {
		seeded[i] = domain.Question{
			ExamType: domain.TrackTYT, Kidem: 1, Level: 1, Bolum: 1,
			Text: "soru", Options: []string{"a", "b", "c", "d"}, CorrectOption: 3,
			Status: domain.QuestionApproved,
		}
	}
	tx := repository.NewTransactionManagerAdapter(db)
	require.NoError(t, tx.WithTransaction(ctx, func(ctx context.Context) error {
		return questionRepo.SaveQuestions(ctx, seeded)
	}))

	dispatcher := NewDispatcher(5 * time.Second)
	svc := NewProgressionService(ProgressionDeps{
		Profiles:      repository.NewSQLXProfileRepository(db),
		Preferences:   repository.NewSQLXPreferencesRepository(db),
		Verifications: repository.NewSQLXVerificationRepository(db),
		Attempts:      repository.NewSQLXAttemptRepository(db),
		Achievements:  repository.NewSQLXAchievementRepository(db),
		Progress:      repository.NewSQLXProgressRepository(db),
		Questions:     NewQuestionSetCache(newMemoryCache(), questionRepo, time.Minute),
		Sessions:      NewSessionStore(newMemoryCache(), time.Hour),
		Dispatcher:    dispatcher,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	}, config.ProgressionConfig{})

	loaded, err := svc.LoadProfile(ctx, userID, "learner@example.com")
	require.NoError(t, err)
	assert.Equal(t, ProfileCreated, loaded.Source)

	_, err = svc.StartSession(ctx, userID, StartSessionRequest{Unit: unit})
	assert.True(t, domain.HasCode(err, domain.ErrOnboardingIncomplete))

	require.NoError(t, repository.NewSQLXVerificationRepository(db).MarkEmailVerified(ctx, userID, "learner@example.com"))
	require.NoError(t, svc.SavePreferences(ctx, userID, domain.ExamPreferences{TYTEnabled: true}))

	session, err := svc.StartSession(ctx, userID, StartSessionRequest{Unit: unit, ExamType: domain.TrackTYT})
	require.NoError(t, err)
	require.Equal(t, 5, session.Total())
	for i, q := range session.Questions {
		option := q.CorrectOption
		if i == 0 {
			option = 0
		}
		_, err := svc.SubmitAnswer(ctx, userID, session.ID, q.ID, option)
		require.NoError(t, err)
	}

	res, err := svc.CompleteSession(ctx, userID, session.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Advance)
	assert.Empty(t, res.Advance.SecondaryFailures)
	require.NoError(t, dispatcher.Wait(ctx))

	stored, err := svc.LoadProfile(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, ProfileStored, stored.Source)
	assert.Equal(t, domain.Position{Kidem: 1, Level: 1, Bolum: 2}, stored.Profile.Position())
	assert.Equal(t, 40, stored.Profile.TotalPoints)
	assert.Equal(t, 5, stored.Profile.TotalQuestionsAnswered)
	assert.Equal(t, 4, stored.Profile.TotalCorrectAnswers)

	achievements, err := svc.Achievements(ctx, userID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "Bölüm 1 Tamamlandı", achievements[0].Name)

	mirror, err := repository.NewSQLXProgressRepository(db).GetProgress(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored.Profile.Position(), mirror.Unit)

	var attempts int
	require.NoError(t, db.GetContext(ctx, &attempts, `SELECT COUNT(*) FROM user_question_attempts WHERE user_id = $1`, userID))
	assert.Equal(t, 5, attempts)
}
