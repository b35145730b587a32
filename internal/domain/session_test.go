package domain

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions(n int, unit Position) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            fmt.Sprintf("q%d", i+1),
			ExamType:      TrackTYT,
			Kidem:         unit.Kidem,
			Level:         unit.Level,
			Bolum:         unit.Bolum,
			Text:          fmt.Sprintf("question %d", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: 1,
			Status:        QuestionApproved,
		}
	}
	return qs
}

// playSession answers every question, getting the first `wrong` of them wrong.
func playSession(t *testing.T, s *QuizSession, wrong int) {
	t.Helper()
	for i := 0; ; i++ {
		q, ok := s.Current()
		if !ok {
			return
		}
		option := q.CorrectOption
		if i < wrong {
			option = (q.CorrectOption + 1) % len(q.Options)
		}
		_, err := s.SubmitAnswer(q.ID, option, time.Now())
		require.NoError(t, err)
	}
}

func TestNewQuizSession_Empty(t *testing.T) {
	_, err := NewQuizSession("s1", "u1", StartPosition(), TrackTYT, nil, time.Now())
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrNoQuestions))
}

func TestQuizSession_PassWithTwoMistakes(t *testing.T) {
	unit := Position{Kidem: 1, Level: 24, Bolum: 6}
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(7, unit), time.Now())
	require.NoError(t, err)
	assert.Equal(t, SessionInProgress, s.State())

	playSession(t, s, 2)

	assert.Equal(t, SessionPassed, s.State())
	out, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, SessionOutcome{
		SessionID:    "s1",
		Unit:         unit,
		Passed:       true,
		CorrectCount: 5,
		TotalCount:   7,
		MistakeCount: 2,
	}, out)
}

func TestQuizSession_ExactlyThreeMistakesPasses(t *testing.T) {
	unit := StartPosition()
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(5, unit), time.Now())
	require.NoError(t, err)

	playSession(t, s, 3)

	out, err := s.Finalize()
	require.NoError(t, err)
	assert.True(t, out.Passed)
	assert.Equal(t, 3, out.MistakeCount)
}

func TestQuizSession_FourMistakesFailsOnlyAtEnd(t *testing.T) {
	unit := Position{Kidem: 1, Level: 24, Bolum: 6}
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(7, unit), time.Now())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		q, ok := s.Current()
		require.True(t, ok)
		correct, err := s.SubmitAnswer(q.ID, 0, time.Now())
		require.NoError(t, err)
		assert.False(t, correct)
	}
	assert.False(t, s.CanStillPass())
	assert.Equal(t, SessionInProgress, s.State(), "a fourth mistake must not end the session early")

	_, ok := s.Current()
	assert.True(t, ok)
	playSession(t, s, 0)

	out, err := s.Finalize()
	require.NoError(t, err)
	assert.False(t, out.Passed)
	assert.Equal(t, 4, out.MistakeCount)
	assert.Equal(t, 3, out.CorrectCount)
	assert.Equal(t, SessionFailed, s.State())
}

func TestQuizSession_FinalizeIncomplete(t *testing.T) {
	unit := StartPosition()
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(7, unit), time.Now())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		q, _ := s.Current()
		_, err := s.SubmitAnswer(q.ID, q.CorrectOption, time.Now())
		require.NoError(t, err)
	}

	_, err = s.Finalize()
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrIncompleteSession))
}

func TestQuizSession_AlreadyAnswered(t *testing.T) {
	unit := StartPosition()
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(3, unit), time.Now())
	require.NoError(t, err)

	q, _ := s.Current()
	correct, err := s.SubmitAnswer(q.ID, q.CorrectOption, time.Now())
	require.NoError(t, err)
	assert.True(t, correct)

	_, err = s.SubmitAnswer(q.ID, 0, time.Now())
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrAlreadyAnswered))
	assert.Equal(t, 1, s.Answered())
	assert.Equal(t, 1, s.Correct)
	assert.Zero(t, s.Mistakes)
}

func TestQuizSession_RejectsOutOfOrderAndUnknown(t *testing.T) {
	unit := StartPosition()
	s, err := NewQuizSession("s1", "u1", unit, TrackTYT, sampleQuestions(3, unit), time.Now())
	require.NoError(t, err)

	_, err = s.SubmitAnswer("q3", 1, time.Now())
	assert.True(t, HasCode(err, ErrInvalidInput))

	_, err = s.SubmitAnswer("missing", 1, time.Now())
	assert.True(t, HasCode(err, ErrInvalidInput))

	_, err = s.SubmitAnswer("q1", 9, time.Now())
	assert.True(t, HasCode(err, ErrInvalidInput))

	assert.Zero(t, s.Answered())
}

func TestShuffleQuestions(t *testing.T) {
	qs := sampleQuestions(20, StartPosition())
	shuffled := ShuffleQuestions(qs, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, shuffled, len(qs))
	assert.ElementsMatch(t, qs, shuffled)
	assert.Equal(t, "q1", qs[0].ID, "input must not be reordered")
	assert.NotEqual(t, qs, shuffled)
}
