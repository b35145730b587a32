package domain

import (
	"fmt"
	"time"
)

// MaxMistakes is the most wrong answers a session may contain and still pass.
const MaxMistakes = 3

// SessionState is the evaluation state of a quiz session.
type SessionState string

const (
	SessionInProgress SessionState = "in_progress"
	SessionPassed     SessionState = "passed"
	SessionFailed     SessionState = "failed"
)

// SubmittedAnswer records one answer in a session.
type SubmittedAnswer struct {
	QuestionID string    `json:"question_id"`
	Option     int       `json:"option"`
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

// QuizSession is one learner's pass through the questions of a unit. Sessions are
// not restartable: a failed unit is retried with a new session.
type QuizSession struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Unit      Position          `json:"unit"`
	ExamType  ExamTrack         `json:"exam_type,omitempty"`
	Questions []Question        `json:"questions"`
	Answers   []SubmittedAnswer `json:"answers"`
	Correct   int               `json:"correct"`
	Mistakes  int               `json:"mistakes"`
	StartedAt time.Time         `json:"started_at"`
}

// NewQuizSession creates a session over questions, presented in the given order.
func NewQuizSession(id, userID string, unit Position, examType ExamTrack, questions []Question, startedAt time.Time) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, NewNoQuestionsError(unit)
	}
	return &QuizSession{
		ID:        id,
		UserID:    userID,
		Unit:      unit,
		ExamType:  examType,
		Questions: append([]Question(nil), questions...),
		Answers:   make([]SubmittedAnswer, 0, len(questions)),
		StartedAt: startedAt,
	}, nil
}

// Total is the number of questions in the session.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// Answered is the number of questions answered so far.
func (s *QuizSession) Answered() int {
	return len(s.Answers)
}

// Current returns the next unanswered question, or false once all are answered.
func (s *QuizSession) Current() (Question, bool) {
	if s.Answered() >= s.Total() {
		return Question{}, false
	}
	return s.Questions[s.Answered()], true
}

// State evaluates the session. The verdict is only reached once every question has
// been answered; a fourth mistake does not end the session early.
func (s *QuizSession) State() SessionState {
	if s.Answered() < s.Total() {
		return SessionInProgress
	}
	if s.Mistakes <= MaxMistakes {
		return SessionPassed
	}
	return SessionFailed
}

// CanStillPass reports whether the mistake count is still within the threshold.
func (s *QuizSession) CanStillPass() bool {
	return s.Mistakes <= MaxMistakes
}

// SubmitAnswer answers the current question and reports whether option was correct.
// On error the session is left unchanged.
func (s *QuizSession) SubmitAnswer(questionID string, option int, at time.Time) (bool, error) {
	idx := s.indexOf(questionID)
	if idx < 0 {
		return false, NewInvalidInputError(fmt.Sprintf("question %s is not part of session %s", questionID, s.ID))
	}
	if idx < s.Answered() {
		return false, NewAlreadyAnsweredError(questionID)
	}
	if idx > s.Answered() {
		return false, NewInvalidInputError(fmt.Sprintf("question %s answered out of order", questionID))
	}

	q := s.Questions[idx]
	if option < 0 || option >= len(q.Options) {
		return false, NewInvalidInputError(fmt.Sprintf("option %d out of range for question %s", option, questionID))
	}

	correct := q.IsCorrect(option)
	if correct {
		s.Correct++
	} else {
		s.Mistakes++
	}
	s.Answers = append(s.Answers, SubmittedAnswer{
		QuestionID: questionID,
		Option:     option,
		Correct:    correct,
		AnsweredAt: at,
	})
	return correct, nil
}

func (s *QuizSession) indexOf(questionID string) int {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}

// SessionOutcome is the terminal result of a session.
type SessionOutcome struct {
	SessionID    string   `json:"session_id"`
	Unit         Position `json:"unit"`
	Passed       bool     `json:"passed"`
	CorrectCount int      `json:"correct_count"`
	TotalCount   int      `json:"total_count"`
	MistakeCount int      `json:"mistake_count"`
}

// Finalize returns the outcome once every question has been answered.
func (s *QuizSession) Finalize() (SessionOutcome, error) {
	if s.State() == SessionInProgress {
		return SessionOutcome{}, NewIncompleteSessionError(s.Answered(), s.Total())
	}
	return SessionOutcome{
		SessionID:    s.ID,
		Unit:         s.Unit,
		Passed:       s.State() == SessionPassed,
		CorrectCount: s.Correct,
		TotalCount:   s.Total(),
		MistakeCount: s.Mistakes,
	}, nil
}
