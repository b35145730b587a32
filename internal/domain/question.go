package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// QuestionStatus is the review state of a question in the content store.
type QuestionStatus string

const (
	QuestionApproved QuestionStatus = "approved"
	QuestionPending  QuestionStatus = "pending"
	QuestionRejected QuestionStatus = "rejected"
)

// Question is a multiple-choice question pinned to one curriculum coordinate.
type Question struct {
	ID            string         `json:"id"`
	ExamType      ExamTrack      `json:"exam_type"`
	Division      string         `json:"division,omitempty"`
	Kidem         int            `json:"kidem"`
	Level         int            `json:"level"`
	Bolum         int            `json:"bolum"`
	Text          string         `json:"question_text"`
	Options       []string       `json:"options"`
	CorrectOption int            `json:"correct_option"`
	Explanation   string         `json:"explanation,omitempty"`
	Status        QuestionStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Position returns the curriculum coordinate of the question.
func (q *Question) Position() Position {
	return Position{Kidem: q.Kidem, Level: q.Level, Bolum: q.Bolum}
}

// IsCorrect reports whether option is the designated correct option.
func (q *Question) IsCorrect(option int) bool {
	return option == q.CorrectOption
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError("question text is required")
	}
	if _, ok := ParseExamTrack(string(q.ExamType)); !ok {
		return NewValidationError(fmt.Sprintf("unknown exam type %q", q.ExamType))
	}
	if err := q.Position().Validate(); err != nil {
		return err
	}
	if len(q.Options) < 2 {
		return NewValidationError("at least two options are required")
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("correct option %d out of range", q.CorrectOption))
	}
	return nil
}

// QuestionFilter selects approved questions for one unit. ExamType wins over
// ExamTypes; when both are empty every track matches. An empty Division matches
// every division.
type QuestionFilter struct {
	ExamType  ExamTrack
	ExamTypes []ExamTrack
	Division  string
	Kidem     int
	Level     int
	Bolum     int
}

// FilterFor builds the filter for a unit.
func FilterFor(pos Position, examType ExamTrack, division string) QuestionFilter {
	return QuestionFilter{
		ExamType: examType,
		Division: division,
		Kidem:    pos.Kidem,
		Level:    pos.Level,
		Bolum:    pos.Bolum,
	}
}

// FilterForTracks builds a filter matching any of tracks.
func FilterForTracks(pos Position, tracks []ExamTrack, division string) QuestionFilter {
	f := FilterFor(pos, "", division)
	f.ExamTypes = tracks
	return f
}

// Tracks returns the tracks the filter admits; nil means all of them.
func (f QuestionFilter) Tracks() []ExamTrack {
	if f.ExamType != "" {
		return []ExamTrack{f.ExamType}
	}
	return f.ExamTypes
}

// ShuffleQuestions puts questions into a session-scoped random order. The order has
// no effect on scoring, so a non-cryptographic source is enough.
func ShuffleQuestions(questions []Question, rng *rand.Rand) []Question {
	out := append([]Question(nil), questions...)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
