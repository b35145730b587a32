// Package seed loads question banks from YAML files for the seed command.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mvpduo/internal/domain"

	"gopkg.in/yaml.v3"
)

// Bank is one question-bank file: the questions of a single unit and track.
type Bank struct {
	ExamType  string         `yaml:"exam_type"`
	Division  string         `yaml:"division"`
	Kidem     int            `yaml:"kidem"`
	Level     int            `yaml:"level"`
	Bolum     int            `yaml:"bolum"`
	Questions []BankQuestion `yaml:"questions"`
}

// BankQuestion is one question of a bank. Correct is the zero-based index of the
// correct option.
type BankQuestion struct {
	ID          string   `yaml:"id"`
	Text        string   `yaml:"text"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
	Division    string   `yaml:"division"`
}

// Parse decodes one or more YAML documents into questions with the given status.
// Unknown keys are rejected.
func Parse(data []byte, source string, status domain.QuestionStatus) ([]domain.Question, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var questions []domain.Question
	for doc := 0; ; doc++ {
		var bank Bank
		err := dec.Decode(&bank)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", source, doc, err)
		}
		qs, err := bank.toQuestions(status)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", source, doc, err)
		}
		questions = append(questions, qs...)
	}
	return questions, nil
}

func (b Bank) toQuestions(status domain.QuestionStatus) ([]domain.Question, error) {
	track, ok := domain.ParseExamTrack(b.ExamType)
	if !ok {
		return nil, fmt.Errorf("unknown exam_type %q", b.ExamType)
	}
	unit := domain.Position{Kidem: b.Kidem, Level: b.Level, Bolum: b.Bolum}
	if err := unit.Validate(); err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(b.Questions))
	for i, bq := range b.Questions {
		division := bq.Division
		if division == "" {
			division = b.Division
		}
		q := domain.Question{
			ID:            bq.ID,
			ExamType:      track,
			Division:      division,
			Kidem:         unit.Kidem,
			Level:         unit.Level,
			Bolum:         unit.Bolum,
			Text:          strings.TrimSpace(bq.Text),
			Options:       bq.Options,
			CorrectOption: bq.Correct,
			Explanation:   strings.TrimSpace(bq.Explanation),
			Status:        status,
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// LoadFile reads one bank file.
func LoadFile(path string, status domain.QuestionStatus) ([]domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path, status)
}

// LoadPath reads a bank file, or every .yaml/.yml file under a directory in
// lexical order.
func LoadPath(root string, status domain.QuestionStatus) ([]domain.Question, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return LoadFile(root, status)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && (strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(paths)

	var questions []domain.Question
	for _, p := range paths {
		qs, err := LoadFile(p, status)
		if err != nil {
			return nil, err
		}
		questions = append(questions, qs...)
	}
	return questions, nil
}

// CountByUnit groups questions by curriculum coordinate and track.
func CountByUnit(questions []domain.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range questions {
		key := fmt.Sprintf("%s %s", q.Position(), q.ExamType)
		counts[key]++
	}
	return counts
}
