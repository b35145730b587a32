package validation

import (
	"regexp"
	"strconv"
	"strings"

	"mvpduo/internal/domain"
	"mvpduo/internal/dto"
)

const maxOptionIndex = 9

var (
	validULID     = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	validDivision = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartSessionRequest validates the unit and track of a new session
func (v *Validator) ValidateStartSessionRequest(req dto.StartSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Kidem < domain.MinKidem {
		errors = append(errors, domain.NewOutOfRangeError("kidem", req.Kidem, domain.MinKidem, domain.MinKidem+99))
	}
	if req.Level < 1 || req.Level > domain.MaxLevel {
		errors = append(errors, domain.NewOutOfRangeError("level", req.Level, 1, domain.MaxLevel))
	}
	if req.Bolum < 1 || req.Bolum > domain.MaxBolum {
		errors = append(errors, domain.NewOutOfRangeError("bolum", req.Bolum, 1, domain.MaxBolum))
	}
	if req.ExamType != "" {
		if _, ok := domain.ParseExamTrack(req.ExamType); !ok {
			errors = append(errors, domain.NewInvalidFormatError("exam_type", req.ExamType))
		}
	}
	if req.Division != "" {
		if req.ExamType == "" {
			errors = append(errors, domain.NewMissingFieldError("exam_type"))
		}
		if !validDivision.MatchString(req.Division) {
			errors = append(errors, domain.NewInvalidFormatError("division", req.Division))
		}
	}

	return errors
}

// ValidateSubmitAnswerRequest validates an answer submission
func (v *Validator) ValidateSubmitAnswerRequest(sessionID string, req dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.ValidateSessionID(sessionID)...)

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !isValidULID(req.QuestionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", req.QuestionID))
	}

	if req.Option == nil {
		errors = append(errors, domain.NewMissingFieldError("option"))
	} else if *req.Option < 0 || *req.Option > maxOptionIndex {
		errors = append(errors, domain.NewOutOfRangeError("option", *req.Option, 0, maxOptionIndex))
	}

	return errors
}

// ValidateSessionID validates a session id path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	if strings.TrimSpace(sessionID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("session_id")}
	}
	if !isValidULID(sessionID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("session_id", sessionID)}
	}
	return nil
}

// ParseLevel validates a level path parameter
func (v *Validator) ParseLevel(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("level")}
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("level", raw)}
	}
	if level < 1 || level > domain.MaxLevel {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("level", level, 1, domain.MaxLevel)}
	}
	return level, nil
}

// ValidatePreferencesRequest requires at least one exam track
func (v *Validator) ValidatePreferencesRequest(req dto.PreferencesRequest) domain.ValidationErrors {
	if !req.ToDomain("").HasAnyTrack() {
		return domain.ValidationErrors{{Field: "exam_types", Message: "select at least one exam type"}}
	}
	return nil
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}
