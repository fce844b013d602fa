package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

const maxAnswerLen = 1024

// StartSessionInput holds parameters for starting a session.
type StartSessionInput struct {
	LanguageCode string
	SessionKind  domain.SessionKind
}

// Validate validates the start input.
func (i StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.LanguageCode) == "" {
		errs = append(errs, domain.FieldError{Field: "language_code", Message: "required"})
	}
	if !i.SessionKind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "session_type", Message: "must be study or test"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitAnswerInput holds parameters for answering the current deck item.
type SubmitAnswerInput struct {
	SessionID uuid.UUID
	WordID    uuid.UUID
	TestKind  domain.TestKind
	Answer    string
}

// Validate validates the submit input. Only the two active test flows
// are accepted; the legacy recognition kind cannot be submitted.
func (i SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	switch i.TestKind {
	case domain.TestKindListenWrite, domain.TestKindReadSpeak:
	default:
		errs = append(errs, domain.FieldError{Field: "test_type", Message: "must be listen_write or read_speak"})
	}
	if len(i.Answer) > maxAnswerLen {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsInput holds pagination parameters for session history.
type ListSessionsInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListSessionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
