package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Credential errors
	ErrEmptyAPIKey                = errors.New("API key cannot be empty")
	ErrCredentialStoreUnavailable = errors.New("credential store unavailable")

	// Tracker errors
	ErrNoTeams         = errors.New("no teams available")
	ErrIssueNotCreated = errors.New("failed to create issue")
	ErrEmptyURL        = errors.New("URL cannot be empty")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Kind classifies a command failure for reporting.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingCredential
	KindValidation
	KindRemote
	KindSubprocess
	KindCredentialStore
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing credential"
	case KindValidation:
		return "validation"
	case KindRemote:
		return "remote"
	case KindSubprocess:
		return "subprocess"
	case KindCredentialStore:
		return "credential store"
	default:
		return "unknown"
	}
}

// Error is the result of a failed command: a kind plus the message shown to the user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with a fixed message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Classify wraps err as kind, keeping its message. Errors that already carry
// a Kind are returned unchanged.
func Classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf reports the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
