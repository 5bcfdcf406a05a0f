package appliance

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of input problem that occurred
type ErrorType int

const (
	// ErrTypeInvalidInput indicates input that could not be parsed as a number
	ErrTypeInvalidInput ErrorType = iota
	// ErrTypeOutOfRange indicates a numeric field value outside its allowed range
	ErrTypeOutOfRange
	// ErrTypeInvalidChoice indicates a menu choice outside 1-4
	ErrTypeInvalidChoice
	// ErrTypeEmptyStore indicates a listing or search against an empty store
	ErrTypeEmptyStore
)

// Sentinel errors for use with errors.Is
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrEmptyStore    = errors.New("no appliances registered")
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidInput:
		return "Invalid Input"
	case ErrTypeOutOfRange:
		return "Out Of Range"
	case ErrTypeInvalidChoice:
		return "Invalid Choice"
	case ErrTypeEmptyStore:
		return "Empty Store"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

func (et ErrorType) sentinel() error {
	switch et {
	case ErrTypeInvalidInput:
		return ErrInvalidInput
	case ErrTypeOutOfRange:
		return ErrOutOfRange
	case ErrTypeInvalidChoice:
		return ErrInvalidChoice
	case ErrTypeEmptyStore:
		return ErrEmptyStore
	default:
		return nil
	}
}

// Error describes a rejected or normalized input. Field names the appliance
// field involved ("power_rating", "daily_hours") and is empty for menu errors.
type Error struct {
	Type    ErrorType // Category of error
	Field   string    // Field the value was meant for
	Message string    // User-facing message, printed verbatim by the console
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching this error's type
func (e *Error) Is(target error) bool {
	s := e.Type.sentinel()
	return s != nil && target == s
}

// NewInvalidInputError creates an error for unparseable numeric input
func NewInvalidInputError(field, message string, err error) *Error {
	return &Error{Type: ErrTypeInvalidInput, Field: field, Message: message, Err: err}
}

// NewOutOfRangeError creates an error for a field value outside its range
func NewOutOfRangeError(field, message string) *Error {
	return &Error{Type: ErrTypeOutOfRange, Field: field, Message: message}
}

// NewInvalidChoiceError creates an error for a menu choice outside 1-4
func NewInvalidChoiceError(choice int) *Error {
	return &Error{
		Type:    ErrTypeInvalidChoice,
		Message: "Invalid choice! Please enter 1-4.",
		Err:     fmt.Errorf("choice %d", choice),
	}
}

// NewEmptyStoreError creates an error reporting that nothing is registered
func NewEmptyStoreError() *Error {
	return &Error{Type: ErrTypeEmptyStore, Message: "No appliances registered yet."}
}

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return hasType(err, ErrTypeInvalidInput)
}

// IsOutOfRange checks if an error is an out-of-range error
func IsOutOfRange(err error) bool {
	return hasType(err, ErrTypeOutOfRange)
}

// IsInvalidChoice checks if an error is an invalid menu choice error
func IsInvalidChoice(err error) bool {
	return hasType(err, ErrTypeInvalidChoice)
}

// IsEmptyStore checks if an error reports an empty store
func IsEmptyStore(err error) bool {
	return hasType(err, ErrTypeEmptyStore)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// UserMessage returns the text to show the user for err
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
