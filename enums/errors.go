package enums

import (
	"fmt"
	"strings"
)

// ErrorCode classifies engine failures.
type ErrorCode string

const (
	// ErrCodeUnsupportedUnderlyingType is returned when a type is backed by an
	// encoding outside the supported kinds. It is fatal for that type only.
	ErrCodeUnsupportedUnderlyingType ErrorCode = "UNSUPPORTED_UNDERLYING_TYPE"
	// ErrCodeValueNotDefined is returned by lookups and by Validate on a
	// non-flag type when no member carries the value.
	ErrCodeValueNotDefined ErrorCode = "VALUE_NOT_DEFINED"
	// ErrCodeInvalidFlagCombination is returned by Validate on a flag type when
	// the value carries bits outside the declared flags.
	ErrCodeInvalidFlagCombination ErrorCode = "INVALID_FLAG_COMBINATION"
	// ErrCodeFormat is returned when text does not name a member.
	ErrCodeFormat ErrorCode = "FORMAT_ERROR"
	// ErrCodeAmbiguousMatch is returned when text matches more than one member.
	ErrCodeAmbiguousMatch ErrorCode = "AMBIGUOUS_MATCH"
	// ErrCodeInvalidArgument is returned when a required input is missing.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeNotDeclared is returned by the registry for a type that neither
	// implements Declarer nor was registered.
	ErrCodeNotDeclared ErrorCode = "NOT_DECLARED"
)

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrUnsupportedUnderlyingType = &Error{Code: ErrCodeUnsupportedUnderlyingType}
	ErrValueNotDefined           = &Error{Code: ErrCodeValueNotDefined}
	ErrInvalidFlagCombination    = &Error{Code: ErrCodeInvalidFlagCombination}
	ErrFormat                    = &Error{Code: ErrCodeFormat}
	ErrAmbiguousMatch            = &Error{Code: ErrCodeAmbiguousMatch}
	ErrInvalidArgument           = &Error{Code: ErrCodeInvalidArgument}
	ErrNotDeclared               = &Error{Code: ErrCodeNotDeclared}
)

// Error is the structured failure raised by the engine. Type names the
// enumerated type, Value carries the rejected value or input text.
type Error struct {
	Code       ErrorCode
	Type       string
	Value      string
	IgnoreCase bool // case mode in effect, set for AMBIGUOUS_MATCH
	Detail     string
	Cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	switch e.Code {
	case ErrCodeUnsupportedUnderlyingType:
		fmt.Fprintf(&b, "type %s has an unsupported underlying type", e.Type)
	case ErrCodeValueNotDefined:
		fmt.Fprintf(&b, "value %s is not defined in %s", e.Value, e.Type)
	case ErrCodeInvalidFlagCombination:
		fmt.Fprintf(&b, "value %s is not a valid flag combination of %s", e.Value, e.Type)
	case ErrCodeFormat:
		fmt.Fprintf(&b, "%q does not name a member of %s", e.Value, e.Type)
	case ErrCodeAmbiguousMatch:
		mode := "case-sensitive"
		if e.IgnoreCase {
			mode = "case-insensitive"
		}
		fmt.Fprintf(&b, "%q matches more than one member of %s (%s)", e.Value, e.Type, mode)
	case ErrCodeNotDeclared:
		fmt.Fprintf(&b, "type %s has no enum declaration", e.Type)
	default:
		b.WriteString("invalid argument")
		if e.Type != "" {
			fmt.Fprintf(&b, " for %s", e.Type)
		}
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
