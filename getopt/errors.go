package getopt

import (
	"errors"
	"fmt"
)

// ErrDone is the sentinel returned by Parser.Next once the scan has reached
// end-of-options. It is not a failure; callers loop until they observe it.
var ErrDone = errors.New("no more options")

// ErrorType represents the parse error categories.
type ErrorType string

const (
	// ErrorTypeUnknownOption means the scanned character is not present in
	// the option specification.
	ErrorTypeUnknownOption ErrorType = "unknown_option"
	// ErrorTypeMissingArgument means an option requiring an argument
	// reached the end of the argument vector without one.
	ErrorTypeMissingArgument ErrorType = "missing_argument"
)

// ParseError is the structured error produced by Parser.Next. It carries
// the offending option character so callers can render their own
// diagnostics; the parser itself never prints anything. After a ParseError
// the cursor has already moved past the culprit, so the scan can continue.
type ParseError struct {
	Type ErrorType
	Char rune
}

func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeMissingArgument:
		return fmt.Sprintf("option requires an argument -- %q", e.Char)
	default:
		return fmt.Sprintf("unknown option -- %q", e.Char)
	}
}

func newParseError(typ ErrorType, char rune) *ParseError {
	return &ParseError{Type: typ, Char: char}
}
