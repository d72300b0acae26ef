package strtoi

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when the string is not a well-formed integer
	// in the requested base: empty input, non-numeric leading content,
	// trailing characters after the numeric portion, or a base outside
	// 0 and [2,36].
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned when the string is a well-formed integer whose
	// value does not fit the destination type, including negative input
	// for unsigned destinations and values that overflow even the 64-bit
	// parsing domain.
	ErrRange = errors.New("value out of range")

	// ErrType is returned when the destination is outside the closed set
	// of supported integer types. Detected before any parsing happens.
	ErrType = errors.New("unsupported destination type")
)

// ParseError records a failed conversion. It wraps exactly one of the
// sentinel errors ErrSyntax, ErrRange or ErrType, which can be accessed
// via errors.Unwrap and matched with errors.Is.
type ParseError struct {
	Text string // the input string
	Base int    // the requested base (0 means auto-detect)
	Err  error  // the failure kind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strtoi: parsing %q (base %d): %v", e.Text, e.Base, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
