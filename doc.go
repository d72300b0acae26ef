// Package strtoi converts strings to integers of any fixed-width type,
// checking the result against the destination type's representable range
// in the same call.
//
// It is similar to strconv, but the destination type drives the range
// check: one generic function replaces the ParseInt/ParseUint + bitSize +
// manual-narrowing dance, and a single error check is enough to know the
// value fits.
//
// # Quick Start
//
// Generic API (preferred; the destination type is the type parameter):
//
//	port, err := strtoi.Parse[uint16]("8080")
//	mask, err := strtoi.ParseBase[uint32]("ff00ff00", 16)
//	size := strtoi.MustParse[int64]("1048576")
//
// Pointer API (when the destination is an existing variable):
//
//	var retries uint8
//	if err := strtoi.ParseInto("3", &retries); err != nil {
//	    log.Fatal(err)
//	}
//
// The pointer variant writes the destination only on success; on failure
// it is left untouched.
//
// # Supported Types
//
// The supported set is closed: int, int8, int16, int32, int64, uint,
// uint8, uint16, uint32 and uint64, plus any type whose underlying type
// is one of those (the generic API resolves named types such as
// "type Port uint16" through their underlying kind). byte and rune are
// covered as uint8 and int32. Handing ParseInto a pointer to anything
// else fails with ErrType before the string is even looked at.
//
// # Base Handling
//
// Base 0 auto-detects the radix from the string prefix: "0x" means hex,
// a leading "0" means octal, otherwise decimal. Go's integer-literal
// conventions apply, so "0b"/"0o" prefixes and digit-group underscores
// are accepted too. An explicit base in [2,36] forces that radix.
//
// # Error Handling
//
// Every failure is a *ParseError wrapping exactly one of three sentinel
// errors, so callers branch with errors.Is:
//
//	v, err := strtoi.Parse[int8](input)
//	switch {
//	case errors.Is(err, strtoi.ErrRange):  // syntactically valid, doesn't fit
//	case errors.Is(err, strtoi.ErrSyntax): // empty, garbage, trailing junk
//	case errors.Is(err, strtoi.ErrType):   // unsupported destination
//	}
//
// A negative input for an unsigned destination is an ErrRange, not an
// ErrSyntax: "-1" is a perfectly well-formed integer that no unsigned
// type can hold.
//
// All functions are pure and goroutine-safe; there is no shared state,
// no allocation beyond the result, and no logging.
package strtoi
