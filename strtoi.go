package strtoi

import (
	"errors"
	"strconv"
	"strings"
)

// Parse converts s to a value of type T, auto-detecting the base from the
// string prefix (see ParseBase with base 0).
func Parse[T Integer](s string) (T, error) {
	return ParseBase[T](s, 0)
}

// ParseBase converts s, interpreted in the given base, to a value of
// type T.
//
// Base 0 auto-detects the radix from the string prefix; an explicit base
// must be in [2,36]. The returned error, if any, is a *ParseError
// wrapping ErrSyntax, ErrRange or ErrType.
func ParseBase[T Integer](s string, base int) (T, error) {
	class, bounds := resolve[T]()

	mag, err := convert(s, base, class, bounds)
	if err != nil {
		var zero T
		return zero, &ParseError{Text: s, Base: base, Err: err}
	}

	// Lossless: convert already proved the magnitude fits T. For unsigned
	// T the int64->T conversion is bit-preserving, so even a uint64 value
	// above MaxInt64 round-trips.
	return T(mag), nil
}

// MustParse is like Parse but panics on error. Intended for literals and
// tests, not for untrusted input.
func MustParse[T Integer](s string) T {
	return MustParseBase[T](s, 0)
}

// MustParseBase is like ParseBase but panics on error.
func MustParseBase[T Integer](s string, base int) T {
	v, err := ParseBase[T](s, base)
	if err != nil {
		panic(err)
	}
	return v
}

// convert is the conversion engine: parse s in the given base as a 64-bit
// magnitude, then check the magnitude against bounds under the rules of
// class. The returned error is one of the bare sentinels; callers wrap it
// into a *ParseError.
func convert(s string, base int, class typeClass, bounds typeBounds) (int64, error) {
	if class == classUnsupported {
		return 0, ErrType
	}

	if class == classUnsigned {
		u, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, ErrRange
			}
			// ParseUint reports a minus sign as a syntax error, but a
			// well-formed negative number is a value no unsigned type can
			// hold, not malformed input. Classify it as a range error.
			if rest, ok := strings.CutPrefix(s, "-"); ok {
				if _, rerr := strconv.ParseUint(rest, base, 64); rerr == nil || errors.Is(rerr, strconv.ErrRange) {
					return 0, ErrRange
				}
			}
			return 0, ErrSyntax
		}
		if u > bounds.max {
			return 0, ErrRange
		}
		return int64(u), nil
	}

	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	if v < bounds.min || (v > 0 && uint64(v) > bounds.max) {
		return 0, ErrRange
	}
	return v, nil
}
