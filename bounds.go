package strtoi

import (
	"math"
	"reflect"
)

// Integer is the closed set of destination types strtoi can convert to.
// Named types are supported through their underlying type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// typeClass selects the raw-parse primitive and the range-check rule.
type typeClass int

const (
	classUnsupported typeClass = iota
	classSigned
	classUnsigned
)

// typeBounds is the inclusive representable range of a destination type,
// widened into the 64-bit comparison domain: min is sign-extended, max is
// zero-extended. Invariants: min <= 0 <= max for signed types, min == 0
// for unsigned types.
type typeBounds struct {
	min int64
	max uint64
}

// resolve maps a destination type parameter to its class and bounds.
// Going through reflect.Kind rather than a concrete type switch is what
// makes named types ("type Port uint16") resolve correctly.
func resolve[T Integer]() (typeClass, typeBounds) {
	var zero T
	return resolveKind(reflect.TypeOf(zero).Kind())
}

// resolveKind is the runtime lookup table behind both the generic and the
// pointer APIs. Kinds outside the supported set resolve to
// classUnsupported with zero bounds; those bounds are never consulted
// because convert short-circuits first.
func resolveKind(k reflect.Kind) (typeClass, typeBounds) {
	switch k {
	case reflect.Int:
		return classSigned, typeBounds{min: math.MinInt, max: math.MaxInt}
	case reflect.Int8:
		return classSigned, typeBounds{min: math.MinInt8, max: math.MaxInt8}
	case reflect.Int16:
		return classSigned, typeBounds{min: math.MinInt16, max: math.MaxInt16}
	case reflect.Int32:
		return classSigned, typeBounds{min: math.MinInt32, max: math.MaxInt32}
	case reflect.Int64:
		return classSigned, typeBounds{min: math.MinInt64, max: math.MaxInt64}
	case reflect.Uint:
		return classUnsigned, typeBounds{max: math.MaxUint}
	case reflect.Uint8:
		return classUnsigned, typeBounds{max: math.MaxUint8}
	case reflect.Uint16:
		return classUnsigned, typeBounds{max: math.MaxUint16}
	case reflect.Uint32:
		return classUnsigned, typeBounds{max: math.MaxUint32}
	case reflect.Uint64:
		return classUnsigned, typeBounds{max: math.MaxUint64}
	default:
		return classUnsupported, typeBounds{}
	}
}
