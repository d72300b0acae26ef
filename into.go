package strtoi

// ParseInto converts s with base auto-detection and stores the result
// through dst (see ParseBaseInto).
func ParseInto(s string, dst any) error {
	return ParseBaseInto(s, 0, dst)
}

// ParseBaseInto converts s, interpreted in the given base, and stores the
// result through dst, which must be a non-nil pointer to one of the plain
// supported integer types (int, int8...int64, uint, uint8...uint64).
//
// The destination is written only on success; on any failure it is left
// exactly as it was. A nil dst, a non-pointer, or a pointer to any other
// type fails with ErrType without inspecting s. Pointers to named integer
// types are not dispatched here; use the generic ParseBase for those.
func ParseBaseInto(s string, base int, dst any) error {
	switch p := dst.(type) {
	case *int:
		return parseAssign(s, base, p)
	case *int8:
		return parseAssign(s, base, p)
	case *int16:
		return parseAssign(s, base, p)
	case *int32:
		return parseAssign(s, base, p)
	case *int64:
		return parseAssign(s, base, p)
	case *uint:
		return parseAssign(s, base, p)
	case *uint8:
		return parseAssign(s, base, p)
	case *uint16:
		return parseAssign(s, base, p)
	case *uint32:
		return parseAssign(s, base, p)
	case *uint64:
		return parseAssign(s, base, p)
	default:
		// Route through the engine so the unsupported case takes the same
		// path as everything else.
		_, err := convert(s, base, classUnsupported, typeBounds{})
		return &ParseError{Text: s, Base: base, Err: err}
	}
}

func parseAssign[T Integer](s string, base int, dst *T) error {
	if dst == nil {
		return &ParseError{Text: s, Base: base, Err: ErrType}
	}
	v, err := ParseBase[T](s, base)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
