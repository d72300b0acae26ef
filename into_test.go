package strtoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInto(t *testing.T) {
	t.Run("signed destinations", func(t *testing.T) {
		var i8 int8
		require.NoError(t, ParseInto("-128", &i8))
		assert.Equal(t, int8(-128), i8)

		var i16 int16
		require.NoError(t, ParseInto("-32768", &i16))
		assert.Equal(t, int16(-32768), i16)

		var i32 int32
		require.NoError(t, ParseInto("2147483647", &i32))
		assert.Equal(t, int32(2147483647), i32)

		var i64 int64
		require.NoError(t, ParseInto("-9223372036854775808", &i64))
		assert.Equal(t, int64(-9223372036854775808), i64)

		var i int
		require.NoError(t, ParseInto("42", &i))
		assert.Equal(t, 42, i)
	})

	t.Run("unsigned destinations", func(t *testing.T) {
		var u8 uint8
		require.NoError(t, ParseInto("255", &u8))
		assert.Equal(t, uint8(255), u8)

		var u16 uint16
		require.NoError(t, ParseInto("65535", &u16))
		assert.Equal(t, uint16(65535), u16)

		var u32 uint32
		require.NoError(t, ParseInto("4294967295", &u32))
		assert.Equal(t, uint32(4294967295), u32)

		var u64 uint64
		require.NoError(t, ParseInto("18446744073709551615", &u64))
		assert.Equal(t, uint64(18446744073709551615), u64)

		var u uint
		require.NoError(t, ParseInto("42", &u))
		assert.Equal(t, uint(42), u)
	})

	t.Run("destination untouched on failure", func(t *testing.T) {
		v := uint8(7)
		err := ParseInto("300", &v)
		assert.ErrorIs(t, err, ErrRange)
		assert.Equal(t, uint8(7), v)

		err = ParseInto("abc", &v)
		assert.ErrorIs(t, err, ErrSyntax)
		assert.Equal(t, uint8(7), v)
	})
}

func TestParseBaseInto(t *testing.T) {
	t.Run("explicit base", func(t *testing.T) {
		var v int32
		require.NoError(t, ParseBaseInto("2A", 16, &v))
		assert.Equal(t, int32(42), v)
	})

	t.Run("auto-detect", func(t *testing.T) {
		var v uint32
		require.NoError(t, ParseBaseInto("0x2A", 0, &v))
		assert.Equal(t, uint32(42), v)

		require.NoError(t, ParseBaseInto("052", 0, &v))
		assert.Equal(t, uint32(42), v)
	})
}

func TestParseIntoUnsupported(t *testing.T) {
	// A string that would parse fine anywhere else, so the only possible
	// failure is the destination type itself.
	const text = "42"

	t.Run("pointer to float", func(t *testing.T) {
		var f float64
		assert.ErrorIs(t, ParseInto(text, &f), ErrType)
	})

	t.Run("pointer to string", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, ParseInto(text, &s), ErrType)
	})

	t.Run("pointer to bool", func(t *testing.T) {
		var b bool
		assert.ErrorIs(t, ParseInto(text, &b), ErrType)
	})

	t.Run("non-pointer", func(t *testing.T) {
		assert.ErrorIs(t, ParseInto(text, 42), ErrType)
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ParseInto(text, nil), ErrType)
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		var p *int
		assert.ErrorIs(t, ParseInto(text, p), ErrType)
	})

	t.Run("invalid text still reports the type error", func(t *testing.T) {
		var f float64
		assert.ErrorIs(t, ParseInto("not a number", &f), ErrType)
	})
}
