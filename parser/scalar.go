package parser

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// scalar parses a column with a conversion that cannot use the reuse value.
type scalar[T any] struct {
	convert func(span []byte) (T, bool)
}

func (s scalar[T]) CreateValue() T {
	var zero T
	return zero
}

func (s scalar[T]) ParseField(b []byte, start, limit int, delim byte, reuse T) (int, T) {
	from, to, next := LocateField(b, start, limit, delim)
	if next == Malformed {
		return Malformed, reuse
	}
	v, ok := s.convert(b[from:to])
	if !ok {
		return Malformed, reuse
	}
	return next, v
}

// NewStringParser accepts any content, including an empty column.
func NewStringParser() FieldParser[string] {
	return scalar[string]{convert: func(span []byte) (string, bool) {
		return string(span), true
	}}
}

// NewBoolParser accepts true, false, 1 and 0, ignoring case.
func NewBoolParser() FieldParser[bool] {
	return scalar[bool]{convert: parseBool}
}

func NewInt8Parser() FieldParser[int8] {
	return scalar[int8]{convert: func(span []byte) (int8, bool) {
		v, ok := parseInt(span, 8)
		return int8(v), ok
	}}
}

func NewInt16Parser() FieldParser[int16] {
	return scalar[int16]{convert: func(span []byte) (int16, bool) {
		v, ok := parseInt(span, 16)
		return int16(v), ok
	}}
}

func NewInt32Parser() FieldParser[int32] {
	return scalar[int32]{convert: func(span []byte) (int32, bool) {
		v, ok := parseInt(span, 32)
		return int32(v), ok
	}}
}

func NewInt64Parser() FieldParser[int64] {
	return scalar[int64]{convert: func(span []byte) (int64, bool) {
		return parseInt(span, 64)
	}}
}

func NewFloat32Parser() FieldParser[float32] {
	return scalar[float32]{convert: func(span []byte) (float32, bool) {
		v, ok := parseFloat(span, 32)
		return float32(v), ok
	}}
}

func NewFloat64Parser() FieldParser[float64] {
	return scalar[float64]{convert: func(span []byte) (float64, bool) {
		return parseFloat(span, 64)
	}}
}

// NewCharParser accepts exactly one UTF-8 encoded rune.
func NewCharParser() FieldParser[rune] {
	return scalar[rune]{convert: parseChar}
}

func parseBool(span []byte) (bool, bool) {
	switch {
	case len(span) == 1 && span[0] == '1':
		return true, true
	case len(span) == 1 && span[0] == '0':
		return false, true
	case bytes.EqualFold(span, []byte("true")):
		return true, true
	case bytes.EqualFold(span, []byte("false")):
		return false, true
	}
	return false, false
}

// parseInt parses an optionally signed decimal integer that fits in bits.
func parseInt(span []byte, bits int) (int64, bool) {
	if len(span) == 0 {
		return 0, false
	}
	neg := false
	switch span[0] {
	case '-':
		neg = true
		span = span[1:]
	case '+':
		span = span[1:]
	}
	if len(span) == 0 {
		return 0, false
	}

	limit := uint64(1) << (bits - 1)
	if !neg {
		limit--
	}
	var n uint64
	for _, c := range span {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if neg {
		return int64(-n), true
	}
	return int64(n), true
}

func parseFloat(span []byte, bits int) (float64, bool) {
	if len(span) == 0 {
		return 0, false
	}
	// out of range values fail with ErrRange
	v, err := strconv.ParseFloat(string(span), bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseChar(span []byte) (rune, bool) {
	r, size := utf8.DecodeRune(span)
	if size == 0 || size != len(span) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}
