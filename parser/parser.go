package parser

// FieldParser converts one delimited column into a T.
//
// ParseField scans the column starting at start in b[:limit] and returns the
// start of the next column together with the parsed value. On malformed
// content it returns Malformed and the reuse value unchanged. reuse follows
// the same ownership rule as serializers: use the returned value afterwards.
type FieldParser[T any] interface {
	CreateValue() T
	ParseField(b []byte, start, limit int, delim byte, reuse T) (int, T)
}

// Untyped is a FieldParser over any, used where column types are only known
// at runtime.
type Untyped = FieldParser[any]

// Erase adapts p to Untyped. A reuse value of the wrong type is ignored.
func Erase[T any](p FieldParser[T]) Untyped {
	if u, ok := any(p).(Untyped); ok {
		return u
	}
	return erased[T]{p: p}
}

type erased[T any] struct {
	p FieldParser[T]
}

func (e erased[T]) CreateValue() any { return e.p.CreateValue() }

func (e erased[T]) ParseField(b []byte, start, limit int, delim byte, reuse any) (int, any) {
	r, _ := reuse.(T)
	next, v := e.p.ParseField(b, start, limit, delim, r)
	return next, v
}
