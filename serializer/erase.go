package serializer

import (
	"fmt"
	"reflect"

	"github.com/wippyai/typeflow"
	"github.com/wippyai/typeflow/errors"
)

// Erase adapts s to Serializer[any] so it can be composed into tuples and
// object arrays whose field types are only known at runtime.
//
// Serialize of a value of the wrong Go type returns a type_mismatch error.
// Copy has no error return and panics with the same error instead.
// A reuse argument of the wrong type is ignored.
func Erase[T any](s Serializer[T]) Serializer[any] {
	if a, ok := any(s).(Serializer[any]); ok {
		return a
	}
	return &erased[T]{s: s, want: reflect.TypeFor[T]().String()}
}

type erased[T any] struct {
	s    Serializer[T]
	want string
}

func (e *erased[T]) CreateInstance() any { return e.s.CreateInstance() }

func (e *erased[T]) Copy(from, reuse any) any {
	f, ok := from.(T)
	if !ok {
		panic(errors.TypeMismatch(errors.PhaseCopy, nil, typeName(from), e.want))
	}
	r, _ := reuse.(T)
	return e.s.Copy(f, r)
}

func (e *erased[T]) Serialize(v any, out typeflow.DataOutput) error {
	x, ok := v.(T)
	if !ok {
		if v == nil {
			return errors.NilPointer(errors.PhaseSerialize, nil, e.want)
		}
		return errors.TypeMismatch(errors.PhaseSerialize, nil, typeName(v), e.want)
	}
	return e.s.Serialize(x, out)
}

func (e *erased[T]) Deserialize(reuse any, in typeflow.DataInput) (any, error) {
	r, _ := reuse.(T)
	v, err := e.s.Deserialize(r, in)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e *erased[T]) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	return e.s.Transcode(in, out)
}

func (e *erased[T]) Length() int { return e.s.Length() }

// Unwrap returns the typed serializer behind an erased one.
func (e *erased[T]) Unwrap() any { return e.s }

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
