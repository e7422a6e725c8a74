package serializer

import (
	"fmt"
	"reflect"

	"github.com/wippyai/typeflow"
	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/value"
)

// CopyableValueSerializer delegates every operation to a value type that
// implements value.Copyable for itself.
type CopyableValueSerializer[T value.Value] struct {
	newValue     func() T
	length       int
	scratch      T
	scratchReady bool
}

// NewCopyableValue builds a codec for T. It fails with
// unsupported_serialization when T is not value.Copyable[T].
func NewCopyableValue[T value.Value](newValue func() T) (*CopyableValueSerializer[T], error) {
	if newValue == nil {
		return nil, errors.NilPointer(errors.PhaseDerive, nil, "constructor")
	}
	probe := newValue()
	c, ok := any(probe).(value.Copyable[T])
	if !ok {
		return nil, errors.UnsupportedSerialization(fmt.Sprintf("%T", probe),
			"value type does not implement the copyable capability")
	}
	return &CopyableValueSerializer[T]{newValue: newValue, length: c.BinaryLength()}, nil
}

func (s *CopyableValueSerializer[T]) CreateInstance() T { return s.newValue() }

func (s *CopyableValueSerializer[T]) Copy(from, reuse T) T {
	if isNil(from) {
		panic(errors.NilPointer(errors.PhaseCopy, nil, fmt.Sprintf("%T", from)))
	}
	if isNil(reuse) {
		reuse = s.newValue()
	}
	any(from).(value.Copyable[T]).CopyTo(reuse)
	return reuse
}

func (s *CopyableValueSerializer[T]) Serialize(v T, out typeflow.DataOutput) error {
	if isNil(v) {
		return errors.NilPointer(errors.PhaseSerialize, nil, fmt.Sprintf("%T", v))
	}
	return v.Write(out)
}

func (s *CopyableValueSerializer[T]) Deserialize(reuse T, in typeflow.DataInput) (T, error) {
	if isNil(reuse) {
		reuse = s.newValue()
	}
	return reuse, reuse.Read(in)
}

func (s *CopyableValueSerializer[T]) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	if !s.scratchReady {
		s.scratch = s.newValue()
		s.scratchReady = true
	}
	return any(s.scratch).(value.Copyable[T]).CopyStream(in, out)
}

func (s *CopyableValueSerializer[T]) Length() int { return s.length }

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
