package serializer

import (
	"strconv"

	"github.com/wippyai/typeflow"
	"github.com/wippyai/typeflow/errors"
)

// Array wire format:
//
//	[int32 count] then per element [u8 present] [component encoding if present]

// ArraySerializer encodes arrays of a statically known component type.
// A nil element pointer is an absent element. A nil slice encodes as an
// empty array.
type ArraySerializer[C any] struct {
	component Serializer[C]
}

// NewArray builds an array codec around component.
func NewArray[C any](component Serializer[C]) *ArraySerializer[C] {
	return &ArraySerializer[C]{component: component}
}

// Component returns the element serializer.
func (s *ArraySerializer[C]) Component() Serializer[C] { return s.component }

func (s *ArraySerializer[C]) CreateInstance() []*C { return []*C{} }

// Copy reuses the target only when its length equals len(from); otherwise
// reuse is left untouched and a new slice is returned.
func (s *ArraySerializer[C]) Copy(from, reuse []*C) []*C {
	if reuse == nil || len(reuse) != len(from) {
		reuse = make([]*C, len(from))
	}
	for i, e := range from {
		if e == nil {
			reuse[i] = nil
			continue
		}
		reuse[i] = s.into(reuse[i], s.component.Copy(*e, s.current(reuse[i])))
	}
	return reuse
}

func (s *ArraySerializer[C]) Serialize(v []*C, out typeflow.DataOutput) error {
	if err := writeCount(len(v), out); err != nil {
		return err
	}
	for i, e := range v {
		if err := writePresent(e != nil, out); err != nil {
			return err
		}
		if e == nil {
			continue
		}
		if err := s.component.Serialize(*e, out); err != nil {
			return errors.WithPath(err, elemSegment(i))
		}
	}
	return nil
}

// Deserialize decodes into reuse when it has the decoded length. A fresh
// slice grows as elements arrive.
func (s *ArraySerializer[C]) Deserialize(reuse []*C, in typeflow.DataInput) ([]*C, error) {
	n, err := readCount(in)
	if err != nil {
		return reuse, err
	}
	fresh := reuse == nil || len(reuse) != n
	if fresh {
		reuse = make([]*C, 0, min(n, maxPrealloc))
	}
	for i := 0; i < n; i++ {
		var prev *C
		if !fresh {
			prev = reuse[i]
		}
		e, err := s.readElem(prev, in)
		if err != nil {
			return reuse, errors.WithPath(truncated(err, true), elemSegment(i))
		}
		if fresh {
			reuse = append(reuse, e)
		} else {
			reuse[i] = e
		}
	}
	return reuse, nil
}

func (s *ArraySerializer[C]) readElem(prev *C, in typeflow.DataInput) (*C, error) {
	present, err := readPresent(in)
	if err != nil || !present {
		return nil, err
	}
	v, err := s.component.Deserialize(s.current(prev), in)
	if err != nil {
		return nil, err
	}
	return s.into(prev, v), nil
}

func (s *ArraySerializer[C]) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	return transcodeArray(s.component.Transcode, in, out)
}

func (s *ArraySerializer[C]) Length() int { return VariableLength }

func (s *ArraySerializer[C]) current(p *C) C {
	if p == nil {
		var zero C
		return zero
	}
	return *p
}

func (s *ArraySerializer[C]) into(p *C, v C) *C {
	if p == nil {
		p = new(C)
	}
	*p = v
	return p
}

// ObjectArray is an array whose component type is only known at runtime.
// Component names the element type; nil elements are absent.
type ObjectArray struct {
	Component string
	Elems     []any
}

// ObjectArraySerializer encodes ObjectArrays through an erased component
// serializer. The component tag travels with the value, not the bytes.
type ObjectArraySerializer struct {
	component Serializer[any]
	tag       string
}

// NewObjectArray builds an object array codec for elements described by tag.
func NewObjectArray(tag string, component Serializer[any]) *ObjectArraySerializer {
	return &ObjectArraySerializer{component: component, tag: tag}
}

func (s *ObjectArraySerializer) Tag() string { return s.tag }

func (s *ObjectArraySerializer) CreateInstance() *ObjectArray {
	return &ObjectArray{Component: s.tag, Elems: []any{}}
}

func (s *ObjectArraySerializer) compatible(a *ObjectArray, n int) bool {
	return a != nil && a.Elems != nil && len(a.Elems) == n
}

func (s *ObjectArraySerializer) Copy(from, reuse *ObjectArray) *ObjectArray {
	if from == nil {
		panic(errors.NilPointer(errors.PhaseCopy, nil, "*serializer.ObjectArray"))
	}
	if !s.compatible(reuse, len(from.Elems)) {
		reuse = &ObjectArray{Elems: make([]any, len(from.Elems))}
	}
	reuse.Component = s.tag
	for i, e := range from.Elems {
		if e == nil {
			reuse.Elems[i] = nil
			continue
		}
		reuse.Elems[i] = s.component.Copy(e, reuse.Elems[i])
	}
	return reuse
}

func (s *ObjectArraySerializer) Serialize(v *ObjectArray, out typeflow.DataOutput) error {
	if v == nil {
		return errors.NilPointer(errors.PhaseSerialize, nil, "*serializer.ObjectArray")
	}
	if v.Component != s.tag {
		return errors.TypeMismatch(errors.PhaseSerialize, nil, "Array<"+v.Component+">", "Array<"+s.tag+">")
	}
	if err := writeCount(len(v.Elems), out); err != nil {
		return err
	}
	for i, e := range v.Elems {
		if err := writePresent(e != nil, out); err != nil {
			return err
		}
		if e == nil {
			continue
		}
		if err := s.component.Serialize(e, out); err != nil {
			return errors.WithPath(err, elemSegment(i))
		}
	}
	return nil
}

func (s *ObjectArraySerializer) Deserialize(reuse *ObjectArray, in typeflow.DataInput) (*ObjectArray, error) {
	n, err := readCount(in)
	if err != nil {
		return reuse, err
	}
	fresh := !s.compatible(reuse, n)
	if fresh {
		reuse = &ObjectArray{Elems: make([]any, 0, min(n, maxPrealloc))}
	}
	reuse.Component = s.tag
	for i := 0; i < n; i++ {
		var prev any
		if !fresh {
			prev = reuse.Elems[i]
		}
		e, err := s.readElem(prev, in)
		if err != nil {
			return reuse, errors.WithPath(truncated(err, true), elemSegment(i))
		}
		if fresh {
			reuse.Elems = append(reuse.Elems, e)
		} else {
			reuse.Elems[i] = e
		}
	}
	return reuse, nil
}

func (s *ObjectArraySerializer) readElem(prev any, in typeflow.DataInput) (any, error) {
	present, err := readPresent(in)
	if err != nil || !present {
		return nil, err
	}
	return s.component.Deserialize(prev, in)
}

func (s *ObjectArraySerializer) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	return transcodeArray(s.component.Transcode, in, out)
}

func (s *ObjectArraySerializer) Length() int { return VariableLength }

func transcodeArray(elem func(typeflow.DataInput, typeflow.DataOutput) error, in typeflow.DataInput, out typeflow.DataOutput) error {
	n, err := readCount(in)
	if err != nil {
		return err
	}
	if err := writeCount(n, out); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		present, err := readPresent(in)
		if err != nil {
			return errors.WithPath(truncated(err, true), elemSegment(i))
		}
		if err := writePresent(present, out); err != nil {
			return err
		}
		if !present {
			continue
		}
		if err := elem(in, out); err != nil {
			return errors.WithPath(truncated(err, true), elemSegment(i))
		}
	}
	return nil
}

func writeCount(n int, out typeflow.DataOutput) error {
	return out.WriteU32(uint32(int32(n)))
}

// maxPrealloc caps the capacity allocated up front for a decoded array.
const maxPrealloc = 1024

// remainder is implemented by inputs that know how many bytes are left.
type remainder interface {
	Remaining() int
}

// readCount reads an array length. Every element takes at least its
// presence byte, so a count larger than the remaining input is rejected
// when the input can tell.
func readCount(in typeflow.DataInput) (int, error) {
	u, err := in.ReadU32()
	if err != nil {
		return 0, err
	}
	n := int32(u)
	if n < 0 {
		return 0, errors.InvalidData(errors.PhaseDeserialize, nil, "negative array length")
	}
	if r, ok := in.(remainder); ok && int(n) > r.Remaining() {
		return 0, errors.New(errors.PhaseDeserialize, errors.KindInvalidData).
			Value(int(n)).
			Detail("array length %d exceeds the %d bytes left", n, r.Remaining()).
			Build()
	}
	return int(n), nil
}

func writePresent(present bool, out typeflow.DataOutput) error {
	return writeBool(present, out)
}

func readPresent(in typeflow.DataInput) (bool, error) {
	return readBool(in)
}

func elemSegment(i int) string {
	return "elem[" + strconv.Itoa(i) + "]"
}
