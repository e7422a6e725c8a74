package typeinfo

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/serializer"
	"github.com/wippyai/typeflow/tuple"
	"github.com/wippyai/typeflow/value"
)

// Descriptor describes the shape of a record value. Descriptors are
// immutable and safe to share between goroutines; each call to
// CreateSerializer returns a new serializer tree owned by the caller.
type Descriptor interface {
	Kind() Kind
	// Arity is the number of fields for tuples and 1 otherwise.
	Arity() int
	IsBasic() bool
	IsTuple() bool
	CreateSerializer() (serializer.Serializer[any], error)
	String() string
}

// BasicType describes one registered scalar type.
type BasicType struct {
	tag    Tag
	create func() serializer.Serializer[any]
}

func (t *BasicType) Kind() Kind     { return KindBasic }
func (t *BasicType) Arity() int     { return 1 }
func (t *BasicType) IsBasic() bool  { return true }
func (t *BasicType) IsTuple() bool  { return false }
func (t *BasicType) Tag() Tag       { return t.tag }
func (t *BasicType) String() string { return t.tag.String() }

func (t *BasicType) CreateSerializer() (serializer.Serializer[any], error) {
	return t.create(), nil
}

// TupleType describes a fixed-arity product of field descriptors.
type TupleType struct {
	fields []Descriptor
}

// NewTupleType builds a tuple descriptor. The arity must lie in
// [1, tuple.MaxArity) and no field may be nil.
func NewTupleType(fields ...Descriptor) (*TupleType, error) {
	if len(fields) == 0 || len(fields) >= tuple.MaxArity {
		return nil, errors.InvalidConfiguration("tuple arity %d outside [1, %d)", len(fields), tuple.MaxArity)
	}
	for i, f := range fields {
		if f == nil {
			return nil, errors.InvalidType([]string{fieldSegment(i)}, "nil", "field type is nil")
		}
	}
	owned := make([]Descriptor, len(fields))
	copy(owned, fields)
	return &TupleType{fields: owned}, nil
}

func (t *TupleType) Kind() Kind    { return KindTuple }
func (t *TupleType) Arity() int    { return len(t.fields) }
func (t *TupleType) IsBasic() bool { return false }
func (t *TupleType) IsTuple() bool { return true }

// TypeAt returns the descriptor of field pos.
func (t *TupleType) TypeAt(pos int) (Descriptor, error) {
	if pos < 0 || pos >= len(t.fields) {
		return nil, errors.IndexOutOfRange(pos, len(t.fields))
	}
	return t.fields[pos], nil
}

// CreateSerializer derives the tuple codec, erased for nesting.
func (t *TupleType) CreateSerializer() (serializer.Serializer[any], error) {
	s, err := t.CreateTupleSerializer()
	if err != nil {
		return nil, err
	}
	return serializer.Erase[*tuple.Tuple](s), nil
}

// CreateTupleSerializer derives one child serializer per field, in order.
func (t *TupleType) CreateTupleSerializer() (*serializer.TupleSerializer, error) {
	children := make([]serializer.Serializer[any], len(t.fields))
	for i, f := range t.fields {
		s, err := f.CreateSerializer()
		if err != nil {
			return nil, errors.WithPath(err, fieldSegment(i))
		}
		children[i] = s
	}
	return serializer.NewTuple(children...), nil
}

func (t *TupleType) String() string {
	var b strings.Builder
	b.WriteString("Tuple")
	b.WriteString(strconv.Itoa(len(t.fields)))
	b.WriteByte('<')
	for i, f := range t.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteByte('>')
	return b.String()
}

// GenericType describes an opaque Go type. It has no serializer.
type GenericType struct {
	typ reflect.Type
}

func NewGenericType(t reflect.Type) *GenericType {
	return &GenericType{typ: t}
}

// GenericTypeOf describes T as an opaque type.
func GenericTypeOf[T any]() *GenericType {
	return &GenericType{typ: reflect.TypeFor[T]()}
}

func (t *GenericType) Kind() Kind         { return KindGeneric }
func (t *GenericType) Arity() int         { return 1 }
func (t *GenericType) IsBasic() bool      { return false }
func (t *GenericType) IsTuple() bool      { return false }
func (t *GenericType) Type() reflect.Type { return t.typ }

// CreateSerializer always fails with unsupported_serialization.
func (t *GenericType) CreateSerializer() (serializer.Serializer[any], error) {
	return nil, errors.UnsupportedSerialization(t.String(), "generic types have no serializer")
}

func (t *GenericType) String() string {
	if t.typ == nil {
		return "GenericType<nil>"
	}
	return "GenericType<" + t.typ.String() + ">"
}

// ValueType describes a user value type constructed by newValue.
type ValueType[T value.Value] struct {
	newValue func() T
}

func NewValueType[T value.Value](newValue func() T) *ValueType[T] {
	return &ValueType[T]{newValue: newValue}
}

func (t *ValueType[T]) Kind() Kind    { return KindValue }
func (t *ValueType[T]) Arity() int    { return 1 }
func (t *ValueType[T]) IsBasic() bool { return false }
func (t *ValueType[T]) IsTuple() bool { return false }

// CreateSerializer succeeds only when T is value.Copyable[T].
func (t *ValueType[T]) CreateSerializer() (serializer.Serializer[any], error) {
	s, err := serializer.NewCopyableValue(t.newValue)
	if err != nil {
		return nil, err
	}
	return serializer.Erase[T](s), nil
}

func (t *ValueType[T]) String() string {
	return fmt.Sprintf("ValueType<%s>", reflect.TypeFor[T]())
}

// ArrayType describes an array whose component is known only at runtime.
// Its values are *serializer.ObjectArray tagged with the component name.
type ArrayType struct {
	component Descriptor
}

func NewArrayType(component Descriptor) (*ArrayType, error) {
	if component == nil {
		return nil, errors.InvalidType(nil, "nil", "array component type is nil")
	}
	return &ArrayType{component: component}, nil
}

func (t *ArrayType) Kind() Kind            { return KindArray }
func (t *ArrayType) Arity() int            { return 1 }
func (t *ArrayType) IsBasic() bool         { return false }
func (t *ArrayType) IsTuple() bool         { return false }
func (t *ArrayType) Component() Descriptor { return t.component }

func (t *ArrayType) CreateSerializer() (serializer.Serializer[any], error) {
	c, err := t.component.CreateSerializer()
	if err != nil {
		return nil, errors.WithPath(err, "elem")
	}
	return serializer.Erase[*serializer.ObjectArray](serializer.NewObjectArray(t.component.String(), c)), nil
}

func (t *ArrayType) String() string {
	return "Array<" + t.component.String() + ">"
}

func fieldSegment(i int) string {
	return "field[" + strconv.Itoa(i) + "]"
}
