package typeinfo

import (
	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/parser"
	"github.com/wippyai/typeflow/serializer"
)

// entry binds one basic tag to its descriptor and constructors.
type entry struct {
	desc      *BasicType
	newParser func() parser.Untyped
}

// registry is closed: tags are resolved here at configuration time and
// nowhere else.
var registry = map[Tag]entry{
	String:  basic(String, serializer.String, parser.NewStringParser),
	Bool:    basic(Bool, serializer.Bool, parser.NewBoolParser),
	Int8:    basic(Int8, serializer.Int8, parser.NewInt8Parser),
	Int16:   basic(Int16, serializer.Int16, parser.NewInt16Parser),
	Int32:   basic(Int32, serializer.Int32, parser.NewInt32Parser),
	Int64:   basic(Int64, serializer.Int64, parser.NewInt64Parser),
	Float32: basic(Float32, serializer.Float32, parser.NewFloat32Parser),
	Float64: basic(Float64, serializer.Float64, parser.NewFloat64Parser),
	Char:    basic(Char, serializer.Char, parser.NewCharParser),
}

func basic[T any](t Tag, s *serializer.Scalar[T], p func() parser.FieldParser[T]) entry {
	erased := serializer.Erase[T](s)
	return entry{
		desc: &BasicType{
			tag:    t,
			create: func() serializer.Serializer[any] { return erased },
		},
		newParser: func() parser.Untyped { return parser.Erase(p()) },
	}
}

func lookup(t Tag) (entry, error) {
	e, ok := registry[t]
	if !ok {
		return entry{}, errors.InvalidType(nil, t.String(), "no basic type registered")
	}
	return e, nil
}

// Basic returns the descriptor registered for t.
func Basic(t Tag) (*BasicType, error) {
	e, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return e.desc, nil
}

// SerializerFor returns the scalar codec registered for t.
func SerializerFor(t Tag) (serializer.Serializer[any], error) {
	e, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return e.desc.create(), nil
}

// ParserFor returns a new field parser for t.
func ParserFor(t Tag) (parser.Untyped, error) {
	e, err := lookup(t)
	if err != nil {
		return nil, err
	}
	return e.newParser(), nil
}

// HasParser reports whether t has a registered field parser.
func HasParser(t Tag) bool {
	_, ok := registry[t]
	return ok
}

// BasicTupleType builds a tuple descriptor from basic tags. It fails with
// invalid_type when tags is empty or any tag is None or unregistered.
func BasicTupleType(tags ...Tag) (*TupleType, error) {
	if len(tags) == 0 {
		return nil, errors.InvalidType(nil, "", "no field types given")
	}
	fields := make([]Descriptor, len(tags))
	for i, t := range tags {
		e, ok := registry[t]
		if !ok {
			return nil, errors.InvalidType([]string{fieldSegment(i)}, t.String(), "not a basic type")
		}
		fields[i] = e.desc
	}
	return NewTupleType(fields...)
}
