package typeinfo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wippyai/typeflow"
	tferrors "github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/memory"
	"github.com/wippyai/typeflow/serializer"
	"github.com/wippyai/typeflow/tuple"
	"github.com/wippyai/typeflow/value"
)

func TestRegistryCoversAllTags(t *testing.T) {
	for _, tg := range Tags() {
		t.Run(tg.String(), func(t *testing.T) {
			d, err := Basic(tg)
			if err != nil {
				t.Fatal(err)
			}
			if d.Tag() != tg || !d.IsBasic() || d.Kind() != KindBasic || d.Arity() != 1 {
				t.Errorf("descriptor %v malformed", d)
			}
			if !HasParser(tg) {
				t.Error("missing parser")
			}
			if _, err := ParserFor(tg); err != nil {
				t.Error(err)
			}
			if _, err := SerializerFor(tg); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestRegistryRejectsNone(t *testing.T) {
	if HasParser(None) {
		t.Error("None must not have a parser")
	}
	if _, err := Basic(None); !errors.Is(err, tferrors.ErrInvalidConfiguration) {
		t.Errorf("Basic(None): %v", err)
	}
	if _, err := ParserFor(Tag(200)); !errors.Is(err, tferrors.ErrInvalidType) {
		t.Errorf("ParserFor(200): %v", err)
	}
}

func TestBasicTupleType(t *testing.T) {
	tt, err := BasicTupleType(Int32, String, Float64)
	if err != nil {
		t.Fatal(err)
	}
	if tt.Arity() != 3 || !tt.IsTuple() || tt.IsBasic() {
		t.Errorf("unexpected descriptor %v", tt)
	}
	if got := tt.String(); got != "Tuple3<int32, string, float64>" {
		t.Errorf("String() = %q", got)
	}

	f, err := tt.TypeAt(1)
	if err != nil || f.String() != "string" {
		t.Errorf("TypeAt(1) = %v, %v", f, err)
	}
}

func TestBasicTupleTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
	}{
		{"empty", nil},
		{"none entry", []Tag{Int32, None}},
		{"unregistered", []Tag{Tag(99)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BasicTupleType(tt.tags...)
			if !errors.Is(err, tferrors.ErrInvalidConfiguration) {
				t.Errorf("expected invalid configuration, got %v", err)
			}
			if !errors.Is(err, tferrors.ErrInvalidType) {
				t.Errorf("expected invalid type, got %v", err)
			}
		})
	}
}

func TestTypeAtOutOfRange(t *testing.T) {
	tt, _ := BasicTupleType(Int32, Int64)
	for _, pos := range []int{-1, 2} {
		if _, err := tt.TypeAt(pos); !errors.Is(err, tferrors.ErrIndexOutOfRange) {
			t.Errorf("TypeAt(%d): %v", pos, err)
		}
	}
}

func TestNewTupleTypeArity(t *testing.T) {
	i32, _ := Basic(Int32)

	if _, err := NewTupleType(); !errors.Is(err, tferrors.ErrInvalidConfiguration) {
		t.Errorf("arity 0: %v", err)
	}

	fields := make([]Descriptor, tuple.MaxArity)
	for i := range fields {
		fields[i] = i32
	}
	if _, err := NewTupleType(fields...); !errors.Is(err, tferrors.ErrInvalidConfiguration) {
		t.Errorf("arity MaxArity: %v", err)
	}
	if _, err := NewTupleType(fields[:tuple.MaxArity-1]...); err != nil {
		t.Errorf("arity MaxArity-1: %v", err)
	}
	if _, err := NewTupleType(i32, nil); !errors.Is(err, tferrors.ErrInvalidType) {
		t.Errorf("nil field: %v", err)
	}
}

func TestTupleDerivationMirrorsTypeTree(t *testing.T) {
	inner, _ := BasicTupleType(Bool, Char)
	i64, _ := Basic(Int64)
	outer, err := NewTupleType(i64, inner)
	if err != nil {
		t.Fatal(err)
	}

	s, err := outer.CreateTupleSerializer()
	if err != nil {
		t.Fatal(err)
	}
	if s.Arity() != 2 {
		t.Fatalf("serializer arity %d", s.Arity())
	}
	if s.Length() != 8+1+4 {
		t.Errorf("Length() = %d", s.Length())
	}

	v := tuple.Of(int64(-3), tuple.Of(true, 'z'))
	out := memory.NewOutput()
	if err := s.Serialize(v, out); err != nil {
		t.Fatal(err)
	}
	got, err := s.Deserialize(nil, memory.NewInput(out.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("got %v, want %v", got, v)
	}
}

type point struct{ X, Y int }

func TestGenericTypeUnsupported(t *testing.T) {
	g := GenericTypeOf[point]()
	if g.String() != "GenericType<typeinfo.point>" {
		t.Errorf("String() = %q", g.String())
	}
	if _, err := g.CreateSerializer(); !errors.Is(err, tferrors.ErrUnsupportedSerialization) {
		t.Errorf("expected unsupported serialization, got %v", err)
	}

	// the failure surfaces through an enclosing tuple with its path
	i32, _ := Basic(Int32)
	tt, _ := NewTupleType(i32, g)
	_, err := tt.CreateSerializer()
	var e *tferrors.Error
	if !errors.As(err, &e) || !errors.Is(err, tferrors.ErrUnsupportedSerialization) {
		t.Fatalf("got %v", err)
	}
	if len(e.Path) != 1 || e.Path[0] != "field[1]" {
		t.Errorf("Path = %v", e.Path)
	}
}

type plain struct{ n int32 }

func (p *plain) Write(out typeflow.DataOutput) error { return out.WriteU32(uint32(p.n)) }

func (p *plain) Read(in typeflow.DataInput) error {
	u, err := in.ReadU32()
	p.n = int32(u)
	return err
}

func TestValueType(t *testing.T) {
	vt := NewValueType(func() *value.Long { return &value.Long{} })
	if vt.Kind() != KindValue || vt.String() != "ValueType<*value.Long>" {
		t.Errorf("got %v %q", vt.Kind(), vt.String())
	}
	s, err := vt.CreateSerializer()
	if err != nil {
		t.Fatal(err)
	}
	if s.Length() != 8 {
		t.Errorf("Length() = %d", s.Length())
	}

	nv := NewValueType(func() *plain { return &plain{} })
	if _, err := nv.CreateSerializer(); !errors.Is(err, tferrors.ErrUnsupportedSerialization) {
		t.Errorf("non-copyable value: %v", err)
	}
}

func TestArrayType(t *testing.T) {
	i32, _ := Basic(Int32)
	at, err := NewArrayType(i32)
	if err != nil {
		t.Fatal(err)
	}
	if at.String() != "Array<int32>" || at.Kind() != KindArray {
		t.Errorf("got %q %v", at.String(), at.Kind())
	}

	s, err := at.CreateSerializer()
	if err != nil {
		t.Fatal(err)
	}
	v := &serializer.ObjectArray{Component: "int32", Elems: []any{int32(1), nil, int32(3)}}
	out := memory.NewOutput()
	if err := s.Serialize(v, out); err != nil {
		t.Fatal(err)
	}
	got, err := s.Deserialize(nil, memory.NewInput(out.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("got %+v", got)
	}

	bad, _ := NewArrayType(GenericTypeOf[point]())
	if _, err := bad.CreateSerializer(); !errors.Is(err, tferrors.ErrUnsupportedSerialization) {
		t.Errorf("array of generic: %v", err)
	}
	if _, err := NewArrayType(nil); !errors.Is(err, tferrors.ErrInvalidType) {
		t.Errorf("nil component: %v", err)
	}
}

func TestParseTag(t *testing.T) {
	tg, ok := ParseTag("Long")
	if !ok || tg != Int64 {
		t.Errorf("ParseTag(Long) = %v, %v", tg, ok)
	}
	if _, ok := ParseTag("decimal"); ok {
		t.Error("decimal is not registered")
	}
}
