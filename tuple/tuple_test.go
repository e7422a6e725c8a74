package tuple

import (
	"errors"
	"reflect"
	"testing"

	tferrors "github.com/wippyai/typeflow/errors"
)

func TestOf(t *testing.T) {
	src := []any{int32(1), "a", true}
	tp := Of(src...)
	src[0] = int32(9)

	if tp.Arity() != 3 {
		t.Fatalf("Arity() = %d, want 3", tp.Arity())
	}
	if tp.Field(0) != int32(1) {
		t.Errorf("Of must copy its arguments, got %v", tp.Field(0))
	}
	if !reflect.DeepEqual(tp.Fields(), []any{int32(1), "a", true}) {
		t.Errorf("Fields() = %v", tp.Fields())
	}
}

func TestSetField(t *testing.T) {
	tp := New(2)
	tp.SetField(1, "x")
	if tp.Field(0) != nil || tp.Field(1) != "x" {
		t.Errorf("got %v", tp.Fields())
	}
	if got := tp.String(); got != "(<nil>,x)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFieldOutOfRange(t *testing.T) {
	for _, pos := range []int{-1, 2, 10} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, tferrors.ErrIndexOutOfRange) {
					t.Errorf("pos %d: recovered %v, want index_out_of_range", pos, r)
				}
			}()
			New(2).Field(pos)
		}()
	}
}
