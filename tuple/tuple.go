// Package tuple provides the fixed-arity product value carried through
// record pipelines.
package tuple

import (
	"fmt"
	"strings"

	"github.com/wippyai/typeflow/errors"
)

// MaxArity is the exclusive upper bound on tuple arity.
const MaxArity = 22

// Tuple is a fixed-arity sequence of positional fields.
// The zero value has arity 0.
type Tuple struct {
	fields []any
}

// New returns a tuple with arity nil fields.
func New(arity int) *Tuple {
	return &Tuple{fields: make([]any, arity)}
}

// Of returns a tuple holding values in order.
func Of(values ...any) *Tuple {
	fields := make([]any, len(values))
	copy(fields, values)
	return &Tuple{fields: fields}
}

func (t *Tuple) Arity() int {
	return len(t.fields)
}

// Field returns the value at pos. It panics with an index_out_of_range
// error when pos is outside [0, Arity).
func (t *Tuple) Field(pos int) any {
	t.check(pos)
	return t.fields[pos]
}

// SetField replaces the value at pos.
func (t *Tuple) SetField(pos int, v any) {
	t.check(pos)
	t.fields[pos] = v
}

// Fields returns the backing slice. Mutations are visible to the tuple.
func (t *Tuple) Fields() []any {
	return t.fields
}

func (t *Tuple) check(pos int) {
	if pos < 0 || pos >= len(t.fields) {
		panic(errors.IndexOutOfRange(pos, len(t.fields)))
	}
}

func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range t.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, f)
	}
	b.WriteByte(')')
	return b.String()
}
