package serializer

import (
	"io"
	"strconv"

	"github.com/wippyai/typeflow"
	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/tuple"
)

// TupleSerializer encodes a tuple as the concatenation of its fields in
// order. Arity is static, so no length prefix is written.
type TupleSerializer struct {
	fields []Serializer[any]
	length int
}

// NewTuple builds a tuple codec owning one child serializer per field.
func NewTuple(fields ...Serializer[any]) *TupleSerializer {
	length := 0
	for _, f := range fields {
		l := f.Length()
		if l == VariableLength {
			length = VariableLength
			break
		}
		length += l
	}
	return &TupleSerializer{fields: fields, length: length}
}

func (s *TupleSerializer) Arity() int { return len(s.fields) }

// Field returns the child serializer at pos.
func (s *TupleSerializer) Field(pos int) Serializer[any] { return s.fields[pos] }

func (s *TupleSerializer) CreateInstance() *tuple.Tuple {
	t := tuple.New(len(s.fields))
	vals := t.Fields()
	for i, f := range s.fields {
		vals[i] = f.CreateInstance()
	}
	return t
}

func (s *TupleSerializer) compatible(t *tuple.Tuple) bool {
	return t != nil && t.Arity() == len(s.fields)
}

func (s *TupleSerializer) Copy(from, reuse *tuple.Tuple) *tuple.Tuple {
	if from == nil {
		panic(errors.NilPointer(errors.PhaseCopy, nil, "*tuple.Tuple"))
	}
	if !s.compatible(reuse) {
		reuse = tuple.New(len(s.fields))
	}
	src, dst := from.Fields(), reuse.Fields()
	for i, f := range s.fields {
		if src[i] == nil {
			dst[i] = nil
			continue
		}
		dst[i] = f.Copy(src[i], dst[i])
	}
	return reuse
}

func (s *TupleSerializer) Serialize(v *tuple.Tuple, out typeflow.DataOutput) error {
	if v == nil {
		return errors.NilPointer(errors.PhaseSerialize, nil, "*tuple.Tuple")
	}
	if v.Arity() != len(s.fields) {
		return errors.TypeMismatch(errors.PhaseSerialize, nil,
			"Tuple"+strconv.Itoa(v.Arity()), "Tuple"+strconv.Itoa(len(s.fields)))
	}
	vals := v.Fields()
	for i, f := range s.fields {
		if err := f.Serialize(vals[i], out); err != nil {
			return errors.WithPath(err, fieldSegment(i))
		}
	}
	return nil
}

func (s *TupleSerializer) Deserialize(reuse *tuple.Tuple, in typeflow.DataInput) (*tuple.Tuple, error) {
	if !s.compatible(reuse) {
		reuse = tuple.New(len(s.fields))
	}
	vals := reuse.Fields()
	for i, f := range s.fields {
		v, err := f.Deserialize(vals[i], in)
		if err != nil {
			return reuse, errors.WithPath(truncated(err, i > 0), fieldSegment(i))
		}
		vals[i] = v
	}
	return reuse, nil
}

func (s *TupleSerializer) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	for i, f := range s.fields {
		if err := f.Transcode(in, out); err != nil {
			return errors.WithPath(truncated(err, i > 0), fieldSegment(i))
		}
	}
	return nil
}

// Length is the sum of the field lengths when all are fixed.
func (s *TupleSerializer) Length() int { return s.length }

// truncated turns a clean end of input into io.ErrUnexpectedEOF once part of
// the value has been consumed.
func truncated(err error, consumed bool) error {
	if consumed && err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func fieldSegment(i int) string {
	return "field[" + strconv.Itoa(i) + "]"
}
