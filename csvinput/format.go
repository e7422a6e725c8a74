package csvinput

import (
	"sync/atomic"

	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/parser"
	"github.com/wippyai/typeflow/typeinfo"
)

const (
	DefaultFieldDelimiter  = ','
	DefaultRecordDelimiter = '\n'
)

// Option configures a Format.
type Option func(*Format) error

// WithFieldDelimiter sets the column delimiter. It must be an ASCII
// character other than NUL.
func WithFieldDelimiter(d rune) Option {
	return func(f *Format) error {
		return f.setFieldDelimiter(d)
	}
}

// WithRecordDelimiter sets the byte that terminates a line.
func WithRecordDelimiter(d byte) Option {
	return func(f *Format) error {
		if d == 0 || d > 127 {
			return errors.InvalidConfiguration("record delimiter %q is not an ASCII character", d)
		}
		f.recordDelim = d
		return nil
	}
}

// WithLenient drops short or malformed records instead of failing.
// A malformed skipped column always fails.
func WithLenient(lenient bool) Option {
	return func(f *Format) error {
		f.lenient = lenient
		return nil
	}
}

// Format is the text ingestion configuration shared by all splits of a job.
// It may be changed until the first Open; afterwards it is read-only.
type Format struct {
	projection  *Projection
	fieldDelim  byte
	recordDelim byte
	lenient     bool
	opened      atomic.Bool
}

// NewFormat builds a Format for lines whose columns have fieldTypes, with
// typeinfo.None for columns that are skipped.
func NewFormat(fieldTypes []typeinfo.Tag, opts ...Option) (*Format, error) {
	p, err := NewProjection(fieldTypes)
	if err != nil {
		return nil, err
	}
	f := &Format{
		projection:  p,
		fieldDelim:  DefaultFieldDelimiter,
		recordDelim: DefaultRecordDelimiter,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.fieldDelim == f.recordDelim {
		return nil, errors.InvalidConfiguration("field and record delimiter are both %q", f.fieldDelim)
	}
	return f, nil
}

// SetFieldDelimiter changes the column delimiter of an unopened Format.
func (f *Format) SetFieldDelimiter(d rune) error {
	if f.opened.Load() {
		return errors.InvalidConfiguration("format is already open")
	}
	return f.setFieldDelimiter(d)
}

func (f *Format) setFieldDelimiter(d rune) error {
	if d <= 0 || d > 127 {
		return errors.New(errors.PhaseConfigure, errors.KindInvalidConfiguration).
			Value(d).
			Detail("field delimiter %q is not an ASCII character", d).
			Build()
	}
	f.fieldDelim = byte(d)
	return nil
}

func (f *Format) Projection() *Projection { return f.projection }
func (f *Format) FieldDelimiter() byte    { return f.fieldDelim }
func (f *Format) RecordDelimiter() byte   { return f.recordDelim }
func (f *Format) Lenient() bool           { return f.lenient }

// TupleType describes the records this format produces.
func (f *Format) TupleType() (*typeinfo.TupleType, error) {
	return typeinfo.BasicTupleType(f.projection.DeclaredTypes()...)
}

// Open creates the parse state for one split. Each worker opens its own.
func (f *Format) Open() (*Split, error) {
	f.opened.Store(true)
	declared := f.projection.declared
	parsers := make([]parser.Untyped, len(declared))
	for k, t := range declared {
		p, err := typeinfo.ParserFor(t)
		if err != nil {
			return nil, err
		}
		parsers[k] = p
	}
	return &Split{
		projection: f.projection,
		parsers:    parsers,
		delim:      f.fieldDelim,
		lenient:    f.lenient,
	}, nil
}
