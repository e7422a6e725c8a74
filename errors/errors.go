package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfigure   Phase = "configure"   // format and projection setup
	PhaseDerive      Phase = "derive"      // descriptor to serializer
	PhaseSerialize   Phase = "serialize"   // value to bytes
	PhaseDeserialize Phase = "deserialize" // bytes to value
	PhaseTranscode   Phase = "transcode"   // bytes to bytes
	PhaseCopy        Phase = "copy"        // value to value
	PhaseParse       Phase = "parse"       // delimited text to record
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidConfiguration     Kind = "invalid_configuration"
	KindInvalidType              Kind = "invalid_type"
	KindUnsupportedSerialization Kind = "unsupported_serialization"
	KindIndexOutOfRange          Kind = "index_out_of_range"
	KindRowTooShort              Kind = "row_too_short"
	KindFieldParse               Kind = "field_parse"
	KindSkipField                Kind = "skip_field"
	KindTypeMismatch             Kind = "type_mismatch"
	KindInvalidData              Kind = "invalid_data"
	KindNilPointer               Kind = "nil_pointer"
)

// parent returns the broader kind this kind refines, if any.
func (k Kind) parent() Kind {
	if k == KindInvalidType {
		return KindInvalidConfiguration
	}
	return ""
}

// Sentinels match errors of the given kind in any phase.
var (
	ErrInvalidConfiguration     = &Error{Kind: KindInvalidConfiguration}
	ErrInvalidType              = &Error{Kind: KindInvalidType}
	ErrUnsupportedSerialization = &Error{Kind: KindUnsupportedSerialization}
	ErrIndexOutOfRange          = &Error{Kind: KindIndexOutOfRange}
	ErrRowTooShort              = &Error{Kind: KindRowTooShort}
	ErrFieldParse               = &Error{Kind: KindFieldParse}
	ErrSkipField                = &Error{Kind: KindSkipField}
	ErrTypeMismatch             = &Error{Kind: KindTypeMismatch}
	ErrInvalidData              = &Error{Kind: KindInvalidData}
	ErrNilPointer               = &Error{Kind: KindNilPointer}
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches any phase. A refined kind also matches
// its parent kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind || (t.Kind != "" && e.Kind.parent() == t.Kind)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidConfiguration creates a configuration error
func InvalidConfiguration(detail string, args ...any) *Error {
	return New(PhaseConfigure, KindInvalidConfiguration).Detail(detail, args...).Build()
}

// InvalidType creates an error for a type with no registered mapping
func InvalidType(path []string, typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseConfigure,
		Kind:   KindInvalidType,
		Path:   path,
		Type:   typeName,
		Detail: detail,
	}
}

// UnsupportedSerialization creates an error for types that cannot derive a serializer
func UnsupportedSerialization(typeName, detail string) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindUnsupportedSerialization,
		Type:   typeName,
		Detail: detail,
	}
}

// IndexOutOfRange creates a tuple field access error
func IndexOutOfRange(pos, arity int) *Error {
	return &Error{
		Phase:  PhaseDerive,
		Kind:   KindIndexOutOfRange,
		Detail: fmt.Sprintf("position %d out of range (arity %d)", pos, arity),
		Value:  pos,
	}
}

// RowTooShort creates an error for a row with fewer columns than declared
func RowTooShort(line []byte, have, want int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindRowTooShort,
		Detail: fmt.Sprintf("row has %d of %d columns: %q", have, want, preview(line)),
	}
}

// FieldParse creates an error for malformed content in a selected column
func FieldParse(line []byte, column int, typeName string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindFieldParse,
		Path:   []string{columnSegment(column)},
		Type:   typeName,
		Detail: fmt.Sprintf("line could not be parsed: %q", preview(line)),
		Value:  column,
	}
}

// SkipField creates an error for a malformed unselected column
func SkipField(line []byte, column int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSkipField,
		Path:   []string{columnSegment(column)},
		Detail: fmt.Sprintf("line could not be parsed: %q", preview(line)),
		Value:  column,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Type:   want,
		Detail: fmt.Sprintf("got %s", got),
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		Type:   typeName,
		Detail: "nil value",
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath prefixes the path of a structured error, leaving other errors untouched.
func WithPath(err error, segment string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	e.Path = append([]string{segment}, e.Path...)
	return e
}

func columnSegment(i int) string {
	return fmt.Sprintf("column[%d]", i)
}

const maxPreview = 128

func preview(line []byte) string {
	if len(line) > maxPreview {
		return string(line[:maxPreview]) + "..."
	}
	return string(line)
}
