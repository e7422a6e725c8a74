package typeinfo

import "github.com/wippyai/typeflow/internal/tag"

// Tag identifies a basic type.
type Tag = tag.Tag

const (
	None    = tag.None
	String  = tag.String
	Bool    = tag.Bool
	Int8    = tag.Int8
	Int16   = tag.Int16
	Int32   = tag.Int32
	Int64   = tag.Int64
	Float32 = tag.Float32
	Float64 = tag.Float64
	Char    = tag.Char
)

// ParseTag resolves a type name such as "int32", "long" or "skip".
func ParseTag(name string) (Tag, bool) {
	return tag.Parse(name)
}

// Tags returns every registered basic tag.
func Tags() []Tag {
	return tag.All()
}
