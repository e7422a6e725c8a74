package tag

import "strings"

// Tag identifies one basic scalar type. The set is closed.
type Tag uint8

const (
	// None marks a column that is present in the input but not selected.
	None Tag = iota
	String
	Bool
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	Char

	count
)

var tagNames = [...]string{
	None:    "none",
	String:  "string",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Char:    "char",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a registered basic type.
func (t Tag) Valid() bool {
	return t > None && t < count
}

// All returns every registered basic tag in declaration order.
func All() []Tag {
	tags := make([]Tag, 0, count-1)
	for t := String; t < count; t++ {
		tags = append(tags, t)
	}
	return tags
}

var aliases = map[string]Tag{
	"":        None,
	"none":    None,
	"skip":    None,
	"null":    None,
	"string":  String,
	"bool":    Bool,
	"boolean": Bool,
	"int8":    Int8,
	"byte":    Int8,
	"int16":   Int16,
	"short":   Int16,
	"int32":   Int32,
	"int":     Int32,
	"int64":   Int64,
	"long":    Int64,
	"float32": Float32,
	"float":   Float32,
	"float64": Float64,
	"double":  Float64,
	"char":    Char,
	"rune":    Char,
}

// Parse resolves a type name. Names are case-insensitive; the empty string,
// "skip", and "null" denote an unselected column.
func Parse(name string) (Tag, bool) {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
