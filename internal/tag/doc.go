// Package tag defines the closed enumeration of basic scalar types.
//
// Tags key the registry that maps each basic type to its descriptor,
// serializer, and field parser. The zero Tag, None, marks an input column
// that is skipped during parsing.
//
// This package is internal to typeflow; typeinfo re-exports it.
package tag
