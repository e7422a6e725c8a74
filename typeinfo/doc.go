// Package typeinfo describes record shapes and derives their serializers.
//
// A Descriptor is one of five kinds:
//
//	Kind      Descriptor         Serializer derived
//	──────────────────────────────────────────────────────────
//	basic     *BasicType         registered scalar codec
//	tuple     *TupleType         one child codec per field, in order
//	generic   *GenericType       none (unsupported_serialization)
//	value     *ValueType[T]      copyable value codec, if T is copyable
//	array     *ArrayType         object array codec over the component
//
// Basic types come from a closed registry keyed by Tag. The same registry
// supplies field parsers for text ingestion, so a tag accepted for a column
// always has both a parser and a serializer.
//
// Descriptors are immutable once built. CreateSerializer returns a fresh
// serializer tree each call; give every worker its own.
package typeinfo
