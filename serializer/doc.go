// Package serializer implements the binary codecs for record values.
//
// Every codec implements Serializer[T] for one value shape:
//
//	Shape              Codec                        Go value
//	─────────────────────────────────────────────────────────────
//	basic scalar       Scalar[T] (String, Int32..)  string, int32, ...
//	tuple              TupleSerializer              *tuple.Tuple
//	typed array        ArraySerializer[C]           []*C
//	late-bound array   ObjectArraySerializer        *ObjectArray
//	copyable value     CopyableValueSerializer[T]   T (value.Copyable[T])
//
// Tuples compose children through Erase, which adapts any Serializer[T] to
// Serializer[any]. A tuple serializer owns one child per field, so the
// serializer tree mirrors the type tree.
//
// # Reuse
//
// Copy and Deserialize take a reuse value and return the value to use
// afterwards. Shape-compatible reuse values (same arity, same array length)
// are mutated in place and returned; anything else is left untouched and a
// new value is returned.
//
// # Wire format
//
// Scalars use the byte view conventions: big-endian fixed width values and
// uvarint length-prefixed strings. Tuples concatenate their fields. Arrays
// write an int32 element count, then per element a presence byte followed by
// the component encoding when present.
package serializer
