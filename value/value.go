// Package value defines the user-defined value capabilities a serializer can
// be derived from, plus stock copyable values.
//
// A Value knows how to write and read itself. A Copyable value additionally
// reports its encoded length and can copy itself into a reusable target and
// copy its own encoding stream to stream without materializing.
package value

import "github.com/wippyai/typeflow"

// VariableLength is the BinaryLength of values whose encoding size varies.
const VariableLength = -1

// Value is a type that serializes itself.
type Value interface {
	Write(out typeflow.DataOutput) error
	Read(in typeflow.DataInput) error
}

// Copyable is a Value that can copy itself into another instance of T.
type Copyable[T any] interface {
	Value
	// BinaryLength returns the fixed encoded size or VariableLength.
	BinaryLength() int
	CopyTo(target T)
	// CopyStream copies exactly one encoded value from in to out.
	CopyStream(in typeflow.DataInput, out typeflow.DataOutput) error
}
