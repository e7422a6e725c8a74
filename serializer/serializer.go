package serializer

import "github.com/wippyai/typeflow"

// VariableLength is returned by Length for encodings without a fixed size.
const VariableLength = -1

// Serializer is the binary codec for one value shape.
//
// Operations taking a reuse argument transfer ownership of it to the
// serializer. The returned value is the one to use afterwards; it is reuse
// itself when reuse was shape-compatible and a fresh value otherwise.
//
// Serializers may hold scratch state and must not be shared between
// goroutines.
type Serializer[T any] interface {
	// CreateInstance returns a fresh default value.
	CreateInstance() T

	// Copy returns a value structurally equal to from, written into reuse
	// when compatible.
	Copy(from, reuse T) T

	Serialize(v T, out typeflow.DataOutput) error

	// Deserialize reads one encoded value into reuse when compatible.
	Deserialize(reuse T, in typeflow.DataInput) (T, error)

	// Transcode copies one encoded value from in to out without
	// materializing it.
	Transcode(in typeflow.DataInput, out typeflow.DataOutput) error

	// Length returns the fixed wire size in bytes, or VariableLength.
	Length() int
}
