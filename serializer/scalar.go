package serializer

import (
	"math"

	"github.com/wippyai/typeflow"
)

// Scalar is the codec for one basic type. Scalars are immutable values, so
// Copy and Deserialize never use the reuse argument.
type Scalar[T any] struct {
	name   string
	length int
	write  func(T, typeflow.DataOutput) error
	read   func(typeflow.DataInput) (T, error)
}

// Stateless scalar codecs, safe to share.
var (
	String  = &Scalar[string]{name: "string", length: VariableLength, write: writeString, read: readString}
	Bool    = &Scalar[bool]{name: "bool", length: 1, write: writeBool, read: readBool}
	Int8    = &Scalar[int8]{name: "int8", length: 1, write: writeInt8, read: readInt8}
	Int16   = &Scalar[int16]{name: "int16", length: 2, write: writeInt16, read: readInt16}
	Int32   = &Scalar[int32]{name: "int32", length: 4, write: writeInt32, read: readInt32}
	Int64   = &Scalar[int64]{name: "int64", length: 8, write: writeInt64, read: readInt64}
	Float32 = &Scalar[float32]{name: "float32", length: 4, write: writeFloat32, read: readFloat32}
	Float64 = &Scalar[float64]{name: "float64", length: 8, write: writeFloat64, read: readFloat64}
	Char    = &Scalar[rune]{name: "char", length: 4, write: writeChar, read: readChar}
)

func (s *Scalar[T]) Name() string { return s.name }

func (s *Scalar[T]) CreateInstance() T {
	var zero T
	return zero
}

func (s *Scalar[T]) Copy(from, _ T) T { return from }

func (s *Scalar[T]) Serialize(v T, out typeflow.DataOutput) error {
	return s.write(v, out)
}

func (s *Scalar[T]) Deserialize(_ T, in typeflow.DataInput) (T, error) {
	return s.read(in)
}

// Transcode moves fixed-width values as raw bytes.
func (s *Scalar[T]) Transcode(in typeflow.DataInput, out typeflow.DataOutput) error {
	if s.length == VariableLength {
		v, err := s.read(in)
		if err != nil {
			return err
		}
		return s.write(v, out)
	}
	var buf [8]byte
	if err := in.ReadFull(buf[:s.length]); err != nil {
		return err
	}
	_, err := out.Write(buf[:s.length])
	return err
}

func (s *Scalar[T]) Length() int { return s.length }

func writeString(v string, out typeflow.DataOutput) error { return out.WriteString(v) }
func readString(in typeflow.DataInput) (string, error)    { return in.ReadString() }

func writeBool(v bool, out typeflow.DataOutput) error {
	if v {
		return out.WriteU8(1)
	}
	return out.WriteU8(0)
}

func readBool(in typeflow.DataInput) (bool, error) {
	b, err := in.ReadU8()
	return b != 0, err
}

func writeInt8(v int8, out typeflow.DataOutput) error { return out.WriteU8(uint8(v)) }

func readInt8(in typeflow.DataInput) (int8, error) {
	b, err := in.ReadU8()
	return int8(b), err
}

func writeInt16(v int16, out typeflow.DataOutput) error { return out.WriteU16(uint16(v)) }

func readInt16(in typeflow.DataInput) (int16, error) {
	u, err := in.ReadU16()
	return int16(u), err
}

func writeInt32(v int32, out typeflow.DataOutput) error { return out.WriteU32(uint32(v)) }

func readInt32(in typeflow.DataInput) (int32, error) {
	u, err := in.ReadU32()
	return int32(u), err
}

func writeInt64(v int64, out typeflow.DataOutput) error { return out.WriteU64(uint64(v)) }

func readInt64(in typeflow.DataInput) (int64, error) {
	u, err := in.ReadU64()
	return int64(u), err
}

func writeFloat32(v float32, out typeflow.DataOutput) error {
	return out.WriteU32(math.Float32bits(v))
}

func readFloat32(in typeflow.DataInput) (float32, error) {
	u, err := in.ReadU32()
	return math.Float32frombits(u), err
}

func writeFloat64(v float64, out typeflow.DataOutput) error {
	return out.WriteU64(math.Float64bits(v))
}

func readFloat64(in typeflow.DataInput) (float64, error) {
	u, err := in.ReadU64()
	return math.Float64frombits(u), err
}

func writeChar(v rune, out typeflow.DataOutput) error { return out.WriteU32(uint32(v)) }

func readChar(in typeflow.DataInput) (rune, error) {
	u, err := in.ReadU32()
	return rune(u), err
}
