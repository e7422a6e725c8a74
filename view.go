package typeflow

// DataOutput is the byte sink serializers write to.
// Fixed width values are big-endian. Strings are a uvarint byte length
// followed by the UTF-8 bytes.
type DataOutput interface {
	Write(p []byte) (int, error)
	WriteU8(v uint8) error
	WriteU16(v uint16) error
	WriteU32(v uint32) error
	WriteU64(v uint64) error
	WriteUvarint(v uint64) error
	WriteString(s string) error
}

// DataInput is the byte source serializers read from.
type DataInput interface {
	// ReadFull fills p completely or fails.
	ReadFull(p []byte) error
	ReadU8() (uint8, error)
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	ReadU64() (uint64, error)
	ReadUvarint() (uint64, error)
	ReadString() (string, error)
}
