package memory

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrOverflow is returned when a LEB128 value exceeds 64 bits.
var ErrOverflow = errors.New("uvarint: overflow")

// ErrStringTooLong is returned when a string length prefix exceeds MaxStringLength.
var ErrStringTooLong = errors.New("string length exceeds limit")

// MaxStringLength bounds the length prefix accepted by ReadString.
const MaxStringLength = 1<<31 - 1

// stringChunk is the initial buffer size for strings read from a stream.
const stringChunk = 4096

// InputView reads a byte slice with position tracking.
// Reads at a clean end return io.EOF; reads that run out mid-value return
// io.ErrUnexpectedEOF.
type InputView struct {
	data []byte
	pos  int
}

// NewInput creates an InputView over data.
func NewInput(data []byte) *InputView {
	return &InputView{data: data}
}

// Reset points the view at new data and rewinds it.
func (r *InputView) Reset(data []byte) {
	r.data = data
	r.pos = 0
}

// Position returns the current byte position.
func (r *InputView) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *InputView) Remaining() int {
	return len(r.data) - r.pos
}

func (r *InputView) take(n int) ([]byte, error) {
	rem := len(r.data) - r.pos
	if rem == 0 && n > 0 {
		return nil, io.EOF
	}
	if rem < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *InputView) ReadFull(p []byte) error {
	b, err := r.take(len(p))
	if err != nil {
		return err
	}
	copy(p, b)
	return nil
}

func (r *InputView) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *InputView) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *InputView) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *InputView) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *InputView) ReadUvarint() (uint64, error) {
	if r.pos == len(r.data) {
		return 0, io.EOF
	}
	v, n := binary.Uvarint(r.data[r.pos:])
	switch {
	case n == 0:
		return 0, io.ErrUnexpectedEOF
	case n < 0:
		return 0, ErrOverflow
	}
	r.pos += n
	return v, nil
}

func (r *InputView) ReadString() (string, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	if n > MaxStringLength {
		return "", ErrStringTooLong
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.take(int(n))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// StreamInput reads from an io.Reader through a buffer.
// It follows the same EOF conventions as InputView.
type StreamInput struct {
	r       *bufio.Reader
	pos     int64
	scratch [8]byte
}

// NewStreamInput creates a buffered StreamInput over r.
func NewStreamInput(r io.Reader) *StreamInput {
	return &StreamInput{r: bufio.NewReader(r)}
}

// Position returns the number of bytes consumed.
func (s *StreamInput) Position() int64 {
	return s.pos
}

// ReadByte implements io.ByteReader.
func (s *StreamInput) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

func (s *StreamInput) ReadFull(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	s.pos += int64(n)
	return err
}

func (s *StreamInput) ReadU8() (uint8, error) {
	return s.ReadByte()
}

func (s *StreamInput) ReadU16() (uint16, error) {
	if err := s.ReadFull(s.scratch[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(s.scratch[:2]), nil
}

func (s *StreamInput) ReadU32() (uint32, error) {
	if err := s.ReadFull(s.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(s.scratch[:4]), nil
}

func (s *StreamInput) ReadU64() (uint64, error) {
	if err := s.ReadFull(s.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(s.scratch[:8]), nil
}

func (s *StreamInput) ReadUvarint() (uint64, error) {
	v, err := binary.ReadUvarint(s)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, ErrOverflow
	}
	return v, err
}

func (s *StreamInput) ReadString() (string, error) {
	n, err := s.ReadUvarint()
	if err != nil {
		return "", err
	}
	if n > MaxStringLength {
		return "", ErrStringTooLong
	}
	if n == 0 {
		return "", nil
	}
	// The buffer grows with the bytes actually read, not with the prefix.
	var buf bytes.Buffer
	buf.Grow(int(min(n, stringChunk)))
	copied, err := io.CopyN(&buf, s.r, int64(n))
	s.pos += copied
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	return buf.String(), nil
}
