package memory

import (
	"encoding/binary"
	"io"
)

// OutputView is a growable in-memory DataOutput.
// Writes never fail; the error results satisfy typeflow.DataOutput.
type OutputView struct {
	buf []byte
}

// NewOutput creates an empty OutputView.
func NewOutput() *OutputView {
	return &OutputView{buf: make([]byte, 0, initialOutputCap)}
}

// Bytes returns the written bytes. The slice aliases the view's buffer
// and is only valid until the next write or Reset.
func (w *OutputView) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *OutputView) Len() int {
	return len(w.buf)
}

// Reset discards the written bytes and keeps the capacity.
func (w *OutputView) Reset() {
	w.buf = w.buf[:0]
}

// WriteTo flushes the written bytes to dst and resets the view.
func (w *OutputView) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)
	if err == nil {
		w.Reset()
	}
	return int64(n), err
}

func (w *OutputView) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *OutputView) WriteU8(v uint8) error {
	w.buf = append(w.buf, v)
	return nil
}

func (w *OutputView) WriteU16(v uint16) error {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
	return nil
}

func (w *OutputView) WriteU32(v uint32) error {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
	return nil
}

func (w *OutputView) WriteU64(v uint64) error {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
	return nil
}

// WriteUvarint writes an unsigned LEB128 value.
func (w *OutputView) WriteUvarint(v uint64) error {
	w.buf = binary.AppendUvarint(w.buf, v)
	return nil
}

// WriteString writes a length-prefixed UTF-8 string.
func (w *OutputView) WriteString(s string) error {
	w.buf = binary.AppendUvarint(w.buf, uint64(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}
