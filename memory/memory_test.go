package memory

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"
)

// allocated returns the bytes allocated while f runs.
func allocated(f func()) uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

func TestOutputViewFixedWidth(t *testing.T) {
	w := NewOutput()
	_ = w.WriteU8(0x01)
	_ = w.WriteU16(0x0203)
	_ = w.WriteU32(0x04050607)
	_ = w.WriteU64(0x08090a0b0c0d0e0f)

	want := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("got % x, want % x", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestRoundTrip(t *testing.T) {
	w := NewOutput()
	_ = w.WriteU8(7)
	_ = w.WriteU16(65535)
	_ = w.WriteU32(1 << 31)
	_ = w.WriteU64(1<<63 + 5)
	_ = w.WriteUvarint(624485)
	_ = w.WriteString("héllo")
	_ = w.WriteString("")

	check := func(t *testing.T, name string, got, want any, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}

	readAll := func(t *testing.T, r interface {
		ReadU8() (uint8, error)
		ReadU16() (uint16, error)
		ReadU32() (uint32, error)
		ReadU64() (uint64, error)
		ReadUvarint() (uint64, error)
		ReadString() (string, error)
	}) {
		u8, err := r.ReadU8()
		check(t, "u8", u8, uint8(7), err)
		u16, err := r.ReadU16()
		check(t, "u16", u16, uint16(65535), err)
		u32, err := r.ReadU32()
		check(t, "u32", u32, uint32(1<<31), err)
		u64, err := r.ReadU64()
		check(t, "u64", u64, uint64(1<<63+5), err)
		uv, err := r.ReadUvarint()
		check(t, "uvarint", uv, uint64(624485), err)
		s, err := r.ReadString()
		check(t, "string", s, "héllo", err)
		s, err = r.ReadString()
		check(t, "empty string", s, "", err)

		if _, err := r.ReadU8(); !errors.Is(err, io.EOF) {
			t.Errorf("expected EOF at end, got %v", err)
		}
	}

	t.Run("InputView", func(t *testing.T) {
		in := NewInput(w.Bytes())
		readAll(t, in)
		if in.Remaining() != 0 {
			t.Errorf("Remaining() = %d", in.Remaining())
		}
	})

	t.Run("StreamInput", func(t *testing.T) {
		in := NewStreamInput(bytes.NewReader(w.Bytes()))
		readAll(t, in)
		if in.Position() != int64(w.Len()) {
			t.Errorf("Position() = %d, want %d", in.Position(), w.Len())
		}
	})
}

func TestInputViewTruncated(t *testing.T) {
	in := NewInput([]byte{0x00, 0x01})
	if _, err := in.ReadU32(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	if in.Position() != 0 {
		t.Errorf("failed read must not advance, position %d", in.Position())
	}

	in = NewInput([]byte{0x05, 'a', 'b'})
	if _, err := in.ReadString(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for short string, got %v", err)
	}

	in = NewInput([]byte{0x80})
	if _, err := in.ReadUvarint(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF for partial uvarint, got %v", err)
	}
}

func TestInputViewOverflow(t *testing.T) {
	in := NewInput([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	if _, err := in.ReadUvarint(); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestInputViewReset(t *testing.T) {
	in := NewInput([]byte{1})
	_, _ = in.ReadU8()
	in.Reset([]byte{2, 3})
	b, err := in.ReadU8()
	if err != nil || b != 2 {
		t.Errorf("after Reset got %d, %v", b, err)
	}
}

func TestStreamInputTruncated(t *testing.T) {
	in := NewStreamInput(bytes.NewReader([]byte{0x00}))
	if _, err := in.ReadU16(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}

	in = NewStreamInput(bytes.NewReader(nil))
	if _, err := in.ReadUvarint(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestStreamInputStringLengthBeyondInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"1 GiB prefix, empty body", []byte{0x80, 0x80, 0x80, 0x80, 0x04}},
		{"max prefix, short body", []byte{0xff, 0xff, 0xff, 0xff, 0x07, 'a', 'b', 'c'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewStreamInput(bytes.NewReader(tt.data))
			var err error
			n := allocated(func() {
				_, err = in.ReadString()
			})
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("expected ErrUnexpectedEOF, got %v", err)
			}
			if n > 16<<20 {
				t.Errorf("allocated %d bytes for a %d byte stream", n, len(tt.data))
			}
			if in.Position() != int64(len(tt.data)) {
				t.Errorf("Position = %d, want %d", in.Position(), len(tt.data))
			}
		})
	}
}

func TestStreamInputLongString(t *testing.T) {
	s := string(bytes.Repeat([]byte("xyz"), 10000))
	w := NewOutput()
	_ = w.WriteString(s)

	got, err := NewStreamInput(bytes.NewReader(w.Bytes())).ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != s {
		t.Errorf("got %d bytes, want %d", len(got), len(s))
	}
}

func TestOutputViewWriteTo(t *testing.T) {
	w := NewOutput()
	_ = w.WriteString("abc")

	var dst bytes.Buffer
	n, err := w.WriteTo(&dst)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 4 || dst.Len() != 4 {
		t.Errorf("wrote %d bytes, buffer has %d", n, dst.Len())
	}
	if w.Len() != 0 {
		t.Error("WriteTo should reset the view")
	}
}

func TestPool(t *testing.T) {
	w := GetOutput()
	_ = w.WriteU32(42)
	Release(w)

	w2 := GetOutput()
	if w2.Len() != 0 {
		t.Errorf("pooled view not reset, Len() = %d", w2.Len())
	}
	Release(w2)

	big := NewOutput()
	big.buf = make([]byte, 0, maxPooledOutputCap+1)
	Release(big) // rejected, must not panic
	Release(nil)
}
