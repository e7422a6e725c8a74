package csvinput

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	tferrors "github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/typeinfo"
)

func readAll(t *testing.T, r *Reader) ([][]any, error) {
	t.Helper()
	var out [][]any
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, append([]any(nil), rec...))
	}
}

func TestReader(t *testing.T) {
	input := "1,2,3\r\n\n4,5,6\n  \n7,8,9"
	f, _ := NewFormat(threeInts)
	r, err := f.NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	got, err := readAll(t, r)
	// the whitespace-only line holds one empty int32 column
	if !errors.Is(err, tferrors.ErrFieldParse) {
		t.Fatalf("expected field parse error on line 4, got %v", err)
	}
	var e *tferrors.Error
	if !errors.As(err, &e) || e.Path[0] != "line[4]" {
		t.Errorf("error %v lacks the line number", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records before the failure, want 2", len(got))
	}
}

func TestReaderSkipsEmptyLines(t *testing.T) {
	input := "1,2,3\r\n\n4,5,6\n\r\n7,8,9"
	f, _ := NewFormat(threeInts)
	r, _ := f.NewReader(strings.NewReader(input))

	got, err := readAll(t, r)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]any{
		{int32(1), int32(2), int32(3)},
		{int32(4), int32(5), int32(6)},
		{int32(7), int32(8), int32(9)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v", got)
	}

	st := r.Stats()
	if st.Lines != 5 || st.Records != 3 || st.Dropped != 0 || st.Bytes != int64(len(input)) {
		t.Errorf("stats %+v", st)
	}
}

func TestReaderLenientDrops(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	input := "1,2,3\n1,2\nx,2,3\n4,5,6\n"
	f, _ := NewFormat(threeInts, WithLenient(true))
	r, _ := f.NewReader(strings.NewReader(input))

	got, err := readAll(t, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if st := r.Stats(); st.Dropped != 2 || st.Records != 2 {
		t.Errorf("stats %+v", st)
	}
	if n := logs.FilterMessage("dropped record").Len(); n != 2 {
		t.Errorf("logged %d drops, want 2", n)
	}

	_ = r.Close()
	if logs.FilterMessage("split finished").Len() != 1 {
		t.Error("Close must log a summary")
	}
}

func TestReaderSkipFieldFatalWhenLenient(t *testing.T) {
	tags := []typeinfo.Tag{typeinfo.String, typeinfo.None}
	f, _ := NewFormat(tags, WithLenient(true))
	r, _ := f.NewReader(strings.NewReader("a,b\nc,\"d\n"))

	rec, err := r.Next()
	if err != nil || rec[0] != "a" {
		t.Fatalf("first record: %v %v", rec, err)
	}
	if _, err := r.Next(); !errors.Is(err, tferrors.ErrSkipField) {
		t.Errorf("expected skip field error, got %v", err)
	}
}

func TestReaderRecordDelimiter(t *testing.T) {
	f, _ := NewFormat(twoStrings, WithRecordDelimiter(';'), WithFieldDelimiter('|'))
	r, _ := f.NewReader(strings.NewReader("a|b;c|d;"))
	got, err := readAll(t, r)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, [][]any{{"a", "b"}, {"c", "d"}}) {
		t.Errorf("got %v", got)
	}
}

func TestReaderLongLine(t *testing.T) {
	old := ReadBufSize
	ReadBufSize = 16
	defer func() { ReadBufSize = old }()

	long := strings.Repeat("x", 100)
	f, _ := NewFormat(twoStrings)
	r, _ := f.NewReader(strings.NewReader(long + "," + long + "\nshort,y\n"))
	got, err := readAll(t, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0][1] != long || got[1][0] != "short" {
		t.Errorf("got %v", got)
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(zap.NewNop())
	_ = Logger()
	SetLogger(nil)
	defer SetLogger(zap.NewNop())

	if Logger() == nil {
		t.Fatal("nil logger must be replaced by a no-op logger")
	}

	f, _ := NewFormat(threeInts, WithLenient(true))
	r, err := f.NewReader(strings.NewReader("1,2\n4,5,6\n"))
	if err != nil {
		t.Fatal(err)
	}
	recs, err := readAll(t, r)
	if err != nil || len(recs) != 1 {
		t.Errorf("got %v, %v", recs, err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
