package csvinput

import (
	"bufio"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/typeflow/errors"
)

// ReadBufSize is the buffer size of readers created by NewReader.
var ReadBufSize = 64 * 1024

// Stats counts what a Reader has consumed.
type Stats struct {
	Lines   int64 // lines read, including empty ones
	Records int64 // records returned
	Dropped int64 // records dropped in lenient mode
	Bytes   int64 // bytes read
}

// Reader reads records separated by a record delimiter and parses each one
// with a Split. Empty lines are skipped; a "\r\n" ending counts as "\n".
type Reader struct {
	split   *Split
	br      *bufio.Reader
	delim   byte
	holders []any
	line    []byte
	stats   Stats
	done    bool
}

// NewReader opens a split of f and reads records from r.
func (f *Format) NewReader(r io.Reader) (*Reader, error) {
	s, err := f.Open()
	if err != nil {
		return nil, err
	}
	return NewReader(s, f.recordDelim, r), nil
}

// NewReader reads records terminated by delim from r and parses them with s.
func NewReader(s *Split, delim byte, r io.Reader) *Reader {
	return &Reader{
		split:   s,
		br:      bufio.NewReaderSize(r, ReadBufSize),
		delim:   delim,
		holders: s.NewHolders(),
	}
}

// Next returns the next parsed record, or io.EOF when the input is
// exhausted. The returned slice is reused by the following call.
//
// In strict mode a parse failure is returned with a "line[N]" path segment
// holding the 1-based line number; the reader may still be advanced past it.
func (r *Reader) Next() ([]any, error) {
	for !r.done {
		line, err := r.readLine()
		if err == io.EOF {
			r.done = true
			if len(line) == 0 {
				break
			}
		} else if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}

		perr := r.split.parse(r.holders, line, 0, len(line))
		if perr == nil {
			r.stats.Records++
			return r.holders, nil
		}
		if r.split.lenient && recoverable(perr) {
			r.stats.Dropped++
			Logger().Debug("dropped record",
				zap.Int64("line", r.stats.Lines),
				zap.Error(perr))
			continue
		}
		return nil, errors.WithPath(perr, "line["+strconv.FormatInt(r.stats.Lines, 10)+"]")
	}
	return nil, io.EOF
}

// Stats returns the counters so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close logs a summary of the split. It does not close the underlying reader.
func (r *Reader) Close() error {
	Logger().Info("split finished",
		zap.Int64("lines", r.stats.Lines),
		zap.Int64("records", r.stats.Records),
		zap.Int64("dropped", r.stats.Dropped),
		zap.Int64("bytes", r.stats.Bytes))
	return nil
}

// readLine returns the next line without its terminator. It returns io.EOF
// together with the final unterminated line, if any. The result is only
// valid until the next call.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadSlice(r.delim)
	if err == bufio.ErrBufferFull {
		r.line = append(r.line[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.br.ReadSlice(r.delim)
			r.line = append(r.line, line...)
		}
		line = r.line
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(line) == 0 {
		return nil, err
	}

	r.stats.Lines++
	r.stats.Bytes += int64(len(line))
	if line[len(line)-1] == r.delim {
		line = line[:len(line)-1]
	}
	if r.delim == '\n' && len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line, err
}
