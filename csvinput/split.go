package csvinput

import (
	stderrors "errors"

	"github.com/wippyai/typeflow/errors"
	"github.com/wippyai/typeflow/parser"
)

// Split is the parse state of one worker: one field parser per declared
// column plus the delimiter and leniency of its Format. It must not be
// shared between goroutines.
type Split struct {
	projection *Projection
	parsers    []parser.Untyped
	delim      byte
	lenient    bool
}

func (s *Split) Projection() *Projection { return s.projection }

// NewHolders returns a holder slice with one default value per declared
// column, to be passed to every ParseRecord call of this split.
func (s *Split) NewHolders() []any {
	holders := make([]any, len(s.parsers))
	for k, p := range s.parsers {
		holders[k] = p.CreateValue()
	}
	return holders
}

// ParseRecord parses the line b[offset:offset+n] into holders.
//
// It returns true when every declared column was parsed. A row with too few
// columns or a malformed declared column fails with row_too_short or
// field_parse; in lenient mode it instead returns false with no error and the
// record must be dropped. A malformed skipped column fails with skip_field
// regardless of leniency.
//
// holders is only fully populated when ParseRecord returns true.
func (s *Split) ParseRecord(holders []any, b []byte, offset, n int) (bool, error) {
	err := s.parse(holders, b, offset, n)
	if err == nil {
		return true, nil
	}
	if s.lenient && recoverable(err) {
		return false, nil
	}
	return false, err
}

// recoverable reports whether lenient mode may drop a record failing with err.
func recoverable(err error) bool {
	return stderrors.Is(err, errors.ErrRowTooShort) || stderrors.Is(err, errors.ErrFieldParse)
}

// parse reports every failure, leaving leniency to the caller.
func (s *Split) parse(holders []any, b []byte, offset, n int) error {
	if len(holders) != len(s.parsers) {
		return errors.InvalidConfiguration("holders has %d slots, want %d", len(holders), len(s.parsers))
	}

	pos := offset
	limit := offset + n
	out := 0
	for col := 0; col < s.projection.total; col++ {
		if pos >= limit {
			return errors.RowTooShort(b[offset:limit], col, s.projection.total)
		}

		if s.projection.Included(col) {
			next, v := s.parsers[out].ParseField(b, pos, limit, s.delim, holders[out])
			holders[out] = v
			if next < 0 {
				return errors.FieldParse(b[offset:limit], col, s.projection.declared[out].String())
			}
			pos = next
			out++
			continue
		}

		pos = parser.SkipField(b, pos, limit, s.delim)
		if pos < 0 {
			return errors.SkipField(b[offset:limit], col)
		}
	}
	return nil
}
