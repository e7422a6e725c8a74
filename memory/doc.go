// Package memory provides in-memory implementations of the typeflow byte views.
//
// OutputView is a growable buffer sink. InputView reads a byte slice and
// StreamInput reads a buffered io.Reader. All three use the same conventions:
//
//	Value           Encoding
//	─────────────────────────────────────────
//	u8              1 byte
//	u16/u32/u64     2/4/8 bytes, big-endian
//	uvarint         unsigned LEB128
//	string          uvarint length + UTF-8 bytes
//
// Views carry position state and are NOT safe for concurrent use.
// GetOutput and Release pool OutputViews for short-lived encodes.
package memory

import "github.com/wippyai/typeflow"

var (
	_ typeflow.DataOutput = (*OutputView)(nil)
	_ typeflow.DataInput  = (*InputView)(nil)
	_ typeflow.DataInput  = (*StreamInput)(nil)
)
