// Package csvinput ingests delimited text files into typed records.
//
// A Format is built once per job from one type tag per input column:
//
//	columns:   id     name    score   note
//	tags:      int64  string  None    string
//	declared:  [int64, string, string]   (None columns are skipped)
//
// Each worker opens its own Split from the Format. A Split parses one line
// at a time into a holder slice that is reused across records. Reader wraps
// a Split with line splitting for an io.Reader.
//
// # Failure policy
//
//	failure            strict        lenient
//	──────────────────────────────────────────────
//	row too short      error         record dropped
//	malformed field    error         record dropped
//	malformed skip     error         error
//
// A column that is skipped but cannot be scanned makes every later column
// boundary unreliable, so it is never tolerated.
package csvinput
