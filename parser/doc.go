// Package parser turns columns of delimited text into typed values.
//
// The scanner works on a byte window [start, limit) holding one line:
//
//	  "a,b"  ,c
//	  └─┬─┘   │
//	 quoted   unquoted
//
// Leading spaces and tabs are skipped. A column that starts with a double
// quote runs to the next quote; only whitespace may follow it before the
// delimiter. Any other column runs to the next delimiter. Scanning never
// backtracks.
//
// FieldParser implementations reuse the scanner and convert the content
// span. Parsers are stateless but are created per split so a worker never
// shares them.
package parser
