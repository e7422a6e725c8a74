// Package typeflow provides the record type and serialization layer of a
// dataflow engine, plus the delimited-text field parser used for ingestion.
//
// The library converts between typed in-memory records and the byte
// representations used for storage, shuffling, and text input.
//
// # Architecture Overview
//
//	typeflow/         Root package with the DataInput and DataOutput byte views
//	├── typeinfo/     Type descriptors and serializer derivation
//	├── serializer/   Binary codecs with allocation-reuse semantics
//	├── tuple/        Fixed-arity product values
//	├── value/        User value types with a copy capability
//	├── memory/       In-memory byte views and pooled buffers
//	├── parser/       Delimited field scanner and scalar field parsers
//	├── csvinput/     Column projection and record parsing for text splits
//	├── config/       Ingestion configuration loading
//	└── errors/       Structured error types
//
// # Quick Start
//
// Derive a codec from a descriptor:
//
//	desc, err := typeinfo.BasicTupleType(typeinfo.Int32, typeinfo.String)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ser, err := desc.CreateSerializer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := memory.NewOutput()
//	_ = ser.Serialize(tuple.Of(int32(7), "seven"), out)
//
//	in := memory.NewInput(out.Bytes())
//	rec, _ := ser.Deserialize(ser.CreateInstance(), in)
//
// Parse delimited text:
//
//	format, err := csvinput.NewFormat(
//	    []typeinfo.Tag{typeinfo.Int32, typeinfo.None, typeinfo.String},
//	    csvinput.WithFieldDelimiter('|'),
//	    csvinput.WithLenient(true),
//	)
//	split, err := format.Open()
//	holders := split.NewHolders()
//	ok, err := split.ParseRecord(holders, line, 0, len(line))
//
// # Thread Safety
//
// Descriptors and Formats are immutable once built and safe for concurrent
// use. Serializers, field parsers, Splits, and holder slices carry scratch
// state and belong to a single worker. Create one set per goroutine.
//
// # Reuse Contract
//
// Operations that accept a reuse value transfer its ownership to the callee.
// The callee either fills it in place and returns it, or returns a fresh
// replacement. Callers must continue with the returned value.
package typeflow
