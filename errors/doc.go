// Package errors provides structured error types for the typeflow library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: column or field path, type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDerive, errors.KindUnsupportedSerialization).
//		Path("field[2]").
//		Type("GenericType<main.Point>").
//		Detail("generic serialization is not implemented").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IndexOutOfRange(5, 3)
//	err := errors.RowTooShort(line, 2, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// The Err* sentinels match a kind regardless of phase:
//
//	if errors.Is(err, errors.ErrRowTooShort) { ... }
//
// KindInvalidType refines KindInvalidConfiguration, so ErrInvalidConfiguration
// also matches invalid type errors.
package errors
