// Package errs defines the sentinel errors shared across this module.
//
// Call sites wrap these with fmt.Errorf("...: %w", errs.ErrXxx) to attach
// context while still letting callers use errors.Is against the sentinel.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when a container's first 8 bytes don't
	// match the expected magic "ALICETXT".
	ErrInvalidMagic = errors.New("alicetxt: invalid magic")

	// ErrUnsupportedVersion is returned when a container's major version
	// is not 3.
	ErrUnsupportedVersion = errors.New("alicetxt: unsupported version")

	// ErrTruncated is returned when a declared length exceeds the bytes
	// actually available at any read step.
	ErrTruncated = errors.New("alicetxt: truncated data")

	// ErrDeserialization is returned when column bytes don't decode to
	// their declared layout.
	ErrDeserialization = errors.New("alicetxt: deserialization failure")

	// ErrBackEnd is returned when the entropy-coder back end reports an
	// error.
	ErrBackEnd = errors.New("alicetxt: compression back end failure")

	// ErrUnknownColumn is returned when a query names a column that
	// doesn't exist in the opened container.
	ErrUnknownColumn = errors.New("alicetxt: unknown column")

	// ErrUnparsableFilterValue is returned when a filter value can't be
	// parsed into the target column's primitive type.
	ErrUnparsableFilterValue = errors.New("alicetxt: unparsable filter value")

	// ErrDuplicateColumn is returned when a container's directory lists
	// the same column tag more than once.
	ErrDuplicateColumn = errors.New("alicetxt: duplicate column tag in directory")

	// ErrInvalidUTF8 is returned when input text is not valid UTF-8;
	// container.Writer.Write rejects such text before extraction.
	ErrInvalidUTF8 = errors.New("alicetxt: invalid UTF-8 input")
)
