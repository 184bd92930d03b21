package latticebit

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which parsing stage rejected the input.
type ErrorKind int

const (
	// SignatureMismatch indicates the optional "LSCC" signature is present
	// but incorrect
	SignatureMismatch ErrorKind = iota

	// MarkerMissing indicates the 0xFF 0x00 comment marker is absent
	MarkerMissing

	// PreambleNotFound indicates no 0xFF byte starts the preamble search
	// region
	PreambleNotFound

	// PreambleKeyNotFound indicates no 0xB3 key byte follows the search
	// start
	PreambleKeyNotFound

	// InvalidPreambleKey indicates the byte preceding 0xB3 is neither 0xBD
	// nor 0xBF
	InvalidPreambleKey

	// PreambleWordMismatch indicates the 4-byte preamble word matches
	// neither accepted variant
	PreambleWordMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case SignatureMismatch:
		return "wrong file signature"
	case MarkerMissing:
		return "comment marker not found"
	case PreambleNotFound:
		return "preamble not found"
	case PreambleKeyNotFound:
		return "preamble key not found"
	case InvalidPreambleKey:
		return "wrong preamble key"
	case PreambleWordMismatch:
		return "missing preamble"
	default:
		return fmt.Sprintf("unknown parse failure %d", int(k))
	}
}

// FormatError reports a malformed .bit container. Any FormatError aborts the
// parse; no partial header or payload is returned.
type FormatError struct {
	// Kind is the stage-specific failure
	Kind ErrorKind

	// Offset is the byte position the failing stage was examining
	Offset int

	// Detail optionally describes the offending bytes
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// IsFormatError returns true if the error is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
