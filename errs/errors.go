// Package errs defines the sentinel errors shared across the gwf packages.
//
// Call sites wrap these values with fmt.Errorf("...: %w", err) to add
// context, so callers can classify failures with errors.Is while still
// seeing where in the file the fault occurred.
package errs

import "errors"

var (
	// ErrNotAFrameFile indicates the 40-byte file header does not begin
	// with the IGWD magic.
	ErrNotAFrameFile = errors.New("not an IGWD frame file")

	// ErrMalformedString indicates a length-prefixed string was truncated
	// or contained no NUL terminator.
	ErrMalformedString = errors.New("malformed string")

	// ErrBadClassID indicates a dictionary record declared a class id
	// outside the 8-bit range.
	ErrBadClassID = errors.New("class id out of range")

	// ErrUnknownStructure indicates a dictionary record declared a
	// structure name outside the closed set of known kinds.
	ErrUnknownStructure = errors.New("unknown structure name")

	// ErrUnsupportedCompression indicates a vector carried a compression
	// code other than {0, 1, 256, 257}.
	ErrUnsupportedCompression = errors.New("unsupported compression code")

	// ErrShortStructure indicates a record declared a total length smaller
	// than its own 14-byte common prefix.
	ErrShortStructure = errors.New("structure length shorter than common prefix")
)
