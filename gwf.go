// Package gwf implements a streaming parser for IGWD frame files (.gwf),
// the binary container used to exchange gravitational-wave detector and
// analysis data.
//
// The parser walks the file once, front to back, decoding each
// self-describing record and handing the typed payload to the caller's
// Handler. Callers never deal with the on-disk layout, the producing
// machine's endianness or the frame library version that wrote the file.
//
// # Core Features
//
//   - Streaming dispatch over length-prefixed records; the file is never
//     loaded into memory
//   - Per-file class table bootstrapped from the dictionary records
//     embedded in the stream
//   - Version 6 and version 8 record layouts, both endiannesses
//   - Typed vector payloads with zlib-deflated storage and in-place
//     endian correction of the sample buffer
//   - Pay-for-what-you-read: records without a handler slot are skipped
//     by their length field at no decoding cost
//
// # Basic Usage
//
// Collect every float64 strain vector in a file:
//
//	var strains []*gwf.VectorFloat64
//	err := gwf.ParseFile("H-H1_GWOSC_4KHZ.gwf", &gwf.Handler{
//	    Vector: func(v gwf.Vector) {
//	        if f64, ok := v.(*gwf.VectorFloat64); ok {
//	            strains = append(strains, f64)
//	        }
//	    },
//	})
//
// Handlers run on the parsing goroutine in file order, so a vector callback
// can safely refer to the frame header most recently seen by BeginFrame.
//
// # Errors
//
// Parsing stops at the first fault and returns it; nothing is retried and
// nothing is logged. Sentinel error values live in the errs package for
// classification with errors.Is. Files with an unsupported major version
// are not an error: the Version callback fires and parsing ends.
package gwf

import (
	"io"
	"os"

	"github.com/goller/gwf/internal/sbuf"
)

// fileBufferSize is the read buffer used by ParseFile.
const fileBufferSize = 16 * 1024

// Parse reads one frame file from r and delivers decoded records to h.
//
// The source is consumed strictly forward. When r implements io.Seeker,
// unsubscribed records are skipped with a relative seek; otherwise their
// payloads are drained and discarded. A nil h parses the file for
// structural validity only.
//
// Returns the first fatal fault, or nil once the end-of-file record is
// reached.
func Parse(r io.Reader, h *Handler) error {
	if h == nil {
		h = &Handler{}
	}

	hdr, err := parseHeader(r)
	if err != nil {
		return err
	}

	if h.Version != nil {
		h.Version(hdr.Version)
	}

	// Unsupported majors still report their version above; there is
	// nothing further this parser can safely read.
	if !hdr.Version.Major.Supported() {
		return nil
	}

	return newParser().parse(hdr, r, h)
}

// ParseFile opens name, wraps it in a buffered forward-seeking reader and
// delegates to Parse.
func ParseFile(name string, h *Handler) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return Parse(sbuf.NewReader(f, fileBufferSize), h)
}
