// Package compress inflates the stored payload of vector records.
//
// The frame format defines four compression codes for vector payloads:
// 0 and 256 mean the samples are stored raw (the dispatcher passes those
// bytes through without touching this package), while 1 and 257 mean
// zlib-framed deflate. 256 and 257 are 0 and 1 with bit 0x100 set. Any
// other non-zero code fails with errs.ErrUnsupportedCompression.
//
// A Decompressor keeps its zlib state across calls, so inflating many
// vector records from one file amortises the inflater setup.
//
// # Thread Safety
//
// Decompressor is not safe for concurrent use. The parser owns exactly one
// per parse.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/goller/gwf/errs"
)

// DecompressedSize returns the byte size of a vector payload after
// decompression: the declared sample count times the element width of the
// vector class, doubled for the complex classes. String vectors (class 8)
// are never compressed; unknown classes degrade to one byte per sample.
func DecompressedSize(class uint16, numSamples uint64) int {
	n := int(numSamples)

	switch class {
	case 0, 12: // int8, uint8
		return n
	case 1, 9: // int16, uint16
		return n * 2
	case 3, 4, 10: // float32, int32, uint32
		return n * 4
	case 2, 5, 11: // float64, int64, uint64
		return n * 8
	case 6: // complex, float32 pairs
		return n * 8
	case 7: // complex, float64 pairs
		return n * 16
	default:
		return n
	}
}

// Decompressor inflates vector payloads, reusing one zlib context across
// records.
type Decompressor struct {
	src bytes.Reader
	zr  io.ReadCloser
}

// NewDecompressor creates a Decompressor. The zlib context is created
// lazily on the first compressed payload.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// Decompress inflates raw into a freshly allocated buffer sized by the
// vector class and declared sample count.
//
// Parameters:
//   - raw: The stored payload bytes as read from the record
//   - compression: The record's compression code; must be 1 or 257
//   - class: The record's vector class code, which fixes the element width
//   - numSamples: The record's declared sample count
//
// Returns:
//   - []byte: Decompressed payload of exactly DecompressedSize bytes
//   - error: errs.ErrUnsupportedCompression for unknown codes, or the
//     inflater's error for corrupt streams
func (d *Decompressor) Decompress(raw []byte, compression uint16, class uint16, numSamples uint64) ([]byte, error) {
	switch compression {
	case 1, 257:
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedCompression, compression)
	}

	out := make([]byte, DecompressedSize(class, numSamples))
	if err := d.inflate(raw, out); err != nil {
		return nil, err
	}

	return out, nil
}

// inflate fills out with the deflated content of raw.
func (d *Decompressor) inflate(raw, out []byte) error {
	d.src.Reset(raw)

	if d.zr == nil {
		zr, err := zlib.NewReader(&d.src)
		if err != nil {
			return fmt.Errorf("inflate vector payload: %w", err)
		}
		d.zr = zr
	} else if err := d.zr.(zlib.Resetter).Reset(&d.src, nil); err != nil {
		return fmt.Errorf("inflate vector payload: %w", err)
	}

	if _, err := io.ReadFull(d.zr, out); err != nil {
		return fmt.Errorf("inflate vector payload: %w", err)
	}

	// Reading past the last sample makes the inflater reach the end of the
	// stream and check its trailing checksum, so a truncated stream fails.
	var tail [1]byte
	if _, err := d.zr.Read(tail[:]); err != nil && err != io.EOF {
		return fmt.Errorf("inflate vector payload: %w", err)
	}

	return nil
}
