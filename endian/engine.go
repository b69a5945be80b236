// Package endian provides byte order utilities for decoding IGWD frame data.
//
// Frame files record their byte order in the file header, so every numeric
// read is parameterised by a binary.ByteOrder chosen once per file. The
// package offers three layers:
//
//   - Scalar reads (ReadUint16 ... ReadFloat64) that pull exactly one value
//     from an io.Reader through a caller-owned scratch buffer, avoiding a
//     per-field allocation in the record decoders.
//   - Bulk slice reads (ReadUint64Slice, ReadFloat32Slice, ReadFloat64Slice)
//     that decode a byte block into a pre-sized typed slice. The vector
//     decoder uses these for the per-dimension metadata blocks.
//   - Zero-copy reinterpretation (Int16Slice ... Float64Slice) that takes
//     ownership of a byte buffer and returns a typed slice over the same
//     backing array, byte-swapping in place when the file order differs from
//     the host order. This is how multi-megabyte vector payloads avoid a
//     second simultaneous buffer.
//
// # Thread Safety
//
// All functions are safe for concurrent use as long as callers do not share
// scratch buffers or reinterpreted payloads across goroutines.
package endian

import (
	"encoding/binary"
	"io"
	"math"
	"unsafe"
)

// Native reports the host's byte order, determined from a fixed integer
// probe.
func Native() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host the MSB (0x01).
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return Native() == binary.BigEndian
}

// ReadUint16 reads one uint16 from r in the given byte order using the
// caller's scratch buffer.
func ReadUint16(r io.Reader, buf *[2]byte, order binary.ByteOrder) (uint16, error) {
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return order.Uint16(buf[:]), nil
}

// ReadUint32 reads one uint32 from r in the given byte order.
func ReadUint32(r io.Reader, buf *[4]byte, order binary.ByteOrder) (uint32, error) {
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return order.Uint32(buf[:]), nil
}

// ReadUint64 reads one uint64 from r in the given byte order.
func ReadUint64(r io.Reader, buf *[8]byte, order binary.ByteOrder) (uint64, error) {
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return order.Uint64(buf[:]), nil
}

// ReadInt32 reads one int32 from r in the given byte order.
func ReadInt32(r io.Reader, buf *[4]byte, order binary.ByteOrder) (int32, error) {
	v, err := ReadUint32(r, buf, order)

	return int32(v), err
}

// ReadFloat32 reads one IEEE-754 float32 from r in the given byte order.
// The bit pattern travels through uint32, as every float conversion here does.
func ReadFloat32(r io.Reader, buf *[4]byte, order binary.ByteOrder) (float32, error) {
	v, err := ReadUint32(r, buf, order)

	return math.Float32frombits(v), err
}

// ReadFloat64 reads one IEEE-754 float64 from r in the given byte order.
func ReadFloat64(r io.Reader, buf *[8]byte, order binary.ByteOrder) (float64, error) {
	v, err := ReadUint64(r, buf, order)

	return math.Float64frombits(v), err
}

// ReadUint64Slice decodes len(dst) uint64 values from src in the given
// byte order. src must hold at least 8*len(dst) bytes.
func ReadUint64Slice(src []byte, dst []uint64, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = order.Uint64(src[i*8:])
	}
}

// ReadFloat32Slice decodes len(dst) float32 values from src in the given
// byte order. src must hold at least 4*len(dst) bytes.
func ReadFloat32Slice(src []byte, dst []float32, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = math.Float32frombits(order.Uint32(src[i*4:]))
	}
}

// ReadFloat64Slice decodes len(dst) float64 values from src in the given
// byte order. src must hold at least 8*len(dst) bytes.
func ReadFloat64Slice(src []byte, dst []float64, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = math.Float64frombits(order.Uint64(src[i*8:]))
	}
}
