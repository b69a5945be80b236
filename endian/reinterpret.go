package endian

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// The XxxSlice functions reinterpret a byte buffer, recorded in the given
// byte order, as a typed slice in host order. They take ownership of buf:
// the returned slice aliases the same backing array whenever the buffer is
// suitably aligned, and the bytes are swapped in place, so buf must not be
// used afterwards.
//
// Go's allocator aligns heap blocks of 8 bytes or more to at least 8, so a
// buffer from make([]byte, n) always takes the aliasing path. Sub-slices at
// odd offsets fall back to a per-element copy with identical semantics.

// Uint16Slice reinterprets buf as a []uint16 in host order.
// len(buf) must be a multiple of 2.
func Uint16Slice(buf []byte, order binary.ByteOrder) []uint16 {
	n := len(buf) / 2
	if n == 0 {
		return nil
	}

	p := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(p)%unsafe.Alignof(uint16(0)) != 0 {
		dst := make([]uint16, n)
		for i := range dst {
			dst[i] = order.Uint16(buf[i*2:])
		}

		return dst
	}

	s := unsafe.Slice((*uint16)(p), n)
	if order != Native() {
		for i, v := range s {
			s[i] = bits.ReverseBytes16(v)
		}
	}

	return s
}

// Uint32Slice reinterprets buf as a []uint32 in host order.
// len(buf) must be a multiple of 4.
func Uint32Slice(buf []byte, order binary.ByteOrder) []uint32 {
	n := len(buf) / 4
	if n == 0 {
		return nil
	}

	p := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(p)%unsafe.Alignof(uint32(0)) != 0 {
		dst := make([]uint32, n)
		for i := range dst {
			dst[i] = order.Uint32(buf[i*4:])
		}

		return dst
	}

	s := unsafe.Slice((*uint32)(p), n)
	if order != Native() {
		for i, v := range s {
			s[i] = bits.ReverseBytes32(v)
		}
	}

	return s
}

// Uint64Slice reinterprets buf as a []uint64 in host order.
// len(buf) must be a multiple of 8.
func Uint64Slice(buf []byte, order binary.ByteOrder) []uint64 {
	n := len(buf) / 8
	if n == 0 {
		return nil
	}

	p := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(p)%unsafe.Alignof(uint64(0)) != 0 {
		dst := make([]uint64, n)
		ReadUint64Slice(buf, dst, order)

		return dst
	}

	s := unsafe.Slice((*uint64)(p), n)
	if order != Native() {
		for i, v := range s {
			s[i] = bits.ReverseBytes64(v)
		}
	}

	return s
}

// Int8Slice reinterprets buf as a []int8. Single-byte elements need no
// swapping, so this is a pure cast.
func Int8Slice(buf []byte) []int8 {
	if len(buf) == 0 {
		return nil
	}

	return unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf))
}

// Int16Slice reinterprets buf as a []int16 in host order.
func Int16Slice(buf []byte, order binary.ByteOrder) []int16 {
	u := Uint16Slice(buf, order)
	if len(u) == 0 {
		return nil
	}

	return unsafe.Slice((*int16)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}

// Int32Slice reinterprets buf as a []int32 in host order.
func Int32Slice(buf []byte, order binary.ByteOrder) []int32 {
	u := Uint32Slice(buf, order)
	if len(u) == 0 {
		return nil
	}

	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}

// Int64Slice reinterprets buf as a []int64 in host order.
func Int64Slice(buf []byte, order binary.ByteOrder) []int64 {
	u := Uint64Slice(buf, order)
	if len(u) == 0 {
		return nil
	}

	return unsafe.Slice((*int64)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}

// Float32Slice reinterprets buf as a []float32 in host order. The endian
// swap travels through uint32, preserving NaN payloads bit-for-bit.
func Float32Slice(buf []byte, order binary.ByteOrder) []float32 {
	u := Uint32Slice(buf, order)
	if len(u) == 0 {
		return nil
	}

	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}

// Float64Slice reinterprets buf as a []float64 in host order. The endian
// swap travels through uint64, preserving NaN payloads bit-for-bit.
func Float64Slice(buf []byte, order binary.ByteOrder) []float64 {
	u := Uint64Slice(buf, order)
	if len(u) == 0 {
		return nil
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}
