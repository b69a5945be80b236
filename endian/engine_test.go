package endian

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	require := require.New(t)

	result := Native()

	var probe uint16 = 0x0102
	probeBytes := (*[2]byte)(unsafe.Pointer(&probe))

	switch probeBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("unexpected probe byte", "got: %v", probeBytes[0])
	}

	require.Equal(result == binary.LittleEndian, IsNativeLittleEndian())
	require.Equal(result == binary.BigEndian, IsNativeBigEndian())
}

func TestReadUint16(t *testing.T) {
	var buf [2]byte

	got, err := ReadUint16(bytes.NewReader([]byte{0x12, 0x34}), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), got)

	got, err = ReadUint16(bytes.NewReader([]byte{0x12, 0x34}), &buf, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint16(0x3412), got)
}

func TestReadUint32(t *testing.T) {
	var buf [4]byte
	src := []byte{0x12, 0x34, 0x56, 0x78}

	got, err := ReadUint32(bytes.NewReader(src), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x12345678), got)

	got, err = ReadUint32(bytes.NewReader(src), &buf, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x78563412), got)
}

func TestReadInt32(t *testing.T) {
	var buf [4]byte

	got, err := ReadInt32(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0x00}), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, int32(-256), got)
}

func TestReadUint64(t *testing.T) {
	var buf [8]byte
	src := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	got, err := ReadUint64(bytes.NewReader(src), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0123456789abcdef), got)

	got, err = ReadUint64(bytes.NewReader(src), &buf, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint64(0xefcdab8967452301), got)
}

func TestReadFloat64(t *testing.T) {
	var buf [8]byte

	got, err := ReadFloat64(bytes.NewReader([]byte{0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18}), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, got, 1e-15)

	got, err = ReadFloat64(bytes.NewReader([]byte{0x18, 0x2d, 0x44, 0x54, 0xfb, 0x21, 0x09, 0x40}), &buf, binary.LittleEndian)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, got, 1e-15)
}

func TestReadFloat32(t *testing.T) {
	var buf [4]byte

	got, err := ReadFloat32(bytes.NewReader([]byte{0x40, 0x49, 0x0f, 0xdb}), &buf, binary.BigEndian)
	require.NoError(t, err)
	require.InDelta(t, float32(math.Pi), got, 1e-6)
}

func TestReadScalarShortInput(t *testing.T) {
	var buf4 [4]byte
	_, err := ReadUint32(bytes.NewReader([]byte{0x01, 0x02}), &buf4, binary.BigEndian)
	require.Error(t, err)
}

func TestReadUint64Slice(t *testing.T) {
	want := []uint64{0, 1, 0x0123456789abcdef, math.MaxUint64}

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		src := make([]byte, 8*len(want))
		for i, v := range want {
			order.PutUint64(src[i*8:], v)
		}

		dst := make([]uint64, len(want))
		ReadUint64Slice(src, dst, order)
		require.Equal(t, want, dst, "order %v", order)
	}
}

func TestReadFloat64Slice(t *testing.T) {
	want := []float64{0, -1.5, math.Pi, 5.645729203487291e-20}

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		src := make([]byte, 8*len(want))
		for i, v := range want {
			order.PutUint64(src[i*8:], math.Float64bits(v))
		}

		dst := make([]float64, len(want))
		ReadFloat64Slice(src, dst, order)
		require.Equal(t, want, dst, "order %v", order)
	}
}

func TestReadFloat32Slice(t *testing.T) {
	want := []float32{0, -1.5, math.Pi, 1e-20}

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		src := make([]byte, 4*len(want))
		for i, v := range want {
			order.PutUint32(src[i*4:], math.Float32bits(v))
		}

		dst := make([]float32, len(want))
		ReadFloat32Slice(src, dst, order)
		require.Equal(t, want, dst, "order %v", order)
	}
}
