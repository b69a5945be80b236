package gwf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goller/gwf/errs"
)

func TestReadString(t *testing.T) {
	var buf [2]byte

	// Length 7, "STRING" plus NUL.
	src := []byte{0, 7, 'S', 'T', 'R', 'I', 'N', 'G', 0}
	got, err := readString(bytes.NewReader(src), binary.BigEndian, &buf)
	require.NoError(t, err)
	require.Equal(t, "STRING", got)

	src = []byte{7, 0, 'S', 'T', 'R', 'I', 'N', 'G', 0}
	got, err = readString(bytes.NewReader(src), binary.LittleEndian, &buf)
	require.NoError(t, err)
	require.Equal(t, "STRING", got)
}

// Only the bytes before the first NUL count; producers may pad after it.
func TestReadStringStopsAtFirstNUL(t *testing.T) {
	var buf [2]byte

	src := []byte{0, 6, 'a', 'b', 0, 'x', 'y', 0}
	got, err := readString(bytes.NewReader(src), binary.BigEndian, &buf)
	require.NoError(t, err)
	require.Equal(t, "ab", got)
}

func TestReadStringEmpty(t *testing.T) {
	var buf [2]byte

	got, err := readString(bytes.NewReader([]byte{0, 1, 0}), binary.BigEndian, &buf)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestReadStringMissingNUL(t *testing.T) {
	var buf [2]byte

	_, err := readString(bytes.NewReader([]byte{0, 2, 'a', 'b'}), binary.BigEndian, &buf)
	require.ErrorIs(t, err, errs.ErrMalformedString)
}

func TestReadStringShortRead(t *testing.T) {
	var buf [2]byte

	_, err := readString(bytes.NewReader([]byte{0, 9, 'a', 'b', 0}), binary.BigEndian, &buf)
	require.ErrorIs(t, err, errs.ErrMalformedString)
}

func TestReadStringReplacesInvalidUTF8(t *testing.T) {
	var buf [2]byte

	src := []byte{0, 3, 0xFF, 'a', 0}
	got, err := readString(bytes.NewReader(src), binary.BigEndian, &buf)
	require.NoError(t, err)
	require.Equal(t, "�a", got)
}
