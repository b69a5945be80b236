package gwf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/goller/gwf/endian"
	"github.com/goller/gwf/errs"
)

// readString decodes the format's string encoding: a 16-bit length in file
// byte order followed by that many bytes, which must contain a NUL. The
// decoded value is everything before the first NUL, with invalid UTF-8
// replaced by U+FFFD.
func readString(r io.Reader, order binary.ByteOrder, buf *[2]byte) (string, error) {
	n, err := endian.ReadUint16(r, buf, order)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("%w: short read", errs.ErrMalformedString)
	}

	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", fmt.Errorf("%w: missing NUL terminator", errs.ErrMalformedString)
	}

	s := b[:i]
	if !utf8.Valid(s) {
		s = bytes.ToValidUTF8(s, []byte("�"))
	}

	return string(s), nil
}
