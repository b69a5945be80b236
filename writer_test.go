package gwf

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

// testEncoder builds synthetic frame files in memory. It is the reference
// encoder for the parser tests: every field it writes mirrors the layout
// the decoders read.
type testEncoder struct {
	buf   bytes.Buffer
	order binary.ByteOrder
	v6    bool
}

func newTestEncoder(order binary.ByteOrder) *testEncoder {
	return &testEncoder{order: order}
}

// fileHeader writes the 40-byte IGWD header. The integer-size bytes match
// an LP64 producer.
func (e *testEncoder) fileHeader(major, minor, library, checksum byte) {
	e.v6 = major == 6

	var b [40]byte
	copy(b[:], magic[:])
	b[5], b[6] = major, minor
	b[7], b[8], b[9] = 2, 4, 8
	if e.order == binary.BigEndian {
		b[12], b[13] = 0x12, 0x34
	} else {
		b[12], b[13] = 0x34, 0x12
	}
	b[38], b[39] = library, checksum

	e.buf.Write(b[:])
}

// record writes a common prefix for the payload and then the payload. The
// class encoding follows the file version: a 16-bit value in version 6, the
// 10th byte in version 8.
func (e *testEncoder) record(class uint8, payload []byte) {
	var pre [commonSize]byte
	e.order.PutUint64(pre[0:8], uint64(len(payload))+commonSize)
	if e.v6 {
		e.order.PutUint16(pre[8:10], uint16(class))
	} else {
		pre[9] = class
	}

	e.buf.Write(pre[:])
	e.buf.Write(payload)
}

// dictionary writes a FrSH record binding id to the structure name.
func (e *testEncoder) dictionary(name string, id uint16) {
	p := e.payload()
	p.str(name)
	p.u16(id)
	p.str("")
	e.record(1, p.bytes())
}

func (e *testEncoder) bytes() []byte {
	return e.buf.Bytes()
}

func (e *testEncoder) reader() *bytes.Reader {
	return bytes.NewReader(e.buf.Bytes())
}

func (e *testEncoder) payload() *recordPayload {
	return &recordPayload{order: e.order}
}

// recordPayload accumulates the field bytes of one record body.
type recordPayload struct {
	buf   bytes.Buffer
	order binary.ByteOrder
}

func (p *recordPayload) str(s string) *recordPayload {
	var l [2]byte
	p.order.PutUint16(l[:], uint16(len(s)+1))
	p.buf.Write(l[:])
	p.buf.WriteString(s)
	p.buf.WriteByte(0)

	return p
}

func (p *recordPayload) u16(v uint16) *recordPayload {
	var b [2]byte
	p.order.PutUint16(b[:], v)
	p.buf.Write(b[:])

	return p
}

func (p *recordPayload) u32(v uint32) *recordPayload {
	var b [4]byte
	p.order.PutUint32(b[:], v)
	p.buf.Write(b[:])

	return p
}

func (p *recordPayload) i32(v int32) *recordPayload {
	return p.u32(uint32(v))
}

func (p *recordPayload) u64(v uint64) *recordPayload {
	var b [8]byte
	p.order.PutUint64(b[:], v)
	p.buf.Write(b[:])

	return p
}

func (p *recordPayload) f32(v float32) *recordPayload {
	return p.u32(math.Float32bits(v))
}

func (p *recordPayload) f64(v float64) *recordPayload {
	return p.u64(math.Float64bits(v))
}

func (p *recordPayload) raw(b []byte) *recordPayload {
	p.buf.Write(b)

	return p
}

func (p *recordPayload) bytes() []byte {
	return p.buf.Bytes()
}

// float64Bytes serialises samples in the encoder's byte order, the way a
// producer stores a float64 vector payload.
func (e *testEncoder) float64Bytes(samples []float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, v := range samples {
		e.order.PutUint64(out[i*8:], math.Float64bits(v))
	}

	return out
}

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
