// Package sbuf provides a buffered reader over a seekable byte source that
// still supports forward seeks.
//
// bufio.Reader alone cannot seek, and seeking the underlying file would
// desynchronise its buffer. sbuf.Reader serves short skips from the buffer
// via Discard and routes long skips through the source's Seek, resetting the
// buffer afterwards. The parser skips unsubscribed records this way without
// reading their payloads.
package sbuf

import (
	"bufio"
	"errors"
	"io"
)

// Reader is a buffered io.ReadSeeker restricted to forward relative seeks.
type Reader struct {
	br  *bufio.Reader
	src io.ReadSeeker
	pos int64
}

// NewReader returns a Reader over src with the given buffer size. The
// source is assumed to be positioned at offset zero.
func NewReader(src io.ReadSeeker, size int) *Reader {
	return &Reader{
		br:  bufio.NewReaderSize(src, size),
		src: src,
	}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.br.Read(p)
	r.pos += int64(n)

	return n, err
}

// Seek advances the read position. Only io.SeekCurrent with a non-negative
// offset is supported; the parser never moves backwards.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekCurrent || offset < 0 {
		return r.pos, errors.New("sbuf: only forward relative seeks are supported")
	}

	if buffered := int64(r.br.Buffered()); offset > buffered {
		// Drop the buffer and let the source seek the remainder.
		if _, err := r.src.Seek(offset-buffered, io.SeekCurrent); err != nil {
			return r.pos, err
		}
		r.br.Reset(r.src)
		r.pos += offset

		return r.pos, nil
	}

	n, err := r.br.Discard(int(offset))
	r.pos += int64(n)

	return r.pos, err
}
