package gwf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goller/gwf/compress"
	"github.com/goller/gwf/endian"
	"github.com/goller/gwf/errs"
)

// parser drives the read cursor through the record stream. It owns the
// per-parse state: the scratch buffers shared by every decoder, the
// file-local class table and the reusable decompressor.
//
// The loop keeps one invariant: the cursor sits on a record boundary at the
// top of every iteration. Decoders read inside a bounded sub-reader and are
// not required to be byte-exact; the loop advances past whatever they leave
// unread.
type parser struct {
	common  [commonSize]byte
	buf2    [2]byte
	buf4    [4]byte
	buf8    [8]byte
	scratch []byte

	classes classTable
	dec     *compress.Decompressor
}

func newParser() *parser {
	return &parser{
		classes: newClassTable(),
		dec:     compress.NewDecompressor(),
	}
}

// dimScratch returns a reused buffer of exactly n bytes for the vector
// dimension blocks.
func (p *parser) dimScratch(n int) []byte {
	if cap(p.scratch) < n {
		p.scratch = make([]byte, n)
	}

	return p.scratch[:n]
}

// parse runs the dispatch loop until the end-of-file record or the first
// fault. The reader must be positioned at the first record boundary, byte
// 40, which is where parseHeader leaves it.
func (p *parser) parse(hdr *Header, r io.Reader, h *Handler) error {
	for {
		c, err := p.readCommon(hdr, r)
		if err != nil {
			return err
		}

		kind := p.classes.kind(c.class)

		if kind == structEndOfFile {
			if h.EndOfFile != nil {
				h.EndOfFile()
			}

			return nil
		}

		if !p.handles(kind, h) {
			// Uninteresting or unknown record: the length field is the
			// only safe way past it.
			if err := skip(r, int64(c.payloadLength())); err != nil {
				return err
			}

			continue
		}

		lr := &io.LimitedReader{R: r, N: int64(c.payloadLength())}
		if err := p.decode(kind, hdr, lr, h); err != nil {
			return err
		}

		// Decoders need not be byte-exact; advance past what they left.
		if err := skip(r, lr.N); err != nil {
			return err
		}
	}
}

// readCommon reads the 14-byte common prefix. The length occupies bytes
// 0..8 in both supported versions; version 8 stores the class in byte 9
// after a one-byte reserved field, version 6 stores it as a 16-bit value in
// bytes 8..10.
func (p *parser) readCommon(hdr *Header, r io.Reader) (common, error) {
	if _, err := io.ReadFull(r, p.common[:]); err != nil {
		return common{}, err
	}

	order := hdr.Endian.ByteOrder()
	length := order.Uint64(p.common[0:8])

	var class uint8
	switch hdr.Version.Major {
	case Release6:
		class = uint8(order.Uint16(p.common[8:10]))
	default:
		class = p.common[9]
	}

	if length < commonSize {
		return common{}, fmt.Errorf("%w: %d bytes", errs.ErrShortStructure, length)
	}

	return common{length: length, class: class}, nil
}

// handles reports whether a record of the given kind must be decoded.
// Dictionary headers are always decoded: they install the class bindings
// every later lookup depends on.
func (p *parser) handles(kind structureKind, h *Handler) bool {
	switch kind {
	case structSH:
		return true
	case structFrameH:
		return h.BeginFrame != nil
	case structAdcData:
		return h.ADC != nil
	case structDetector:
		return h.Detector != nil
	case structEvent:
		return h.Event != nil
	case structHistory:
		return h.History != nil
	case structMsg:
		return h.Message != nil
	case structProcData:
		return h.PostProcessed != nil
	case structRawData:
		return h.Raw != nil
	case structSerData:
		return h.Serial != nil
	case structSimData:
		return h.Simulation != nil
	case structSimEvent:
		return h.SimulatedEvent != nil
	case structStatData:
		return h.StaticData != nil
	case structSummary:
		return h.Summary != nil
	case structTable:
		return h.Table != nil
	case structVect:
		return h.Vector != nil
	default:
		return false
	}
}

// decode routes a record to its kind's decoder. The four kinds whose
// version 6 layout differs are version-dispatched; everything else decodes
// on the version 8 path regardless of file version.
func (p *parser) decode(kind structureKind, hdr *Header, r io.Reader, h *Handler) error {
	v6 := hdr.Version.Major == Release6

	switch kind {
	case structSH:
		return p.structureHeader(hdr, r)
	case structFrameH:
		return p.frameHeader(hdr, r, h)
	case structAdcData:
		return p.adc(hdr, r, h)
	case structDetector:
		return p.detector(hdr, r, h)
	case structEvent:
		if v6 {
			return p.eventV6(hdr, r, h)
		}

		return p.event(hdr, r, h)
	case structHistory:
		return p.history(hdr, r, h)
	case structMsg:
		return p.message(hdr, r, h)
	case structProcData:
		return p.postProcessed(hdr, r, h)
	case structRawData:
		return p.raw(hdr, r, h)
	case structSerData:
		if v6 {
			return p.serialV6(hdr, r, h)
		}

		return p.serial(hdr, r, h)
	case structSimData:
		if v6 {
			return p.simulatedV6(hdr, r, h)
		}

		return p.simulated(hdr, r, h)
	case structSimEvent:
		if v6 {
			return p.simulatedEventV6(hdr, r, h)
		}

		return p.simulatedEvent(hdr, r, h)
	case structStatData:
		return p.staticData(hdr, r, h)
	case structSummary:
		return p.summary(hdr, r, h)
	case structTable:
		return p.table(hdr, r, h)
	case structVect:
		return p.vector(hdr, r, h)
	default:
		return nil
	}
}

// skip advances past n bytes, preferring a forward seek when the source
// supports one and draining into io.Discard otherwise.
func skip(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}

	if s, ok := r.(io.Seeker); ok {
		if _, err := s.Seek(n, io.SeekCurrent); err != nil {
			return fmt.Errorf("seek past structure: %w", err)
		}

		return nil
	}

	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return fmt.Errorf("skip past structure: %w", err)
	}

	return nil
}

// fieldReader reads a record's fields in order with a sticky error, so
// decoders can assemble a payload struct without checking every scalar.
// The first failed read wins; later reads return zero values.
type fieldReader struct {
	r     io.Reader
	order binary.ByteOrder
	p     *parser
	err   error
}

func (p *parser) fields(hdr *Header, r io.Reader) fieldReader {
	return fieldReader{r: r, order: hdr.Endian.ByteOrder(), p: p}
}

// Err returns the first error any field read produced.
func (f *fieldReader) Err() error {
	return f.err
}

func (f *fieldReader) String() string {
	if f.err != nil {
		return ""
	}

	s, err := readString(f.r, f.order, &f.p.buf2)
	f.err = err

	return s
}

func (f *fieldReader) Uint16() uint16 {
	if f.err != nil {
		return 0
	}

	v, err := endian.ReadUint16(f.r, &f.p.buf2, f.order)
	f.err = err

	return v
}

func (f *fieldReader) Uint32() uint32 {
	if f.err != nil {
		return 0
	}

	v, err := endian.ReadUint32(f.r, &f.p.buf4, f.order)
	f.err = err

	return v
}

func (f *fieldReader) Int32() int32 {
	return int32(f.Uint32())
}

func (f *fieldReader) Uint64() uint64 {
	if f.err != nil {
		return 0
	}

	v, err := endian.ReadUint64(f.r, &f.p.buf8, f.order)
	f.err = err

	return v
}

func (f *fieldReader) Float32() float32 {
	if f.err != nil {
		return 0
	}

	v, err := endian.ReadFloat32(f.r, &f.p.buf4, f.order)
	f.err = err

	return v
}

func (f *fieldReader) Float64() float64 {
	if f.err != nil {
		return 0
	}

	v, err := endian.ReadFloat64(f.r, &f.p.buf8, f.order)
	f.err = err

	return v
}

// Read fills b exactly, for the rare fixed-byte fields such as the detector
// prefix.
func (f *fieldReader) Read(b []byte) {
	if f.err != nil {
		return
	}

	_, f.err = io.ReadFull(f.r, b)
}
