package gwf

import (
	"encoding/binary"
	"io"

	"github.com/goller/gwf/endian"
)

// VectorClass is the 16-bit element type code carried inside a vector
// record. It is independent of the record's class tag.
type VectorClass uint16

const (
	ClassInt8       VectorClass = iota // 0
	ClassInt16                         // 1
	ClassFloat64                       // 2
	ClassFloat32                       // 3
	ClassInt32                         // 4
	ClassInt64                         // 5
	ClassComplex64                     // 6: float32 (real, imag) pairs
	ClassComplex128                    // 7: float64 (real, imag) pairs
	ClassString                        // 8: never compressed
	ClassUint16                        // 9
	ClassUint32                        // 10
	ClassUint64                        // 11
	ClassUint8                         // 12
)

// VectorInfo is the metadata shared by every vector variant: the sample
// count, the dimension layout and the unit strings.
type VectorInfo struct {
	Name              string
	NumSamples        uint64
	NumDimensions     uint32
	DimensionLengths  []uint64
	SampleSpacing     []float64
	XOrigins          []float64
	UnitXScaleFactors []string
	UnitY             string
}

// Vector is a decoded vector record. The concrete type carries the typed
// sample payload; consumers type-switch on it:
//
//	func onVector(v gwf.Vector) {
//	    switch v := v.(type) {
//	    case *gwf.VectorFloat64:
//	        use(v.Name, v.Data)
//	    case *gwf.VectorInt16:
//	        ...
//	    }
//	}
//
// Complex payloads are materialised as complex128 regardless of the on-disk
// precision. String vectors and unknown class codes degrade to VectorUint8
// over the raw payload bytes.
type Vector interface {
	// Info returns the metadata shared by all vector variants.
	Info() *VectorInfo
}

type VectorInt8 struct {
	VectorInfo
	Data []int8
}

type VectorUint8 struct {
	VectorInfo
	Data []uint8
}

type VectorInt16 struct {
	VectorInfo
	Data []int16
}

type VectorUint16 struct {
	VectorInfo
	Data []uint16
}

type VectorInt32 struct {
	VectorInfo
	Data []int32
}

type VectorUint32 struct {
	VectorInfo
	Data []uint32
}

type VectorInt64 struct {
	VectorInfo
	Data []int64
}

type VectorUint64 struct {
	VectorInfo
	Data []uint64
}

type VectorFloat32 struct {
	VectorInfo
	Data []float32
}

type VectorFloat64 struct {
	VectorInfo
	Data []float64
}

// VectorComplex holds complex samples widened to complex128.
type VectorComplex struct {
	VectorInfo
	Data []complex128
}

func (v *VectorInt8) Info() *VectorInfo    { return &v.VectorInfo }
func (v *VectorUint8) Info() *VectorInfo   { return &v.VectorInfo }
func (v *VectorInt16) Info() *VectorInfo   { return &v.VectorInfo }
func (v *VectorUint16) Info() *VectorInfo  { return &v.VectorInfo }
func (v *VectorInt32) Info() *VectorInfo   { return &v.VectorInfo }
func (v *VectorUint32) Info() *VectorInfo  { return &v.VectorInfo }
func (v *VectorInt64) Info() *VectorInfo   { return &v.VectorInfo }
func (v *VectorUint64) Info() *VectorInfo  { return &v.VectorInfo }
func (v *VectorFloat32) Info() *VectorInfo { return &v.VectorInfo }
func (v *VectorFloat64) Info() *VectorInfo { return &v.VectorInfo }
func (v *VectorComplex) Info() *VectorInfo { return &v.VectorInfo }

// newVector materialises the typed payload from the decompressed bytes.
// The fixed-width classes reinterpret data in place; data must not be used
// afterwards.
func newVector(data []byte, class VectorClass, order binary.ByteOrder, info VectorInfo) Vector {
	switch class {
	case ClassInt8:
		return &VectorInt8{info, endian.Int8Slice(data)}
	case ClassInt16:
		return &VectorInt16{info, endian.Int16Slice(data, order)}
	case ClassFloat64:
		return &VectorFloat64{info, endian.Float64Slice(data, order)}
	case ClassFloat32:
		return &VectorFloat32{info, endian.Float32Slice(data, order)}
	case ClassInt32:
		return &VectorInt32{info, endian.Int32Slice(data, order)}
	case ClassInt64:
		return &VectorInt64{info, endian.Int64Slice(data, order)}
	case ClassComplex64:
		fs := make([]float32, len(data)/4)
		endian.ReadFloat32Slice(data, fs, order)
		cs := make([]complex128, len(fs)/2)
		for i := range cs {
			cs[i] = complex(float64(fs[2*i]), float64(fs[2*i+1]))
		}

		return &VectorComplex{info, cs}
	case ClassComplex128:
		fs := make([]float64, len(data)/8)
		endian.ReadFloat64Slice(data, fs, order)
		cs := make([]complex128, len(fs)/2)
		for i := range cs {
			cs[i] = complex(fs[2*i], fs[2*i+1])
		}

		return &VectorComplex{info, cs}
	case ClassUint16:
		return &VectorUint16{info, endian.Uint16Slice(data, order)}
	case ClassUint32:
		return &VectorUint32{info, endian.Uint32Slice(data, order)}
	case ClassUint64:
		return &VectorUint64{info, endian.Uint64Slice(data, order)}
	default:
		// ClassUint8, ClassString and unknown codes keep the raw bytes.
		return &VectorUint8{info, data}
	}
}

// vector decodes a vector record: header metadata plus the typed, possibly
// deflated, multi-dimensional payload.
//
// On-disk field order: name, compression code, vector class, sample count,
// stored payload length, stored payload, dimensionality, then the three
// per-dimension blocks (lengths, spacings, origins), the per-dimension
// x-unit strings and the y-unit string.
func (p *parser) vector(hdr *Header, r io.Reader, h *Handler) error {
	order := hdr.Endian.ByteOrder()
	f := p.fields(hdr, r)

	name := f.String()
	compression := f.Uint16()
	class := VectorClass(f.Uint16())
	numSamples := f.Uint64()
	storedLen := f.Uint64()
	if err := f.Err(); err != nil {
		return err
	}

	raw := make([]byte, storedLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return err
	}

	var data []byte
	switch compression {
	case 0, 256:
		// Stored payloads pass through untouched.
		data = raw
	default:
		var err error
		data, err = p.dec.Decompress(raw, compression, uint16(class), numSamples)
		if err != nil {
			return err
		}
	}

	numDims := f.Uint32()
	if err := f.Err(); err != nil {
		return err
	}

	// One scratch block serves the three per-dimension runs of 8-byte
	// values in turn.
	block := p.dimScratch(int(numDims) * 8)

	if _, err := io.ReadFull(r, block); err != nil {
		return err
	}
	lengths := make([]uint64, numDims)
	endian.ReadUint64Slice(block, lengths, order)

	if _, err := io.ReadFull(r, block); err != nil {
		return err
	}
	spacing := make([]float64, numDims)
	endian.ReadFloat64Slice(block, spacing, order)

	if _, err := io.ReadFull(r, block); err != nil {
		return err
	}
	origins := make([]float64, numDims)
	endian.ReadFloat64Slice(block, origins, order)

	unitX := make([]string, 0, numDims)
	for i := uint32(0); i < numDims; i++ {
		unitX = append(unitX, f.String())
	}
	unitY := f.String()
	if err := f.Err(); err != nil {
		return err
	}

	info := VectorInfo{
		Name:              name,
		NumSamples:        numSamples,
		NumDimensions:     numDims,
		DimensionLengths:  lengths,
		SampleSpacing:     spacing,
		XOrigins:          origins,
		UnitXScaleFactors: unitX,
		UnitY:             unitY,
	}

	if h.Vector != nil {
		h.Vector(newVector(data, class, order, info))
	}

	return nil
}
