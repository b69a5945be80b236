package gwf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goller/gwf/errs"
)

// headerSize is the fixed size of the file-level IGWD header.
const headerSize = 40

var magic = [5]byte{'I', 'G', 'W', 'D', 0}

// Major is the frame library major version used to write the file. Values
// outside the named releases are carried through unchanged so callers can
// report what an unsupported file claims to be.
type Major uint8

const (
	Release4 Major = 4
	Release6 Major = 6
	Release8 Major = 8
)

// Supported reports whether this parser can decode records written at the
// given major version.
func (m Major) Supported() bool {
	return m == Release6 || m == Release8
}

func (m Major) String() string {
	switch m {
	case Release4:
		return "release-4"
	case Release6:
		return "release-6"
	case Release8:
		return "release-8"
	default:
		return fmt.Sprintf("unsupported(%d)", uint8(m))
	}
}

// Minor is the frame library minor version. The reserved value 255 marks an
// unreleased or provisional library build.
type Minor uint8

// MinorBeta represents an unreleased or provisional version.
const MinorBeta Minor = 255

// Beta reports whether the minor version is the provisional marker.
func (m Minor) Beta() bool {
	return m == MinorBeta
}

func (m Minor) String() string {
	if m.Beta() {
		return "beta"
	}

	return fmt.Sprintf("%d", uint8(m))
}

// Version is the frame library version recorded in the file header.
type Version struct {
	Major Major
	Minor Minor
}

// Endian describes the byte order of the file's numeric fields.
type Endian uint8

const (
	Big Endian = iota
	Little
)

// ByteOrder returns the encoding/binary order matching the file's
// endianness.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func (e Endian) String() string {
	if e == Big {
		return "big"
	}

	return "little"
}

// The header stores the two-byte probe 0x1234 at offset 12; the order its
// bytes appear in reveals the producer's endianness. Unrecognised probe
// values default to little.
func endianFrom(b0, b1 byte) Endian {
	if b0 == 0x12 && b1 == 0x34 {
		return Big
	}

	return Little
}

// Library identifies the software that produced the file. Known producers
// map to LibFrameL and LibFrameCPP; any other value is carried through as
// the raw byte from the file.
type Library uint8

const (
	// LibFrameL is the C frame library. Version 6 of the library wrote
	// ASCII 'A' instead of 1.
	LibFrameL Library = 1
	// LibFrameCPP is the C++ frame library.
	LibFrameCPP Library = 2
)

func libraryFrom(b byte) Library {
	switch b {
	case 1, 'A':
		return LibFrameL
	case 2:
		return LibFrameCPP
	default:
		return Library(b)
	}
}

func (l Library) String() string {
	switch l {
	case LibFrameL:
		return "framel"
	case LibFrameCPP:
		return "framecpp"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(l))
	}
}

// Checksum is the checksum indicator recorded in the file header. The
// parser surfaces it without verifying anything.
type Checksum uint8

const (
	SumNone Checksum = iota
	// SumCRC indicates there is a POSIX.2 checksum.
	SumCRC
)

func checksumFrom(b byte) Checksum {
	if b == 1 {
		return SumCRC
	}

	return SumNone
}

func (c Checksum) String() string {
	if c == SumCRC {
		return "crc"
	}

	return "none"
}

// DataModel is the producing machine's pointer/word-width model, derived
// from the integer size bytes of the file header.
type DataModel uint8

const (
	DataModelUnknown DataModel = iota
	ILP32
	LP64
	LLP64
)

func dataModelFrom(intSize, longSize, ptrSize byte) DataModel {
	switch {
	case intSize == 4 && longSize == 8 && ptrSize == 8:
		return LP64
	case intSize == 4 && longSize == 4 && ptrSize == 8:
		return LLP64
	case intSize == 4 && longSize == 4 && ptrSize == 4:
		return ILP32
	default:
		return DataModelUnknown
	}
}

func (d DataModel) String() string {
	switch d {
	case ILP32:
		return "ILP32"
	case LP64:
		return "LP64"
	case LLP64:
		return "LLP64"
	default:
		return "unknown"
	}
}

// Header is the file-level IGWD header: version, endianness, producing
// library, data model hint and checksum indicator. It is immutable after
// parsing; every decoder call receives a pointer to the same value.
type Header struct {
	Version   Version
	Library   Library
	Endian    Endian
	DataModel DataModel
	Checksum  Checksum
}

// parseHeader reads exactly the 40 header bytes from r and never seeks, so
// the cursor ends up at the first record boundary.
func parseHeader(r io.Reader) (*Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("read file header: %w", err)
	}

	if !bytes.Equal(buf[:5], magic[:]) {
		return nil, errs.ErrNotAFrameFile
	}

	return &Header{
		Version: Version{Major: Major(buf[5]), Minor: Minor(buf[6])},
		Library: libraryFrom(buf[38]),
		Endian:  endianFrom(buf[12], buf[13]),
		// Byte 9 serves as both long and pointer width; producers do not
		// write a separate pointer size byte.
		DataModel: dataModelFrom(buf[8], buf[9], buf[9]),
		Checksum:  checksumFrom(buf[39]),
	}, nil
}
