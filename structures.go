package gwf

import (
	"fmt"
	"math"

	"github.com/goller/gwf/errs"
)

// commonSize is the fixed size of the common prefix carried by every record:
// an 8-byte length, the class tag and reserved bytes.
const commonSize = 14

// common is the decoded per-record prefix. length counts the whole record,
// prefix included.
type common struct {
	length uint64
	class  uint8
}

// payloadLength returns the number of bytes that follow the prefix.
func (c common) payloadLength() uint64 {
	return c.length - commonSize
}

// structureKind names the record kinds of the format. The numeric class tag
// of each kind is file-local; kinds are resolved through the classTable.
type structureKind uint8

const (
	structUnknown structureKind = iota
	structSH                    // dictionary header; class 1 in every file
	structSE                    // dictionary entry; class 2 in every file
	structFrameH
	structAdcData
	structDetector
	structEndOfFile
	structEndOfFrame
	structEvent
	structHistory
	structMsg
	structProcData
	structRawData
	structSerData
	structSimData
	structSimEvent
	structStatData
	structSummary
	structTable
	structTOC
	structVect
)

// structureKinds resolves the structure names dictionary records declare.
// The names are fixed by the format specification.
var structureKinds = map[string]structureKind{
	"FrSH":         structSH,
	"FrSE":         structSE,
	"FrameH":       structFrameH,
	"FrAdcData":    structAdcData,
	"FrDetector":   structDetector,
	"FrEndOfFile":  structEndOfFile,
	"FrEndOfFrame": structEndOfFrame,
	"FrEvent":      structEvent,
	"FrHistory":    structHistory,
	"FrMsg":        structMsg,
	"FrProcData":   structProcData,
	"FrRawData":    structRawData,
	"FrSerData":    structSerData,
	"FrSimData":    structSimData,
	"FrSimEvent":   structSimEvent,
	"FrStatData":   structStatData,
	"FrSummary":    structSummary,
	"FrTable":      structTable,
	"FrTOC":        structTOC,
	"FrVect":       structVect,
}

// classTable is the file-local mapping from class tag to structure kind.
// Each file declares its own numbering through dictionary header records;
// only the two dictionary classes themselves are fixed by specification.
type classTable struct {
	classes map[uint8]structureKind
}

func newClassTable() classTable {
	return classTable{classes: map[uint8]structureKind{
		1: structSH,
		2: structSE,
	}}
}

// insert binds a declared class id to the kind named by a dictionary header
// record.
func (t classTable) insert(name string, id uint16) error {
	if id > math.MaxUint8 {
		return fmt.Errorf("%w: %d", errs.ErrBadClassID, id)
	}

	kind, ok := structureKinds[name]
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownStructure, name)
	}
	t.classes[uint8(id)] = kind

	return nil
}

// kind resolves a class tag, yielding structUnknown for tags the file has
// not declared. Unknown records are skipped, not failed.
func (t classTable) kind(id uint8) structureKind {
	if k, ok := t.classes[id]; ok {
		return k
	}

	return structUnknown
}

// FrameHeader marks the start of a frame: a logical time segment that owns
// the records that follow it until the next frame header.
type FrameHeader struct {
	Name              string
	Run               int32
	Frame             uint32
	DataQuality       uint32
	GPSStartTimeS     uint32
	GPSResidualTimeNS uint32
	GPSLeapS          uint16
	FrameLengthS      float64
}

// ADC describes one ADC channel. Units is nil when the producer wrote the
// literal "NONE".
type ADC struct {
	Name          string
	Comment       string
	ChannelGroup  uint32
	ChannelNumber uint32
	NumBits       uint32
	Bias          float32
	Slope         float32
	Units         *string
	SampleRate    float64
	TimeOffsetS   float64
	FShift        float64
	Phase         float32
	DataValid     bool
}

// Detector describes an interferometer site and its arm geometry.
type Detector struct {
	Name                string
	Prefix              [2]int8
	LongitudeRadians    float64
	LatitudeRadians     float64
	ElevationMeters     float32
	ArmXAzimuthRadians  float32
	ArmYAzimuthRadians  float32
	ArmXAltitudeRadians float32
	ArmYAltitudeRadians float32
	ArmXMidpointMeters  float32
	ArmYMidpointMeters  float32
	LocalTimeUTCOffsetS int32
}

// Event is a transient detected by an analysis pipeline. Probability is nil
// when the producer stored the negative sentinel.
type Event struct {
	Name              string
	Comment           string
	Inputs            string
	GPSTimeS          uint32
	GPSResidualTimeNS uint32
	DurationBeforeS   float32
	DurationAfterS    float32
	Status            uint32
	Amplitude         float32
	Probability       *float32
	Statistics        string
	Parameters        []EventParameter
}

// EventParameter is one named value attached to an event. Version 6 files
// store the value as float32; it is widened on read.
type EventParameter struct {
	Value float64
	Name  string
}

// History records a processing step applied to the data.
type History struct {
	Name     string
	GPSTimeS uint32
	Comment  string
}

// Message is a free-form online system message.
type Message struct {
	Alarm             string
	Message           string
	Severity          uint32
	GPSTimeS          uint32
	GPSResidualTimeNS uint32
}

// PostProcessed describes derived (processed) data such as a strain series.
type PostProcessed struct {
	Name                string
	Comment             string
	DataType            uint16
	SubType             uint16
	TimeOffsetS         float64
	TimeRangeS          float64
	FShift              float64
	Phase               float32
	FrequencyRange      float64
	Bandwidth           float64
	AuxiliaryParameters []AuxiliaryParameter
}

// AuxiliaryParameter is one named value attached to post-processed data.
type AuxiliaryParameter struct {
	Value float64
	Name  string
}

// RawData introduces the raw data section of a frame.
type RawData struct {
	Name string
}

// Serial carries data from a serial (slow) channel as an opaque string.
// Version 6 files store the sample rate as float32; it is widened on read.
type Serial struct {
	Name              string
	GPSTimeS          uint32
	GPSResidualTimeNS uint32
	SampleRate        float64
	Data              string
}

// Simulation describes simulated data injected into the stream.
type Simulation struct {
	Name        string
	Comment     string
	SampleRate  float64
	TimeOffsetS float64
	FShift      float64
	Phase       float32
}

// SimulatedEvent is an injected transient.
type SimulatedEvent struct {
	Name              string
	Comment           string
	Inputs            string
	GPSEventMaxTimeS  uint32
	GPSResidualTimeNS uint32
	DurationBeforeS   float32
	DurationAfterS    float32
	Amplitude         float32
	Parameters        []EventParameter
}

// StaticData carries slowly varying calibration-style data valid over a GPS
// interval.
type StaticData struct {
	Name           string
	Comment        string
	Representation string
	GPSTimeStartS  uint32
	GPSTimeEndS    uint32
	Version        uint32
}

// Summary holds statistical summary data for a frame.
type Summary struct {
	Name              string
	Comment           string
	Test              string
	GPSTimeS          uint32
	GPSResidualTimeNS uint32
}

// Table is a named two-dimensional table; only its shape and column names
// are decoded here, the column vectors arrive as separate vector records.
type Table struct {
	Name        string
	Comment     string
	NumRows     uint32
	ColumnNames []string
}
