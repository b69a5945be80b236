package gwf

import "io"

// Version 8 record decoders. Each reads its fields in the order the format
// stores them, builds the payload value and emits it to the handler slot.
// The vector decoder lives in vector.go.

// structureHeader decodes a dictionary header record and installs its
// class binding. It always runs, even when the consumer subscribed to
// nothing: later records cannot be classified without it.
func (p *parser) structureHeader(hdr *Header, r io.Reader) error {
	f := p.fields(hdr, r)

	name := f.String()
	class := f.Uint16()
	_ = f.String() // comment

	if err := f.Err(); err != nil {
		return err
	}

	return p.classes.insert(name, class)
}

func (p *parser) frameHeader(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	fh := FrameHeader{
		Name:              f.String(),
		Run:               f.Int32(),
		Frame:             f.Uint32(),
		DataQuality:       f.Uint32(),
		GPSStartTimeS:     f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
		GPSLeapS:          f.Uint16(),
		FrameLengthS:      f.Float64(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.BeginFrame != nil {
		h.BeginFrame(fh)
	}

	return nil
}

func (p *parser) detector(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	d := Detector{Name: f.String()}

	var prefix [2]byte
	f.Read(prefix[:])
	d.Prefix = [2]int8{int8(prefix[0]), int8(prefix[1])}

	d.LongitudeRadians = f.Float64()
	d.LatitudeRadians = f.Float64()
	d.ElevationMeters = f.Float32()
	d.ArmXAzimuthRadians = f.Float32()
	d.ArmYAzimuthRadians = f.Float32()
	d.ArmXAltitudeRadians = f.Float32()
	d.ArmYAltitudeRadians = f.Float32()
	d.ArmXMidpointMeters = f.Float32()
	d.ArmYMidpointMeters = f.Float32()
	d.LocalTimeUTCOffsetS = f.Int32()

	if err := f.Err(); err != nil {
		return err
	}

	if h.Detector != nil {
		h.Detector(d)
	}

	return nil
}

func (p *parser) adc(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	a := ADC{
		Name:          f.String(),
		Comment:       f.String(),
		ChannelGroup:  f.Uint32(),
		ChannelNumber: f.Uint32(),
		NumBits:       f.Uint32(),
		Bias:          f.Float32(),
		Slope:         f.Float32(),
	}

	// The literal "NONE" marks absent units.
	if units := f.String(); units != "NONE" {
		a.Units = &units
	}

	a.SampleRate = f.Float64()
	a.TimeOffsetS = f.Float64()
	a.FShift = f.Float64()
	a.Phase = f.Float32()
	a.DataValid = f.Uint16() == 0

	if err := f.Err(); err != nil {
		return err
	}

	if h.ADC != nil {
		h.ADC(a)
	}

	return nil
}

func (p *parser) message(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	m := Message{
		Alarm:             f.String(),
		Message:           f.String(),
		Severity:          f.Uint32(),
		GPSTimeS:          f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.Message != nil {
		h.Message(m)
	}

	return nil
}

func (p *parser) history(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	hist := History{
		Name:     f.String(),
		GPSTimeS: f.Uint32(),
		Comment:  f.String(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.History != nil {
		h.History(hist)
	}

	return nil
}

func (p *parser) raw(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	rd := RawData{Name: f.String()}
	if err := f.Err(); err != nil {
		return err
	}

	if h.Raw != nil {
		h.Raw(rd)
	}

	return nil
}

func (p *parser) postProcessed(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	ppd := PostProcessed{
		Name:           f.String(),
		Comment:        f.String(),
		DataType:       f.Uint16(),
		SubType:        f.Uint16(),
		TimeOffsetS:    f.Float64(),
		TimeRangeS:     f.Float64(),
		FShift:         f.Float64(),
		Phase:          f.Float32(),
		FrequencyRange: f.Float64(),
		Bandwidth:      f.Float64(),
	}

	// Values first, then the matching names.
	numAux := int(f.Uint16())
	values := make([]float64, numAux)
	for i := range values {
		values[i] = f.Float64()
	}

	ppd.AuxiliaryParameters = make([]AuxiliaryParameter, 0, numAux)
	for _, v := range values {
		ppd.AuxiliaryParameters = append(ppd.AuxiliaryParameters, AuxiliaryParameter{
			Value: v,
			Name:  f.String(),
		})
	}

	if err := f.Err(); err != nil {
		return err
	}

	if h.PostProcessed != nil {
		h.PostProcessed(ppd)
	}

	return nil
}

func (p *parser) simulated(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := Simulation{
		Name:        f.String(),
		Comment:     f.String(),
		SampleRate:  f.Float64(),
		TimeOffsetS: f.Float64(),
		FShift:      f.Float64(),
		Phase:       f.Float32(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.Simulation != nil {
		h.Simulation(s)
	}

	return nil
}

func (p *parser) simulatedEvent(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	ev := SimulatedEvent{
		Name:              f.String(),
		Comment:           f.String(),
		Inputs:            f.String(),
		GPSEventMaxTimeS:  f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
		DurationBeforeS:   f.Float32(),
		DurationAfterS:    f.Float32(),
		Amplitude:         f.Float32(),
	}
	ev.Parameters = p.eventParams(&f, false)

	if err := f.Err(); err != nil {
		return err
	}

	if h.SimulatedEvent != nil {
		h.SimulatedEvent(ev)
	}

	return nil
}

func (p *parser) serial(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := Serial{
		Name:              f.String(),
		GPSTimeS:          f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
		SampleRate:        f.Float64(),
		Data:              f.String(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.Serial != nil {
		h.Serial(s)
	}

	return nil
}

func (p *parser) staticData(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := StaticData{
		Name:           f.String(),
		Comment:        f.String(),
		Representation: f.String(),
		GPSTimeStartS:  f.Uint32(),
		GPSTimeEndS:    f.Uint32(),
		Version:        f.Uint32(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.StaticData != nil {
		h.StaticData(s)
	}

	return nil
}

func (p *parser) summary(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := Summary{
		Name:              f.String(),
		Comment:           f.String(),
		Test:              f.String(),
		GPSTimeS:          f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
	}
	if err := f.Err(); err != nil {
		return err
	}

	if h.Summary != nil {
		h.Summary(s)
	}

	return nil
}

func (p *parser) table(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	tbl := Table{
		Name:    f.String(),
		Comment: f.String(),
	}

	numColumns := int(f.Uint16())
	tbl.NumRows = f.Uint32()

	tbl.ColumnNames = make([]string, 0, numColumns)
	for i := 0; i < numColumns; i++ {
		tbl.ColumnNames = append(tbl.ColumnNames, f.String())
	}

	if err := f.Err(); err != nil {
		return err
	}

	if h.Table != nil {
		h.Table(tbl)
	}

	return nil
}

func (p *parser) event(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	ev := Event{
		Name:              f.String(),
		Comment:           f.String(),
		Inputs:            f.String(),
		GPSTimeS:          f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
		DurationBeforeS:   f.Float32(),
		DurationAfterS:    f.Float32(),
		Status:            f.Uint32(),
		Amplitude:         f.Float32(),
	}

	// A stored value below zero means "no probability".
	if pr := f.Float32(); pr >= 0 {
		ev.Probability = &pr
	}

	ev.Statistics = f.String()
	ev.Parameters = p.eventParams(&f, false)

	if err := f.Err(); err != nil {
		return err
	}

	if h.Event != nil {
		h.Event(ev)
	}

	return nil
}

// eventParams reads the (value, name) parameter list shared by event and
// simulated-event records: a 16-bit count, the values, then the names.
// Version 6 files store float32 values, widened here to float64.
func (p *parser) eventParams(f *fieldReader, widen bool) []EventParameter {
	n := int(f.Uint16())
	if f.err != nil {
		return nil
	}

	values := make([]float64, n)
	for i := range values {
		if widen {
			values[i] = float64(f.Float32())
		} else {
			values[i] = f.Float64()
		}
	}

	params := make([]EventParameter, 0, n)
	for _, v := range values {
		params = append(params, EventParameter{Value: v, Name: f.String()})
	}

	return params
}
