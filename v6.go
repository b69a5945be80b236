package gwf

import "io"

// Version 6 decoders for the records whose field layout differs from
// version 8: events and simulated events store parameter values as float32,
// serial and simulation records store the sample rate as float32. All are
// widened to float64 on read so consumers see one shape per kind.

func (p *parser) eventV6(hdr *Header, r io.Reader, h *Handler) error {
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

	if pr := f.Float32(); pr >= 0 {
		ev.Probability = &pr
	}

	ev.Statistics = f.String()
	ev.Parameters = p.eventParams(&f, true)

	if err := f.Err(); err != nil {
		return err
	}

	if h.Event != nil {
		h.Event(ev)
	}

	return nil
}

func (p *parser) simulatedEventV6(hdr *Header, r io.Reader, h *Handler) error {
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
	ev.Parameters = p.eventParams(&f, true)

	if err := f.Err(); err != nil {
		return err
	}

	if h.SimulatedEvent != nil {
		h.SimulatedEvent(ev)
	}

	return nil
}

func (p *parser) serialV6(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := Serial{
		Name:              f.String(),
		GPSTimeS:          f.Uint32(),
		GPSResidualTimeNS: f.Uint32(),
		SampleRate:        float64(f.Float32()),
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

func (p *parser) simulatedV6(hdr *Header, r io.Reader, h *Handler) error {
	f := p.fields(hdr, r)

	s := Simulation{
		Name:        f.String(),
		Comment:     f.String(),
		SampleRate:  float64(f.Float32()),
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
