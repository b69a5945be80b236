package gwf

// Handler receives decoded structures as the parser encounters them.
//
// Every slot is optional: a nil field tells the dispatcher the caller does
// not care about that record kind, and the record is skipped by its length
// field without decoding the payload. Dictionary header records are always
// decoded internally regardless of the handler — they define the file's
// class numbering and suppressing them would break every later lookup.
//
// Callbacks run on the parsing goroutine, strictly in file order, and
// should return promptly. Each decoded value is handed over by move: the
// parser keeps no reference after the callback returns.
type Handler struct {
	// Version fires once, right after the file header is parsed, even
	// when the major version is unsupported.
	Version func(Version)

	BeginFrame     func(FrameHeader)
	ADC            func(ADC)
	Detector       func(Detector)
	Event          func(Event)
	History        func(History)
	Message        func(Message)
	PostProcessed  func(PostProcessed)
	Raw            func(RawData)
	Serial         func(Serial)
	Simulation     func(Simulation)
	SimulatedEvent func(SimulatedEvent)
	StaticData     func(StaticData)
	Summary        func(Summary)
	Table          func(Table)
	Vector         func(Vector)

	// EndOfFile fires when the end-of-file record terminates the parse.
	EndOfFile func()
}
