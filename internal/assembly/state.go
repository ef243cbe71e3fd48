package assembly

// State is a step of the conversion pipeline.
type State int

const (
	StateInit State = iota
	StateOutputPrepared
	StateInputValidated
	StateSegmentsDiscovered
	StateDescriptorReady
	StateMetadataAssembled
	StateEncoding
	StateDone
)

var stateNames = [...]string{
	StateInit:               "init",
	StateOutputPrepared:     "output_prepared",
	StateInputValidated:     "input_validated",
	StateSegmentsDiscovered: "segments_discovered",
	StateDescriptorReady:    "descriptor_ready",
	StateMetadataAssembled:  "metadata_assembled",
	StateEncoding:           "encoding",
	StateDone:               "done",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
