package types

import "encoding/json"

// Probe records one inspected marker path under a candidate data directory.
type Probe struct {
	Dir    string
	Marker string
	Path   string
	Found  bool
	Err    error // stat error other than "does not exist"
}

// Event is one server-sent event from the signal-cli daemon.
type Event struct {
	Type string
	Data json.RawMessage
}
