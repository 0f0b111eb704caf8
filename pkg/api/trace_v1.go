// pkg/api/trace_v1.go
package api

// RowV1 is one emitted register state.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RowV1 struct {
	Index int    `json:"index"`
	State string `json:"state"` // MSB first
	Out   int    `json:"out"`   // bit shifted out by the next step
}

// SummaryV1 describes how a run ended.
type SummaryV1 struct {
	Width      int    `json:"width"`
	Taps       []int  `json:"taps"`
	Initial    string `json:"initial"`
	Outcome    string `json:"outcome"` // "closed" | "truncated" | "diverged"
	Rows       int    `json:"rows"`
	CycleStart int    `json:"cycle_start,omitempty"`
	CycleLen   int    `json:"cycle_len,omitempty"`
}

// TraceV1 is the stable JSON schema for a whole run.
type TraceV1 struct {
	SummaryV1
	States []RowV1 `json:"states"`
}

// LineV1 is one JSONL record: either a row or, last, the summary.
type LineV1 struct {
	Row     *RowV1     `json:"row,omitempty"`
	Summary *SummaryV1 `json:"summary,omitempty"`
}
