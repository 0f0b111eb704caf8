// internal/output/json.go
package output

import (
	"io"

	"lfsr/internal/engine"
	"lfsr/internal/jsonutil"
	"lfsr/pkg/api"
)

// ToAPISummary converts a Trace to the stable summary schema (v1).
func ToAPISummary(tr engine.Trace) api.SummaryV1 {
	v := api.SummaryV1{
		Width:   tr.Width(),
		Taps:    tr.Taps.Indices(),
		Initial: tr.Initial.String(),
		Outcome: tr.Outcome.String(),
		Rows:    len(tr.States),
	}
	if tr.Outcome != engine.Truncated {
		v.CycleStart = tr.CycleStart
		v.CycleLen = tr.CycleLen
	}
	return v
}

func toAPIRows(tr engine.Trace) []api.RowV1 {
	out := make([]api.RowV1, 0, len(tr.States))
	for i, s := range tr.States {
		out = append(out, api.RowV1{Index: i, State: s.String(), Out: int(s.Low())})
	}
	return out
}

// ToAPITrace converts a Trace to the stable wire schema (v1).
func ToAPITrace(tr engine.Trace) api.TraceV1 {
	return api.TraceV1{SummaryV1: ToAPISummary(tr), States: toAPIRows(tr)}
}

// WriteJSON writes the whole trace as one indented JSON object.
func WriteJSON(w io.Writer, tr engine.Trace) error {
	return jsonutil.EncodePretty(w, ToAPITrace(tr))
}

// WriteJSONL writes one line per row followed by a summary line.
func WriteJSONL(w io.Writer, tr engine.Trace) error {
	rows := toAPIRows(tr)
	lines := make([]api.LineV1, 0, len(rows)+1)
	for i := range rows {
		lines = append(lines, api.LineV1{Row: &rows[i]})
	}
	sum := ToAPISummary(tr)
	lines = append(lines, api.LineV1{Summary: &sum})
	return jsonutil.EncodeLines(w, lines)
}
