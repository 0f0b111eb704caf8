// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"lfsr/internal/engine"
)

// TraceWriterFunc renders one trace to w.
type TraceWriterFunc func(w io.Writer, tr engine.Trace) error

// TraceWriters maps an --output format to its handler.
// Register in init() blocks; last registration wins.
var TraceWriters = map[string]TraceWriterFunc{}

func RegisterTrace(format string, fn TraceWriterFunc) { TraceWriters[format] = fn }

// Registered returns the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(TraceWriters))
	for k := range TraceWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteTrace dispatches to the writer registered for format.
func WriteTrace(format string, w io.Writer, tr engine.Trace) error {
	fn, ok := TraceWriters[format]
	if !ok {
		return fmt.Errorf("unknown trace format %q (no writer registered)", format)
	}
	return fn(w, tr)
}
