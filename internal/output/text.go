// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"lfsr/internal/engine"
)

// TruncatedFillers is how many blank rows mark a capped table.
const TruncatedFillers = 3

// WriteText prints the bordered table: one row per state, blank filler rows
// when the run was truncated, then the closing border.
func WriteText(w io.Writer, tr engine.Trace) error {
	bw := bufio.NewWriter(w)
	width := tr.Width()
	border := Border(width)

	lines := make([]string, 0, len(tr.States)+TruncatedFillers+2)
	lines = append(lines, border)
	for _, s := range tr.States {
		lines = append(lines, FormatRow(s))
	}
	if tr.Outcome == engine.Truncated {
		fill := Filler(width)
		for i := 0; i < TruncatedFillers; i++ {
			lines = append(lines, fill)
		}
	}
	lines = append(lines, border)

	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
