// internal/output/rows.go
package output

import (
	"strings"

	"lfsr/internal/engine"
)

func bitsCell(width int) int {
	if width < 1 {
		return 1
	}
	return 2*width - 1
}

// Border is the top/bottom line of the table for a register of the given width.
func Border(width int) string {
	return "+" + strings.Repeat("-", bitsCell(width)) + "+---+"
}

// Filler is a blank row marking a truncated table.
func Filler(width int) string {
	return strings.ReplaceAll(Border(width), "-", " ")
}

// FormatRow renders "|b0 b1 … bn-1| out |" (no trailing newline).
func FormatRow(s engine.State) string {
	var sb strings.Builder
	sb.Grow(2*s.Len() + 6)
	sb.WriteByte('|')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + s.Bit(i))
	}
	sb.WriteString("| ")
	if s.Len() > 0 {
		sb.WriteByte('0' + s.Low())
	} else {
		sb.WriteByte(' ')
	}
	sb.WriteString(" |")
	return sb.String()
}
