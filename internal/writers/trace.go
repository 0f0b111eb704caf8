package writers

import "lfsr/internal/output"

func init() {
	RegisterTrace(output.FormatText, output.WriteText)
	RegisterTrace(output.FormatJSON, output.WriteJSON)
	RegisterTrace(output.FormatJSONL, output.WriteJSONL)
}
