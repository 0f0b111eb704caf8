package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}
