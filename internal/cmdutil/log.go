// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a user-facing warning unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Exitf prints "<message>. Exiting" the way rejected input is reported.
func Exitf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, format+". Exiting\n", a...)
}
