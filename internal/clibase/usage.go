// internal/clibase/usage.go
package clibase

import (
	"fmt"

	"lfsr/internal/version"
)

// Header is the banner printed above the flag list.
func Header(name string) string {
	return fmt.Sprintf(`%s – linear feedback shift register tables

Version: %s

Prints every register state from the start value until the register
returns to it. POLYNOMIAL is a sum of x<k> terms ending in +1, e.g. x4+x2+1;
a bare x means x1. The register is as wide as the highest exponent.`, name, version.Version)
}
