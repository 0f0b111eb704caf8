// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"lfsr/internal/config"
	"lfsr/internal/output"
)

// Common holds the flags that are not about the register itself.
type Common struct {
	// Run
	Huge bool
	Cap  int

	// Output
	Output          string // text|json|jsonl
	InvalidExitCode int

	// Misc
	ConfigPath string
	Quiet      bool
	Verbose    bool
	LogLevel   string
	Examples   bool
}

// Register wires shared flags onto fs. Defaults come from config.Default so
// help output and the config file agree.
func Register(fs *pflag.FlagSet, c *Common) {
	d := config.Default()

	// Run
	fs.BoolVar(&c.Huge, "huge", d.Huge, "disable the output cap and print the whole cycle")
	fs.IntVar(&c.Cap, "cap", d.Cap, "stop once the step counter exceeds N (ignored with --huge)")

	// Output
	fs.StringVarP(&c.Output, "output", "o", d.Output, "output: text | json | jsonl")
	fs.IntVar(&c.InvalidExitCode, "invalid-exit-code", d.InvalidExitCode, "exit code when the polynomial or start value is rejected")

	// Misc
	fs.StringVarP(&c.ConfigPath, "config", "c", "", "YAML file with defaults (or $"+config.EnvPath+")")
	fs.BoolVarP(&c.Quiet, "quiet", "q", d.Quiet, "suppress non-essential warnings")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging to stderr")
	fs.StringVar(&c.LogLevel, "log-level", d.LogLevel, "log level: debug | info | warn | error")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit")
}

// ApplyConfig copies cfg values into every flag the user did not set.
func ApplyConfig(fs *pflag.FlagSet, c *Common, cfg *config.Config) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f == nil || !f.Changed {
			apply()
		}
	}
	set("huge", func() { c.Huge = cfg.Huge })
	set("cap", func() { c.Cap = cfg.Cap })
	set("output", func() { c.Output = cfg.Output })
	set("invalid-exit-code", func() { c.InvalidExitCode = cfg.InvalidExitCode })
	set("quiet", func() { c.Quiet = cfg.Quiet })
	set("log-level", func() { c.LogLevel = cfg.LogLevel })
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	valid := false
	for _, f := range output.Formats {
		if c.Output == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Cap < 1 {
		return errors.New("--cap must be ≥ 1")
	}
	if c.InvalidExitCode < 0 || c.InvalidExitCode > 255 {
		return errors.New("--invalid-exit-code must be between 0 and 255")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	return nil
}
