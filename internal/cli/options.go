// internal/cli/options.go
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lfsr/internal/clibase"
	"lfsr/internal/config"
	"lfsr/internal/poly"
	"lfsr/internal/version"
)

// Options holds all CLI flags and arguments for one run.
type Options struct {
	clibase.Common

	Polynomial string
	Start      string
	HasStart   bool // --start given, even if empty
}

// Request is the resolver input described by o.
func (o Options) Request() poly.Request {
	return poly.Request{Polynomial: o.Polynomial, Seed: o.Start, HasSeed: o.HasStart}
}

// NewCommand returns the root command. run receives finalized options; flag
// and config errors never reach it.
func NewCommand(name string, run func(cmd *cobra.Command, o Options) error) *cobra.Command {
	var o Options
	cmd := &cobra.Command{
		Use:     name + " [flags] POLYNOMIAL",
		Short:   "Print the state table of a linear feedback shift register",
		Long:    clibase.Header(name),
		Example: examples(name),
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.Examples {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := Finalize(cmd.Flags(), &o, args, os.Getenv); err != nil {
				return err
			}
			return run(cmd, o)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&o.Start, "start", "s", "", "initial register value, MSB first (default 0…01)")
	clibase.Register(fs, &o.Common)
	return cmd
}

// Finalize fills positionals, overlays the config file on unset flags and
// validates. It returns clibase.ErrPrintedAndExitOK when --examples was given.
func Finalize(fs *pflag.FlagSet, o *Options, args []string, getenv func(string) string) error {
	if o.Examples {
		return clibase.ErrPrintedAndExitOK
	}
	o.HasStart = fs.Changed("start")
	if len(args) > 0 {
		o.Polynomial = args[0]
	}

	path := o.ConfigPath
	if path == "" && getenv != nil {
		path = getenv(config.EnvPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	clibase.ApplyConfig(fs, &o.Common, cfg)
	return clibase.Validate(&o.Common)
}

func examples(name string) string {
	return "  " + name + " x4+x2+1\n" +
		"  " + name + " --start 1010 x4+x3+1\n" +
		"  " + name + " --huge --output jsonl x16+x14+x13+x11+1"
}
