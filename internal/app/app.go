// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lfsr/internal/cli"
	"lfsr/internal/clibase"
	"lfsr/internal/cmdutil"
	"lfsr/internal/engine"
	"lfsr/internal/logging"
	"lfsr/internal/poly"
	"lfsr/internal/writers"
)

// Name is the command name shown in help and version output.
const Name = "lfsr"

// Exit codes. Rejected input exits with --invalid-exit-code (0 by default).
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// exitError carries an exit code out of the cobra RunE. Its message has
// already been reported by the time it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	cmd := cli.NewCommand(Name, func(_ *cobra.Command, o cli.Options) error {
		return run(o, outw, stderr)
	})
	cmd.SetOut(outw)
	cmd.SetErr(stderr)
	cmd.SetArgs(argv)

	if len(argv) == 0 {
		_ = cmd.Help()
		return flush(outw, stderr, ExitOK)
	}

	err := cmd.ExecuteContext(parent)
	var ee *exitError
	switch {
	case err == nil:
		return flush(outw, stderr, ExitOK)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		printExamples(outw)
		return flush(outw, stderr, ExitOK)
	case errors.As(err, &ee):
		return flush(outw, stderr, ee.code)
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", Name)
		return flush(outw, stderr, ExitUsage)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}

func run(o cli.Options, out, stderr io.Writer) error {
	log, err := logging.New(stderr, o.LogLevel, o.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := poly.Resolve(o.Request())
	if err != nil {
		log.Debug("input rejected", zap.String("polynomial", o.Polynomial), zap.Error(err))
		reportRejected(stderr, err)
		return &exitError{code: o.InvalidExitCode, err: err}
	}
	log.Debug("resolved",
		zap.String("polynomial", o.Polynomial),
		zap.Int("width", res.Width()),
		zap.Ints("taps", res.Taps.Indices()),
		zap.Stringer("initial", res.Initial),
	)

	tr := engine.Run(res.Taps, res.Initial, engine.Options{Unlimited: o.Huge, Cap: o.Cap})
	log.Debug("run finished",
		zap.Stringer("outcome", tr.Outcome),
		zap.Int("rows", len(tr.States)),
		zap.Int("cycle_len", tr.CycleLen),
	)

	switch tr.Outcome {
	case engine.Truncated:
		log.Debug("output capped; pass --huge for the full cycle", zap.Int("cap", o.Cap))
	case engine.Diverged:
		cmdutil.Warnf(stderr, o.Quiet,
			"register never returns to %s; it loops over %d state(s) starting at row %d",
			res.Initial, tr.CycleLen, tr.CycleStart)
	}

	if err := writers.WriteTrace(o.Output, out, tr); err != nil {
		if writers.IsBrokenPipe(err) {
			return &exitError{code: ExitOK, err: err}
		}
		_, _ = fmt.Fprintln(stderr, err)
		return &exitError{code: ExitIO, err: err}
	}
	return nil
}

// reportRejected prints the diagnostic for input the resolver refused.
func reportRejected(w io.Writer, err error) {
	var le *poly.LengthError
	switch {
	case errors.As(err, &le):
		cmdutil.Exitf(w, "Bad length for initial register value. %d!=%d", le.Got, le.Want)
	case errors.Is(err, poly.ErrBadSeed):
		cmdutil.Exitf(w, "Cannot parse starting register value")
	case errors.Is(err, poly.ErrInvalidPolynomial):
		cmdutil.Exitf(w, "Invalid polynomial")
	default:
		_, _ = fmt.Fprintln(w, err)
	}
}

func printExamples(out io.Writer) {
	clibase.PrintExamples(out, Name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Print every state of x^4+x^2+1 from the default start 0001:")
		_, _ = fmt.Fprintf(w, "  %s x4+x2+1\n", Name)
		_, _ = fmt.Fprintln(w, "\nStart from an explicit register value (MSB first):")
		_, _ = fmt.Fprintf(w, "  %s --start 1010 x4+x3+1\n", Name)
		_, _ = fmt.Fprintln(w, "\nLong cycles are capped; --huge prints all of them:")
		_, _ = fmt.Fprintf(w, "  %s --huge x16+1\n", Name)
		_, _ = fmt.Fprintln(w, "\nMachine-readable output, one JSON object per row:")
		_, _ = fmt.Fprintf(w, "  %s --output jsonl x5+x3+1\n", Name)
	})
}
