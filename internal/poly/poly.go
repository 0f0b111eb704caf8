// Package poly resolves a polynomial expression and an optional seed into a
// tap set and an initial register state for the engine.
package poly

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"lfsr/internal/engine"
)

var (
	// ErrInvalidPolynomial is returned for expressions outside (x<k>+)*1.
	ErrInvalidPolynomial = errors.New("invalid polynomial")
	// ErrBadSeed is returned when the seed is empty or holds anything but 0/1.
	ErrBadSeed = errors.New("cannot parse starting register value")
)

// MaxWidth bounds the register width so a typo like x99999999 cannot
// allocate gigabytes.
const MaxWidth = 1 << 16

// LengthError reports a seed whose length differs from the register width.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("bad length for initial register value: %d!=%d", e.Got, e.Want)
}

var (
	validPoly = regexp.MustCompile(`^(x([1-9][0-9]*)?\+)*1$`)
	termPoly  = regexp.MustCompile(`x([0-9]*)\+`)
)

// ParsePolynomial turns e.g. "x4+x2+1" into the taps {3,1,0}. Each x<k> term
// taps position k-1 (bare x means k=1) and the constant term taps position 0.
func ParsePolynomial(expr string) (engine.TapSet, error) {
	if !validPoly.MatchString(expr) {
		return engine.TapSet{}, fmt.Errorf("%w %q", ErrInvalidPolynomial, expr)
	}
	idx := []int{0}
	for _, m := range termPoly.FindAllStringSubmatch(expr, -1) {
		k := 1
		if m[1] != "" {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return engine.TapSet{}, fmt.Errorf("%w %q: %v", ErrInvalidPolynomial, expr, err)
			}
			k = v
		}
		if k > MaxWidth {
			return engine.TapSet{}, fmt.Errorf("%w %q: x%d exceeds max width %d", ErrInvalidPolynomial, expr, k, MaxWidth)
		}
		idx = append(idx, k-1)
	}
	return engine.NewTapSet(idx...), nil
}

// DefaultSeed is 0…01: a single 1 in the lowest-order position.
func DefaultSeed(width int) engine.State {
	b := make([]uint8, width)
	if width > 0 {
		b[width-1] = 1
	}
	return engine.StateFromBits(b)
}

// ParseSeed validates a 0/1 string of exactly width characters.
func ParseSeed(seed string, width int) (engine.State, error) {
	if seed == "" {
		return engine.State{}, ErrBadSeed
	}
	st, err := engine.ParseState(seed)
	if err != nil {
		return engine.State{}, fmt.Errorf("%w: %v", ErrBadSeed, err)
	}
	if st.Len() != width {
		return engine.State{}, &LengthError{Got: st.Len(), Want: width}
	}
	return st, nil
}

// Request is the raw user input.
type Request struct {
	Polynomial string
	Seed       string
	HasSeed    bool
}

// Resolved is validated engine input.
type Resolved struct {
	Taps    engine.TapSet
	Initial engine.State
}

// Width of the resolved register.
func (r Resolved) Width() int { return r.Initial.Len() }

// Resolve validates req; on success the engine can run without further checks.
func Resolve(req Request) (Resolved, error) {
	taps, err := ParsePolynomial(req.Polynomial)
	if err != nil {
		return Resolved{}, err
	}
	width := taps.Width()
	if !req.HasSeed {
		return Resolved{Taps: taps, Initial: DefaultSeed(width)}, nil
	}
	st, err := ParseSeed(req.Seed, width)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Taps: taps, Initial: st}, nil
}
