package engine

import "strings"

// DefaultCap is the step counter limit for capped runs. Rows are emitted while
// the counter is ≤ cap, so a capped trace holds at most DefaultCap+1 states.
const DefaultCap = 100

// Outcome says why a run stopped.
type Outcome int

const (
	// Closed: the next state equals the initial state.
	Closed Outcome = iota
	// Truncated: the emission cap was hit before the walk returned.
	Truncated
	// Diverged: the walk re-entered an earlier state that is not the initial one,
	// so it can never return to the start.
	Diverged
)

func (o Outcome) String() string {
	switch o {
	case Closed:
		return "closed"
	case Truncated:
		return "truncated"
	case Diverged:
		return "diverged"
	}
	return "unknown"
}

// Options for Run. Cap ≤ 0 means DefaultCap; it is ignored when Unlimited.
type Options struct {
	Unlimited bool
	Cap       int
}

func (o Options) limit() int {
	if o.Cap <= 0 {
		return DefaultCap
	}
	return o.Cap
}

// Trace is the result of one run.
type Trace struct {
	Taps    TapSet
	Initial State
	States  []State // emitted rows, States[0] == Initial
	Outcome Outcome

	// For Closed, CycleStart is 0 and CycleLen is len(States).
	// For Diverged, States[CycleStart:] is the loop the walk fell into.
	// For Truncated both are unknown (-1, 0).
	CycleStart int
	CycleLen   int
}

// Width of the simulated register.
func (t Trace) Width() int { return t.Initial.Len() }

// Feedback is the parity of the tapped bits of s.
func Feedback(taps TapSet, s State) uint8 {
	var fb uint8
	for _, i := range taps.idx {
		fb ^= s.Bit(i)
	}
	return fb
}

// Step shifts s one place towards the low end, drops the lowest bit and inserts
// the feedback bit at position 0. s is not modified.
func Step(taps TapSet, s State) State {
	n := s.Len()
	if n == 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte('0' + Feedback(taps, s))
	sb.WriteString(s.bits[:n-1])
	return State{bits: sb.String()}
}

// Run walks the register from initial until the next state is the initial one,
// an earlier state recurs, or (unless opt.Unlimited) the cap is exceeded.
//
// Taps outside [0, initial.Len()-1] are a caller bug and panic.
func Run(taps TapSet, initial State, opt Options) Trace {
	tr := Trace{Taps: taps, Initial: initial, CycleStart: -1}

	// An invertible step always leads back to the start, so only
	// non-invertible tap sets need the visited index.
	var seen map[State]int
	if !taps.Invertible(initial.Len()) {
		seen = make(map[State]int)
	}

	cur := initial
	for ctr := 0; ; ctr++ {
		if !opt.Unlimited && ctr > opt.limit() {
			tr.Outcome = Truncated
			return tr
		}
		if seen != nil {
			seen[cur] = len(tr.States)
		}
		tr.States = append(tr.States, cur)

		next := Step(taps, cur)
		if next.Equal(initial) {
			tr.Outcome = Closed
			tr.CycleStart, tr.CycleLen = 0, len(tr.States)
			return tr
		}
		if at, ok := seen[next]; ok {
			tr.Outcome = Diverged
			tr.CycleStart, tr.CycleLen = at, len(tr.States)-at
			return tr
		}
		cur = next
	}
}
