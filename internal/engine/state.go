// internal/engine/state.go
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// State is an immutable snapshot of the register, most-significant bit first.
// The zero value is an empty (width 0) register.
type State struct {
	bits string // '0'/'1' bytes
}

// ParseState builds a State from a 0/1 string. Any other byte is an error.
func ParseState(s string) (State, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return State{}, fmt.Errorf("invalid bit %q at %d", s[i], i+1)
		}
	}
	return State{bits: s}, nil
}

// MustState is ParseState for literals; it panics on bad input.
func MustState(s string) State {
	st, err := ParseState(s)
	if err != nil {
		panic(err)
	}
	return st
}

// StateFromBits copies b (each element 0 or 1) into a State.
func StateFromBits(b []uint8) State {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, v := range b {
		switch v {
		case 0:
			sb.WriteByte('0')
		case 1:
			sb.WriteByte('1')
		default:
			panic(fmt.Sprintf("engine: bit %d has value %d", i, v))
		}
	}
	return State{bits: sb.String()}
}

func (s State) Len() int { return len(s.bits) }

// Bit returns bit i (0 = most significant). Out-of-range indices panic.
func (s State) Bit(i int) uint8 { return s.bits[i] - '0' }

// Low is the lowest-order bit, the one shifted out by the next Step.
func (s State) Low() uint8 { return s.Bit(len(s.bits) - 1) }

// Bits returns a fresh copy of the register contents.
func (s State) Bits() []uint8 {
	out := make([]uint8, len(s.bits))
	for i := range out {
		out[i] = s.Bit(i)
	}
	return out
}

func (s State) Equal(o State) bool { return s.bits == o.bits }

func (s State) String() string { return s.bits }

// TapSet is the set of register positions XORed into the feedback bit.
type TapSet struct {
	idx []int // ascending, unique
}

// NewTapSet collapses duplicates. Negative indices panic; range against the
// register width is the resolver's job.
func NewTapSet(idx ...int) TapSet {
	seen := make(map[int]bool, len(idx))
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i < 0 {
			panic(fmt.Sprintf("engine: negative tap index %d", i))
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return TapSet{idx: out}
}

// Indices returns the taps in ascending order.
func (t TapSet) Indices() []int { return append([]int(nil), t.idx...) }

func (t TapSet) Len() int { return len(t.idx) }

// Width is the register width implied by the taps: highest index + 1.
func (t TapSet) Width() int {
	if len(t.idx) == 0 {
		return 0
	}
	return t.idx[len(t.idx)-1] + 1
}

func (t TapSet) Has(i int) bool {
	j := sort.SearchInts(t.idx, i)
	return j < len(t.idx) && t.idx[j] == i
}

// Invertible reports whether Step is a bijection on registers of width n,
// which holds exactly when the bit shifted out (n-1) is tapped.
func (t TapSet) Invertible(n int) bool { return n > 0 && t.Has(n-1) }
