package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateRejectsNonBits(t *testing.T) {
	_, err := ParseState("10a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at 3")

	_, err = ParseState("1021")
	require.Error(t, err)
}

func TestStateAccessors(t *testing.T) {
	s := MustState("1011")
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, uint8(1), s.Bit(0))
	assert.Equal(t, uint8(0), s.Bit(1))
	assert.Equal(t, uint8(1), s.Low())
	assert.Equal(t, []uint8{1, 0, 1, 1}, s.Bits())
	assert.True(t, s.Equal(StateFromBits([]uint8{1, 0, 1, 1})))
}

func TestBitsReturnsCopy(t *testing.T) {
	s := MustState("10")
	b := s.Bits()
	b[0] = 0
	assert.Equal(t, "10", s.String())
}

func TestTapSetCollapsesDuplicates(t *testing.T) {
	ts := NewTapSet(0, 3, 1, 0, 3)
	assert.Equal(t, []int{0, 1, 3}, ts.Indices())
	assert.Equal(t, 3, ts.Len())
	assert.Equal(t, 4, ts.Width())
	assert.True(t, ts.Has(1))
	assert.False(t, ts.Has(2))
}

func TestTapSetInvertible(t *testing.T) {
	assert.True(t, NewTapSet(3, 0).Invertible(4))
	assert.False(t, NewTapSet(0).Invertible(2))
	assert.False(t, NewTapSet().Invertible(0))
}

func TestNewTapSetPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { NewTapSet(-1) })
}
