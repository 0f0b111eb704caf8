package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lfsr/internal/engine"
	"lfsr/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	tr := engine.Run(engine.NewTapSet(1, 0), engine.MustState("01"), engine.Options{})
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, tr))

	var got api.TraceV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "closed", got.Outcome)
	assert.Equal(t, 2, got.Width)
	assert.Equal(t, []int{0, 1}, got.Taps)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, 3, got.CycleLen)
	require.Len(t, got.States, 3)
	assert.Equal(t, api.RowV1{Index: 1, State: "10", Out: 0}, got.States[1])
}

func TestWriteJSONTruncatedOmitsCycle(t *testing.T) {
	tr := engine.Run(engine.NewTapSet(2, 0), engine.MustState("001"), engine.Options{Cap: 1})
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, tr))
	assert.Contains(t, b.String(), `"outcome": "truncated"`)
	assert.NotContains(t, b.String(), "cycle_len")
}

func TestWriteJSONL(t *testing.T) {
	tr := engine.Run(engine.NewTapSet(2, 0), engine.MustState("001"), engine.Options{})
	var b bytes.Buffer
	require.NoError(t, WriteJSONL(&b, tr))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, len(tr.States)+1)

	var first api.LineV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NotNil(t, first.Row)
	assert.Nil(t, first.Summary)
	assert.Equal(t, "001", first.Row.State)
	assert.Equal(t, 1, first.Row.Out)

	var last api.LineV1
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	require.NotNil(t, last.Summary)
	assert.Equal(t, "closed", last.Summary.Outcome)
	assert.Equal(t, 7, last.Summary.Rows)
}
