package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lfsr.yaml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))
	return p
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100, cfg.Cap)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 0, cfg.InvalidExitCode)
}

func TestLoadOverlaysFile(t *testing.T) {
	p := write(t, "output: jsonl\ncap: 7\nquiet: true\ninvalid_exit_code: 2\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "jsonl", cfg.Output)
	assert.Equal(t, 7, cfg.Cap)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.Huge)
	assert.Equal(t, 2, cfg.InvalidExitCode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(write(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(write(t, "outptu: json\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"output: xml\n",
		"cap: 0\n",
		"invalid_exit_code: 300\n",
		"log_level: chatty\n",
	} {
		_, err := Load(write(t, body))
		assert.Error(t, err, body)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")
	want := Default()
	want.Output = "json"
	want.Huge = true
	require.NoError(t, want.Save(p))

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
