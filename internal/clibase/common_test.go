package clibase

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lfsr/internal/config"
)

func newFS(c *Common) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Register(fs, c)
	return fs
}

func TestRegisterDefaults(t *testing.T) {
	var c Common
	fs := newFS(&c)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, 100, c.Cap)
	assert.Equal(t, "text", c.Output)
	assert.False(t, c.Huge)
	assert.NoError(t, Validate(&c))
}

func TestApplyConfigKeepsExplicitFlags(t *testing.T) {
	var c Common
	fs := newFS(&c)
	require.NoError(t, fs.Parse([]string{"--cap", "5"}))

	cfg := config.Default()
	cfg.Cap = 50
	cfg.Output = "json"
	cfg.Huge = true
	ApplyConfig(fs, &c, cfg)

	assert.Equal(t, 5, c.Cap)
	assert.Equal(t, "json", c.Output)
	assert.True(t, c.Huge)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]Common{
		"output":    {Output: "xml", Cap: 1, LogLevel: "info"},
		"cap":       {Output: "text", Cap: 0, LogLevel: "info"},
		"exit-code": {Output: "text", Cap: 1, InvalidExitCode: 256, LogLevel: "info"},
		"log-level": {Output: "text", Cap: 1, LogLevel: "chatty"},
	}
	for name, c := range cases {
		c := c
		assert.Error(t, Validate(&c), name)
	}
}

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "lfsr", func(w io.Writer) { _, _ = w.Write([]byte("body\n")) })
	assert.True(t, strings.HasPrefix(b.String(), "lfsr — quickstart"))
	assert.Contains(t, b.String(), "body")
	assert.Contains(t, b.String(), "--help")
}
