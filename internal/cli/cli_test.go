package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OutputPathOnly(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"results.csv"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "results.csv", cfg.OutputPath)
	assert.False(t, cfg.TestMode)
	assert.Empty(t, cfg.SuitePaths)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.True(t, cfg.Color)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_TestModeAfterPath(t *testing.T) {
	cfg, _, err := Parse([]string{"results.csv", "-t"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "results.csv", cfg.OutputPath)
	assert.True(t, cfg.TestMode)
}

func TestParse_InterspersedFlags(t *testing.T) {
	args := []string{
		"-suite", "a.hcl", "-log-level", "DEBUG",
		"out.csv",
		"-suite", "dir/", "-max-retries", "3", "-quiet", "-no-color", "-log-format", "json",
	}

	cfg, _, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "out.csv", cfg.OutputPath)
	assert.Equal(t, []string{"a.hcl", "dir/"}, cfg.SuitePaths)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.Color)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing output path", nil, "missing output file path"},
		{"only flags", []string{"-t"}, "missing output file path"},
		{"extra positional", []string{"a.csv", "b.csv"}, "unexpected arguments: b.csv"},
		{"unknown flag", []string{"--nope", "a.csv"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"-log-format", "xml", "a.csv"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "trace", "a.csv"}, "invalid log-level"},
		{"negative retries", []string{"-max-retries", "-1", "a.csv"}, "MaxRetries"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
