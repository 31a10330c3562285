package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		paths := []string{"suite.hcl"}
		cfg, err := NewConfig(Config{OutputPath: "out.csv", SuitePaths: paths, LogLevel: "warn", LogFormat: "json"})
		require.NoError(t, err)
		paths[0] = "mutated"
		assert.Equal(t, []string{"suite.hcl"}, cfg.SuitePaths)
	})

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing output", Config{}, "OutputPath"},
		{"negative retries", Config{OutputPath: "o", MaxRetries: -1}, "MaxRetries"},
		{"bad format", Config{OutputPath: "o", LogFormat: "xml"}, "log format"},
		{"bad level", Config{OutputPath: "o", LogLevel: "trace"}, "log level"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
