package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "database path and session hours",
			args: []string{"cmd", "-d", "/tmp/fin.db", "-s", "48"},
			expected: &Config{
				DatabasePath:    "/tmp/fin.db",
				SessionValidity: 48 * time.Hour,
			},
		},
		{
			name:        "incorrect session validity",
			args:        []string{"cmd", "-s", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
