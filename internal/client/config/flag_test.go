package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://memo.example.com", "-d", "other.db", "-t", "5", "-l", "50"},
			expected: Config{
				ServerEndpointAddr: "https://memo.example.com",
				SnapshotDBPath:     "other.db",
				RequestTimeout:     5 * time.Second,
				FixtureLatency:     50 * time.Millisecond,
			},
		},
		{
			name: "defaults survive unrelated args",
			args: []string{"cmd", "-x", "junk"},
			expected: func() Config {
				var c Config
				c.LoadDefaults()
				return c
			}(),
		},
		{
			name:        "invalid timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, *config)
		})
	}
}
