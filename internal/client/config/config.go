package config

import "time"

// Config holds runtime settings for the memopad CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the memo service, e.g.
//     "https://memo.example.com". Empty means no endpoint is configured and
//     the client runs in fixture mode.
//   - SnapshotDBPath: path of the local sqlite database holding the
//     persisted session snapshot.
//   - RequestTimeout: per-request transport timeout for the HTTP gateway.
//   - FixtureLatency: simulated round-trip latency in fixture mode.
type Config struct {
	ServerEndpointAddr string
	SnapshotDBPath     string
	RequestTimeout     time.Duration
	FixtureLatency     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = ""
	c.SnapshotDBPath = "memopad.db"
	c.RequestTimeout = 10 * time.Second
	c.FixtureLatency = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// FixtureMode reports whether the client should run against the in-process
// fixture dataset instead of a remote endpoint.
func (c *Config) FixtureMode() bool {
	return c.ServerEndpointAddr == ""
}
