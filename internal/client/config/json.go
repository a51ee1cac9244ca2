package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/memopad/internal/flagx"
	"github.com/dmitrijs2005/memopad/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify durations either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	SnapshotDBPath     string         `json:"snapshot_db_path"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	FixtureLatency     timex.Duration `json:"fixture_latency"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags (flagx.JsonConfigFlags); when no
// path is given the function is a no-op. Read or unmarshal errors panic so
// a broken config file stops startup.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.SnapshotDBPath != "" {
		cfg.SnapshotDBPath = jc.SnapshotDBPath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FixtureLatency.Duration > 0 {
		cfg.FixtureLatency = jc.FixtureLatency.Duration
	}
}
