// Package config loads runtime configuration for the memopad CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the memo service (empty = fixture mode)
//	-d string   path of the local snapshot database
//	-t int      request timeout (seconds)
//	-l int      fixture latency (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "https://memo.example.com",
//	  "snapshot_db_path": "memopad.db",
//	  "request_timeout": "10s",
//	  "fixture_latency": "300ms"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
