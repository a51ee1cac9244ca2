package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/memopad/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the memo service (empty = fixture mode)
//	-d string   path of the local snapshot database
//	-t int      request timeout in seconds
//	-l int      fixture latency in milliseconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the memo service")
	fs.StringVar(&cfg.SnapshotDBPath, "d", cfg.SnapshotDBPath, "path of the local snapshot database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fixtureLatency := fs.Int("l", int(cfg.FixtureLatency.Milliseconds()), "fixture latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.FixtureLatency = time.Duration(*fixtureLatency) * time.Millisecond
}
