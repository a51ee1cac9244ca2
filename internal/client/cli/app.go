// Package cli hosts the line-oriented presentation layer: a REPL that
// renders store state and turns user input into store actions.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/memopad/internal/client/config"
	"github.com/dmitrijs2005/memopad/internal/client/gateway"
	"github.com/dmitrijs2005/memopad/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/memopad/internal/client/stores"
	"github.com/dmitrijs2005/memopad/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the composition root: it owns the snapshot database, the gateway
// (HTTP or fixture, depending on config), and both stores, and passes them
// explicitly to the REPL handlers.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *stores.SessionStore
	memos   *stores.MemoStore
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := snapshot.InitDatabase(ctx, cfg.SnapshotDBPath)
	if err != nil {
		log.Error(ctx, "initializing snapshot database", "error", err)
		return nil, err
	}

	var gw gateway.Gateway
	if cfg.FixtureMode() {
		log.Info(ctx, "no endpoint configured, running in fixture mode")
		gw = gateway.NewFixtureGateway(cfg.FixtureLatency, log)
	} else {
		repo := snapshot.NewSQLiteRepository(db)
		gw = gateway.NewHTTPGateway(cfg.ServerEndpointAddr, cfg.RequestTimeout, snapshot.NewTokenSource(repo), log)
	}

	return &App{
		config:  cfg,
		db:      db,
		session: stores.NewSessionStore(gw, db, log),
		memos:   stores.NewMemoStore(gw, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}
