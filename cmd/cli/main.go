package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/memopad/internal/client/cli"
	"github.com/dmitrijs2005/memopad/internal/client/config"
	"github.com/dmitrijs2005/memopad/internal/logging"
	"go.uber.org/zap"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.NewZapLogger(zl))
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
