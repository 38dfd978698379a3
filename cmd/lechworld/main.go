package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lechworld/internal/cli"
	"github.com/dmitrijs2005/lechworld/internal/config"
	"github.com/dmitrijs2005/lechworld/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
