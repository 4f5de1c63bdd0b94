package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/mycontacts/internal/buildinfo"
	"github.com/dmitrijs2005/mycontacts/internal/cli"
	"github.com/dmitrijs2005/mycontacts/internal/config"
	"github.com/dmitrijs2005/mycontacts/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
