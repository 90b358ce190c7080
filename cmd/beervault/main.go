package main

import (
	"context"
	"log"
	"os"

	"beervault/internal/buildinfo"
	"beervault/internal/cli"
	"beervault/internal/config"
	"beervault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
