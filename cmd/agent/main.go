package main

import (
	"context"
	"log"
	"os"

	"github.com/taxfree-rdc/customs-agent/internal/agent/cli"
	"github.com/taxfree-rdc/customs-agent/internal/agent/config"
	"github.com/taxfree-rdc/customs-agent/internal/buildinfo"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
