package main

import (
	"fmt"

	"github.com/rafaelssenna/sol-client/internal/adapter"
	"github.com/rafaelssenna/sol-client/internal/client"
	"github.com/rafaelssenna/sol-client/internal/config"
	"github.com/rafaelssenna/sol-client/internal/credentials"
	"github.com/rafaelssenna/sol-client/internal/logger"
	"github.com/rafaelssenna/sol-client/internal/session"
	"github.com/rafaelssenna/sol-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sol-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	creds := credentials.NewFileStore(cfg.Session.CredentialFile)

	api, err := adapter.New(cfg.API, cfg.Uploads, creds, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	sess := session.NewManager(api, creds, log)
	ui := tui.New(api, sess, *cfg, log)

	app := client.NewApp(sess, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
