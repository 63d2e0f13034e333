package main

import (
	"github.com/spf13/cobra"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/advisory"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/config"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the market statistics JSON API",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bridge := advisory.New(advisory.Options{
		Enabled:       cfg.AdvisoryEnabled,
		Endpoint:      cfg.OllamaURL,
		Model:         cfg.OllamaModel,
		Timeout:       cfg.AdvisoryTimeout,
		ContextBudget: cfg.ContextBudget,
	})

	srv := server.New(
		server.Config{Port: cfg.Port, TopK: cfg.TopK},
		dataset.New(cfg.DataFile),
		bridge,
		log,
	)
	return srv.Run()
}
