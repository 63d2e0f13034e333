package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/classify"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/config"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/feed"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/ingestion"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/observability"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the feed once and append new tech postings to the dataset",
	Long:  "Fetch the configured RSS feed, classify entries into tech domains, and append accepted postings to the CSV dataset with URL dedup. Exits non-zero on fetch, parse, or schema failure.",
	RunE:  runCollect,
}

var (
	collectFeedURL string
	collectOut     string
)

func init() {
	collectCmd.Flags().StringVar(&collectFeedURL, "feed-url", "", "Override the feed URL")
	collectCmd.Flags().StringVarP(&collectOut, "out", "o", "", "Override the dataset file location")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if collectFeedURL != "" {
		cfg.FeedURL = collectFeedURL
	}
	if collectOut != "" {
		cfg.DataFile = collectOut
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fetcher := feed.NewFetcher(cfg.FeedURL, cfg.FetchTimeout)
	classifier := classify.New(classify.DefaultTables())
	store := dataset.New(cfg.DataFile)

	report, err := ingestion.Run(context.Background(), fetcher, classifier, store, log)
	if err != nil {
		// A failed run leaves the dataset untouched; the daily schedule
		// provides the retry.
		return err
	}

	observability.NewPrinter(os.Stdout).PrintReport(report)
	return nil
}
