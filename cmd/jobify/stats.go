package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/config"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/market"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/observability"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate market statistics from the dataset",
	RunE:  runStats,
}

var (
	statsDomain string
	statsTopK   int
)

func init() {
	statsCmd.Flags().StringVarP(&statsDomain, "domain", "d", "", "Restrict statistics to one domain (Frontend, Backend, FullStack, DevOpsCloud, DataScienceML, Mobile, Other)")
	statsCmd.Flags().IntVarP(&statsTopK, "top-k", "k", 0, "Number of entries per frequency table")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := market.Options{TopK: cfg.TopK}
	if statsTopK > 0 {
		opts.TopK = statsTopK
	}
	if statsDomain != "" {
		domain, err := types.ParseDomain(statsDomain)
		if err != nil {
			return err
		}
		opts.Domain = &domain
	}

	postings, err := dataset.New(cfg.DataFile).Load()
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintSnapshot(market.Summarize(postings, opts))
	return nil
}
