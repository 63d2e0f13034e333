package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/advisory"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/config"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/market"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the local advisory model a question about the market",
	Long:  "Summarize the current dataset into a market-context block and forward it with the question to the local text-completion service. Degrades to a notice when the service is disabled or unreachable.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	postings, err := dataset.New(cfg.DataFile).Load()
	if err != nil {
		return err
	}
	snap := market.Summarize(postings, market.Options{TopK: cfg.TopK})

	bridge := advisory.New(advisory.Options{
		Enabled:       cfg.AdvisoryEnabled,
		Endpoint:      cfg.OllamaURL,
		Model:         cfg.OllamaModel,
		Timeout:       cfg.AdvisoryTimeout,
		ContextBudget: cfg.ContextBudget,
	})

	question := strings.Join(args, " ")
	answer, err := bridge.Ask(context.Background(), question, snap)
	if err != nil {
		// Advisory failure is a degraded feature, not a failed command.
		var unavailable *advisory.UnavailableError
		switch {
		case errors.Is(err, advisory.ErrDisabled):
			fmt.Fprintln(os.Stdout, "Advisory is disabled in this deployment.")
			return nil
		case errors.As(err, &unavailable):
			fmt.Fprintln(os.Stdout, "Advisory service is not reachable; is the local model running?")
			return nil
		}
		return err
	}

	fmt.Fprintln(os.Stdout, answer)
	return nil
}
