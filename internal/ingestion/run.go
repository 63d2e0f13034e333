// Package ingestion orchestrates one collect run: fetch the feed, classify
// each entry, and append the accepted postings to the dataset.
package ingestion

import (
	"context"

	"go.uber.org/zap"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// Fetcher yields the raw entries of one feed pull.
type Fetcher interface {
	Fetch(ctx context.Context) ([]types.RawEntry, error)
}

// Classifier turns a raw entry into a posting, or rejects it.
type Classifier interface {
	Classify(entry types.RawEntry) (types.Posting, bool)
}

// Store persists postings with dedup-on-write.
type Store interface {
	Append(postings []types.Posting) (written, skipped int, err error)
}

// Report summarizes one run's outcome.
type Report struct {
	Fetched  int
	Accepted int
	Rejected int
	Written  int
	Skipped  int
}

// Run executes one synchronous ingestion pass. A fetch or parse failure
// aborts the run before anything touches the dataset — a malformed feed is
// never partially ingested. Re-running against an unchanged feed writes
// nothing: dedup happens in the store.
func Run(ctx context.Context, fetcher Fetcher, classifier Classifier, store Store, log *zap.SugaredLogger) (Report, error) {
	entries, err := fetcher.Fetch(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{Fetched: len(entries)}
	accepted := make([]types.Posting, 0, len(entries))
	for _, entry := range entries {
		posting, ok := classifier.Classify(entry)
		if !ok {
			report.Rejected++
			continue
		}
		accepted = append(accepted, posting)
	}
	report.Accepted = len(accepted)

	written, skipped, err := store.Append(accepted)
	if err != nil {
		return report, err
	}
	report.Written = written
	report.Skipped = skipped

	log.Infow("collect run finished",
		"fetched", report.Fetched,
		"accepted", report.Accepted,
		"rejected", report.Rejected,
		"written", report.Written,
		"skipped", report.Skipped,
	)
	return report, nil
}
