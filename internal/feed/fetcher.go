// Package feed retrieves the remote-jobs RSS feed and turns it into raw
// entries for classification.
package feed

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// DefaultFeedURL is the We Work Remotely remote-jobs feed.
const DefaultFeedURL = "https://weworkremotely.com/remote-jobs.rss"

// DefaultTimeout bounds the feed request; there is no retry — the daily
// schedule is the retry.
const DefaultTimeout = 30 * time.Second

// userAgent mimics a browser because the feed host rejects obvious bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves and parses one RSS feed.
//
// Parsing is permissive: gofeed tolerates messy markup, and only a body it
// rejects outright becomes a ParseError.
type Fetcher struct {
	url    string
	client *http.Client
	parser *gofeed.Parser
}

// NewFetcher builds a Fetcher for the given feed URL with a bounded request
// timeout. A zero timeout falls back to DefaultTimeout.
func NewFetcher(url string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// Fetch downloads and parses the feed, returning one RawEntry per item.
// Transport failures and non-success statuses come back as *FetchError,
// malformed feed bodies as *ParseError.
func (f *Fetcher) Fetch(ctx context.Context) ([]types.RawEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: f.url, StatusCode: resp.StatusCode}
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, &ParseError{URL: f.url, Err: err}
	}

	entries := make([]types.RawEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, toEntry(item))
	}
	return entries, nil
}

// toEntry maps one feed item to a RawEntry. Feeds that carry no author often
// encode the company in the title as "Company: Role"; that form is split on
// the first colon.
func toEntry(item *gofeed.Item) types.RawEntry {
	title := strings.TrimSpace(item.Title)
	company := ""
	if item.Author != nil {
		company = strings.TrimSpace(item.Author.Name)
	}
	if (company == "" || company == "Unknown") && strings.Contains(title, ":") {
		parts := strings.SplitN(title, ":", 2)
		company = strings.TrimSpace(parts[0])
		title = strings.TrimSpace(parts[1])
	}
	if company == "" {
		company = "Unknown"
	}

	category := "Uncategorized"
	if len(item.Categories) > 0 {
		category = item.Categories[0]
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC()
	}

	return types.RawEntry{
		Title:     title,
		Company:   company,
		URL:       item.Link,
		Published: published,
		Category:  category,
		Summary:   CleanHTML(item.Description),
	}
}
