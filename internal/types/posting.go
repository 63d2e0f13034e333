// Package types defines the core domain types shared across the JobiFy pipeline.
package types

import (
	"fmt"
	"time"
)

// Domain is a coarse technology-role category assigned to a posting.
type Domain string

const (
	DomainFrontend      Domain = "Frontend"
	DomainBackend       Domain = "Backend"
	DomainFullStack     Domain = "FullStack"
	DomainDevOpsCloud   Domain = "DevOpsCloud"
	DomainDataScienceML Domain = "DataScienceML"
	DomainMobile        Domain = "Mobile"
	DomainOther         Domain = "Other"
)

// DomainPriority is the fixed ordering used to break ties when two domains
// score equally, and the display order for per-domain statistics.
var DomainPriority = []Domain{
	DomainFrontend,
	DomainBackend,
	DomainFullStack,
	DomainDevOpsCloud,
	DomainDataScienceML,
	DomainMobile,
	DomainOther,
}

// ParseDomain converts a string into a Domain.
// Returns an error for unknown values so bad data surfaces instead of
// silently becoming a new category.
func ParseDomain(s string) (Domain, error) {
	for _, d := range DomainPriority {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// RawEntry is one feed item before classification. Company may be empty when
// the feed does not carry an author field.
type RawEntry struct {
	Title     string
	Company   string
	URL       string
	Published time.Time
	Category  string
	Summary   string
}

// Posting is one classified job listing. Postings are immutable once
// classified; URL is the dedup key within the persisted dataset.
type Posting struct {
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"published_at"`
	Category       string    `json:"category"`
	Domain         Domain    `json:"domain"`
	Skills         []string  `json:"skills"`
	DescriptionRaw string    `json:"description_raw"`
}
