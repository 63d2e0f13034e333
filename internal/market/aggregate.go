// Package market computes aggregate statistics over the posting dataset.
// Everything here is a pure function of its input; snapshots are recomputed
// on every load and never persisted.
package market

import (
	"sort"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// DefaultTopK is the result size for frequency tables when none is set.
const DefaultTopK = 10

// Options controls aggregation. A nil Domain means no filtering; TopK <= 0
// falls back to DefaultTopK.
type Options struct {
	Domain *types.Domain
	TopK   int
}

// Summarize computes a MarketSnapshot over the given postings. With a domain
// filter set, only postings of that domain contribute; an empty (or
// filtered-to-empty) input yields a zero-valued snapshot, not an error.
func Summarize(postings []types.Posting, opts Options) types.MarketSnapshot {
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	filtered := postings
	if opts.Domain != nil {
		filtered = make([]types.Posting, 0, len(postings))
		for _, p := range postings {
			if p.Domain == *opts.Domain {
				filtered = append(filtered, p)
			}
		}
	}

	companies := make(map[string]int)
	categories := make(map[string]int)
	domains := make(map[string]int)
	skills := make(map[string]int)
	skillsByDomain := make(map[types.Domain]map[string]int)
	pairs := make(map[[2]string]int)

	for _, p := range filtered {
		companies[p.Company]++
		categories[p.Category]++
		domains[string(p.Domain)]++

		if skillsByDomain[p.Domain] == nil {
			skillsByDomain[p.Domain] = make(map[string]int)
		}
		for _, s := range p.Skills {
			skills[s]++
			skillsByDomain[p.Domain][s]++
		}
		countPairs(pairs, p.Skills)
	}

	byDomain := make(map[types.Domain][]types.NameCount, len(skillsByDomain))
	for d, counts := range skillsByDomain {
		byDomain[d] = topCounts(counts, topK)
	}

	return types.MarketSnapshot{
		Total:          len(filtered),
		Companies:      topCounts(companies, topK),
		TopSkills:      topCounts(skills, topK),
		SkillsByDomain: byDomain,
		SkillPairs:     sortedPairs(pairs),
		Categories:     sortedCounts(categories),
		Domains:        sortedCounts(domains),
	}
}

// countPairs increments the count for every unordered pair of distinct
// skills in one posting. Pairs are keyed under canonical ordering (first
// element sorts before the second), so (A,B) and (B,A) share one entry.
func countPairs(pairs map[[2]string]int, skills []string) {
	for i := 0; i < len(skills); i++ {
		for j := i + 1; j < len(skills); j++ {
			a, b := skills[i], skills[j]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			pairs[[2]string{a, b}]++
		}
	}
}

// sortedCounts flattens a frequency map, descending by count with
// alphabetical tie-breaks for determinism.
func sortedCounts(counts map[string]int) []types.NameCount {
	out := make([]types.NameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, types.NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func topCounts(counts map[string]int, k int) []types.NameCount {
	out := sortedCounts(counts)
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// sortedPairs flattens the co-occurrence map, descending by count, ties
// alphabetical by the pair's first skill then its second.
func sortedPairs(pairs map[[2]string]int) []types.PairCount {
	out := make([]types.PairCount, 0, len(pairs))
	for pair, n := range pairs {
		out = append(out, types.PairCount{First: pair[0], Second: pair[1], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}
