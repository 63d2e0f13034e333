// Package classify decides whether a raw feed entry is a tech role and, if
// so, which technology domain it belongs to and which skills it names.
package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// matcher pairs a keyword with its compiled word-boundary pattern.
type matcher struct {
	keyword string
	re      *regexp.Regexp
}

// compile builds word-boundary matchers for lowered text. A plain \b does
// not bound keywords ending in non-word runes ("c++", "ci/cd"), so the
// boundary is expressed as start/end-of-text or a non-alphanumeric rune.
func compile(keywords []string) []matcher {
	ms := make([]matcher, 0, len(keywords))
	for _, kw := range keywords {
		pattern := `(^|[^a-z0-9])` + regexp.QuoteMeta(strings.ToLower(kw)) + `([^a-z0-9]|$)`
		ms = append(ms, matcher{keyword: kw, re: regexp.MustCompile(pattern)})
	}
	return ms
}

func anyMatch(ms []matcher, text string) bool {
	for _, m := range ms {
		if m.re.MatchString(text) {
			return true
		}
	}
	return false
}

func countMatches(ms []matcher, text string) int {
	n := 0
	for _, m := range ms {
		if m.re.MatchString(text) {
			n++
		}
	}
	return n
}

// Classifier applies the keyword tables to raw entries. It is immutable
// after construction and safe for reuse across runs.
type Classifier struct {
	tables  Tables
	tech    []matcher
	nonTech []matcher
	domains map[types.Domain][]matcher
	skills  []matcher
}

// New compiles the given tables into a Classifier.
func New(tables Tables) *Classifier {
	domains := make(map[types.Domain][]matcher, len(tables.DomainKeywords))
	for d, kws := range tables.DomainKeywords {
		domains[d] = compile(kws)
	}
	return &Classifier{
		tables:  tables,
		tech:    compile(tables.TechKeywords),
		nonTech: compile(tables.NonTechKeywords),
		domains: domains,
		skills:  compile(tables.Skills),
	}
}

// Classify returns the classified Posting and true when the entry is a tech
// role, or a zero Posting and false when it is rejected.
//
// Relevance and domain assignment are independent: an accepted entry whose
// text matches no domain keyword set still comes back with DomainOther.
// An empty description degrades to title-only matching.
func (c *Classifier) Classify(entry types.RawEntry) (types.Posting, bool) {
	title := strings.ToLower(entry.Title)
	text := title
	if entry.Summary != "" {
		text = title + " " + strings.ToLower(entry.Summary)
	}

	if anyMatch(c.nonTech, title) {
		return types.Posting{}, false
	}
	if !c.relevant(text, entry.Category) {
		return types.Posting{}, false
	}

	return types.Posting{
		Title:          entry.Title,
		Company:        entry.Company,
		URL:            entry.URL,
		PublishedAt:    entry.Published,
		Category:       entry.Category,
		Domain:         c.assignDomain(text),
		Skills:         c.extractSkills(text),
		DescriptionRaw: entry.Summary,
	}, true
}

// relevant reports whether the entry passes the tech-relevance test: a known
// tech category label, or at least one tech keyword in the text. The skill
// vocabulary counts as tech keywords here, so a posting naming only concrete
// tools ("React, GraphQL") is still accepted.
func (c *Classifier) relevant(text, category string) bool {
	lowerCat := strings.ToLower(category)
	for _, label := range c.tables.TechCategories {
		if strings.Contains(lowerCat, label) {
			return true
		}
	}
	return anyMatch(c.tech, text) || anyMatch(c.skills, text)
}

// assignDomain scores every domain's keyword set against the text and picks
// the highest. Ties fall to whichever domain comes first in DomainPriority;
// zero matches everywhere means DomainOther.
func (c *Classifier) assignDomain(text string) types.Domain {
	best := types.DomainOther
	bestScore := 0
	for _, d := range types.DomainPriority {
		ms, ok := c.domains[d]
		if !ok {
			continue
		}
		if score := countMatches(ms, text); score > bestScore {
			best = d
			bestScore = score
		}
	}
	return best
}

// extractSkills collects every vocabulary keyword present in the text,
// across all domains, sorted for determinism.
func (c *Classifier) extractSkills(text string) []string {
	var skills []string
	for _, m := range c.skills {
		if m.re.MatchString(text) {
			skills = append(skills, m.keyword)
		}
	}
	sort.Strings(skills)
	return skills
}
