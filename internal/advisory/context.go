package advisory

import (
	"fmt"
	"strings"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// DefaultContextBudget caps the serialized market context, in bytes.
const DefaultContextBudget = 2048

// maxPairsShown limits how many co-occurrence pairs ever reach the prompt.
const maxPairsShown = 5

// BuildContext serializes a snapshot into the bounded textual block that
// precedes the user's question. Sections are appended in priority order —
// totals, top skills, companies, co-occurrence, categories — and a section
// that would push the block past the budget is dropped along with
// everything after it, so the lowest-priority statistics truncate first.
func BuildContext(snap types.MarketSnapshot, budget int) string {
	if budget <= 0 {
		budget = DefaultContextBudget
	}

	sections := []string{
		fmt.Sprintf("MARKET SNAPSHOT:\n- Total active jobs: %d", snap.Total),
		skillsSection(snap.TopSkills),
		companiesSection(snap.Companies),
		pairsSection(snap.SkillPairs),
		categoriesSection(snap.Categories),
	}

	var b strings.Builder
	for _, section := range sections {
		if section == "" {
			continue
		}
		if b.Len()+len(section)+1 > budget {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section)
	}
	return b.String()
}

func skillsSection(skills []types.NameCount) string {
	if len(skills) == 0 {
		return ""
	}
	return "- Top demanded skills: " + joinNames(skills)
}

func companiesSection(companies []types.NameCount) string {
	if len(companies) == 0 {
		return ""
	}
	return "- Top hiring companies: " + joinNames(companies)
}

func pairsSection(pairs []types.PairCount) string {
	if len(pairs) == 0 {
		return ""
	}
	shown := pairs
	if len(shown) > maxPairsShown {
		shown = shown[:maxPairsShown]
	}
	parts := make([]string, 0, len(shown))
	for _, p := range shown {
		parts = append(parts, fmt.Sprintf("%s+%s (%d)", p.First, p.Second, p.Count))
	}
	return "- Common skill combinations: " + strings.Join(parts, ", ")
}

func categoriesSection(categories []types.NameCount) string {
	if len(categories) == 0 {
		return ""
	}
	return "- Posting categories: " + joinNames(categories)
}

func joinNames(counts []types.NameCount) string {
	names := make([]string, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
