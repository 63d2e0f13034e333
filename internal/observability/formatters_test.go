package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/ingestion"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

func TestPrintSnapshot(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintSnapshot(types.MarketSnapshot{
		Total: 3,
		TopSkills: []types.NameCount{
			{Name: "golang", Count: 2},
			{Name: "react", Count: 1},
		},
		Companies: []types.NameCount{
			{Name: "Acme", Count: 2},
		},
		SkillPairs: []types.PairCount{
			{First: "docker", Second: "golang", Count: 1},
		},
		Domains: []types.NameCount{
			{Name: "Backend", Count: 2},
			{Name: "Frontend", Count: 1},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Market Snapshot")
	assert.Contains(t, out, "Total postings:  3")
	assert.Contains(t, out, "golang")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "docker + golang (1)")
}

func TestPrintSnapshotEmpty(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintSnapshot(types.MarketSnapshot{})

	out := buf.String()
	assert.Contains(t, out, "Total postings:  0")
	assert.NotContains(t, out, "Top skills")
}

func TestPrintReport(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintReport(ingestion.Report{Fetched: 10, Accepted: 6, Rejected: 4, Written: 5, Skipped: 1})

	out := buf.String()
	assert.Contains(t, out, "Collect Run")
	assert.Contains(t, out, "Fetched:   10")
	assert.Contains(t, out, "Written:   5")
	assert.Contains(t, out, "Skipped:   1")
}
