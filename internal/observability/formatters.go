// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/ingestion"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the stats and collect commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSnapshot outputs a human-readable summary of a market snapshot.
func (p *Printer) PrintSnapshot(snap types.MarketSnapshot) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total postings:  %d\n", snap.Total))
	sb.WriteString("\n")

	if len(snap.TopSkills) > 0 {
		sb.WriteString("Top skills:\n")
		for _, s := range snap.TopSkills {
			sb.WriteString(fmt.Sprintf("  • %-16s %d\n", s.Name, s.Count))
		}
		sb.WriteString("\n")
	}

	if len(snap.Companies) > 0 {
		sb.WriteString("Top companies:\n")
		count := min(len(snap.Companies), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := snap.Companies[i]
			sb.WriteString(fmt.Sprintf("  • %-16s %d\n", c.Name, c.Count))
		}
		if len(snap.Companies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(snap.Companies)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(snap.SkillPairs) > 0 {
		sb.WriteString("Common skill pairs:\n")
		count := min(len(snap.SkillPairs), maxItemsToShow)
		for i := 0; i < count; i++ {
			pair := snap.SkillPairs[i]
			sb.WriteString(fmt.Sprintf("  • %s + %s (%d)\n", pair.First, pair.Second, pair.Count))
		}
		sb.WriteString("\n")
	}

	if len(snap.Domains) > 0 {
		sb.WriteString("Domains:\n")
		for _, d := range snap.Domains {
			sb.WriteString(fmt.Sprintf("  • %-16s %d\n", d.Name, d.Count))
		}
	}

	p.printBox("Market Snapshot", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs the outcome of one collect run.
func (p *Printer) PrintReport(report ingestion.Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fetched:   %d\n", report.Fetched))
	sb.WriteString(fmt.Sprintf("Accepted:  %d\n", report.Accepted))
	sb.WriteString(fmt.Sprintf("Rejected:  %d\n", report.Rejected))
	sb.WriteString(fmt.Sprintf("Written:   %d\n", report.Written))
	sb.WriteString(fmt.Sprintf("Skipped:   %d", report.Skipped))
	p.printBox("Collect Run", sb.String())
}
