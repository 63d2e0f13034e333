package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanHTML strips markup from a feed summary and collapses whitespace,
// returning plain text. Empty or unparseable input degrades to an empty or
// best-effort string; cleaning never fails the ingestion run.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// goquery accepts almost anything; fall back to the raw text.
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(html, " "))
	}

	text := doc.Text()
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
