// Package dataset persists classified postings to a flat CSV file with
// dedup-on-write and atomic replacement.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// header is the fixed column layout. A file whose header differs is
// structurally incompatible and never coerced.
var header = []string{
	"title", "company", "url", "published_at",
	"category", "domain", "skills", "description_raw",
}

// skillSep joins the skills set into a single CSV field.
const skillSep = ";"

// SchemaError indicates the persisted file exists but its columns do not
// match the expected layout. This is fatal for the run: silent coercion
// risks corrupting historical data.
type SchemaError struct {
	Path   string
	Header []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: incompatible header %v, want %v", e.Path, e.Header, header)
}

// Store reads and appends the posting dataset at a fixed path.
type Store struct {
	path string
}

// New returns a Store bound to the given file path. The file does not need
// to exist yet; a missing file is the bootstrap case.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted dataset. A missing file yields an empty dataset
// and no error; a present file with the wrong header yields a *SchemaError.
func (s *Store) Load() ([]types.Posting, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)

	// Validate the header before touching the rows so a column-count
	// mismatch surfaces as a SchemaError, not a CSV field-count error.
	first, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}
	if !sameHeader(first) {
		return nil, &SchemaError{Path: s.path, Header: first}
	}

	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", s.path, err)
	}

	postings := make([]types.Posting, 0, len(records))
	for _, rec := range records {
		postings = append(postings, fromRecord(rec))
	}
	return postings, nil
}

// Append merges new postings into the dataset. Postings whose URL is already
// present are skipped; the merged table is written to a temp file and moved
// into place so the dataset is never left partially written. When nothing
// new survives dedup, the file on disk is left untouched.
func (s *Store) Append(postings []types.Posting) (written, skipped int, err error) {
	existing, err := s.Load()
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.URL] = struct{}{}
	}

	merged := existing
	for _, p := range postings {
		if _, dup := seen[p.URL]; dup {
			skipped++
			continue
		}
		seen[p.URL] = struct{}{}
		merged = append(merged, p)
		written++
	}

	if written == 0 {
		return 0, skipped, nil
	}

	if err := s.write(merged); err != nil {
		return 0, skipped, err
	}
	return written, skipped, nil
}

// write persists the full table atomically: write to a temp file in the
// same directory, then rename over the target.
func (s *Store) write(postings []types.Posting) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".jobify-dataset-*")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dataset header: %w", err)
	}
	for _, p := range postings {
		if err := w.Write(toRecord(p)); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write dataset row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp dataset: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}

func sameHeader(got []string) bool {
	if len(got) != len(header) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(got[i]) != col {
			return false
		}
	}
	return true
}

func toRecord(p types.Posting) []string {
	published := ""
	if !p.PublishedAt.IsZero() {
		published = p.PublishedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		p.Title,
		p.Company,
		p.URL,
		published,
		p.Category,
		string(p.Domain),
		strings.Join(p.Skills, skillSep),
		p.DescriptionRaw,
	}
}

func fromRecord(rec []string) types.Posting {
	var published time.Time
	if rec[3] != "" {
		if t, err := time.Parse(time.RFC3339, rec[3]); err == nil {
			published = t
		}
	}

	domain := types.DomainOther
	if d, err := types.ParseDomain(rec[5]); err == nil {
		domain = d
	}

	var skills []string
	if rec[6] != "" {
		skills = strings.Split(rec[6], skillSep)
	}

	return types.Posting{
		Title:          rec[0],
		Company:        rec[1],
		URL:            rec[2],
		PublishedAt:    published,
		Category:       rec[4],
		Domain:         domain,
		Skills:         skills,
		DescriptionRaw: rec[7],
	}
}
