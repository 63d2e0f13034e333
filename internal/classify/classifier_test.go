package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

func newTestClassifier() *Classifier {
	return New(DefaultTables())
}

func TestClassifyAcceptsFrontendPosting(t *testing.T) {
	c := newTestClassifier()

	posting, ok := c.Classify(types.RawEntry{
		Title:    "Senior React Developer",
		Company:  "Acme",
		URL:      "https://example.com/jobs/1",
		Category: "Engineering",
		Summary:  "Looking for React, TypeScript, and GraphQL experience",
	})

	require.True(t, ok, "posting naming concrete tech should be accepted")
	assert.Equal(t, types.DomainFrontend, posting.Domain)
	assert.Equal(t, []string{"graphql", "react", "typescript"}, posting.Skills)
	assert.Equal(t, "Acme", posting.Company)
	assert.Equal(t, "https://example.com/jobs/1", posting.URL)
}

func TestClassifyRejectsNonTechPosting(t *testing.T) {
	c := newTestClassifier()

	_, ok := c.Classify(types.RawEntry{
		Title:    "Office Manager",
		Category: "Admin",
		Summary:  "Manage front desk operations",
	})

	assert.False(t, ok, "no tech keyword and no tech category should reject")
}

func TestClassifyRejectsNonTechTitleKeyword(t *testing.T) {
	c := newTestClassifier()

	// "software" would pass the relevance test, but a non-tech title
	// keyword rejects first.
	_, ok := c.Classify(types.RawEntry{
		Title:   "Account Executive",
		Summary: "Sell our software platform to enterprise customers",
	})

	assert.False(t, ok)
}

func TestClassifyTechCategoryAloneAccepts(t *testing.T) {
	c := newTestClassifier()

	posting, ok := c.Classify(types.RawEntry{
		Title:    "Ninja Rockstar",
		Category: "Full-Stack Programming",
		Summary:  "Join our amazing team",
	})

	require.True(t, ok, "tech category label should accept without keyword matches")
	assert.Equal(t, types.DomainOther, posting.Domain,
		"relevance and domain assignment are independent tests")
	assert.Empty(t, posting.Skills)
}

func TestClassifyEmptyDescriptionUsesTitleOnly(t *testing.T) {
	c := newTestClassifier()

	posting, ok := c.Classify(types.RawEntry{
		Title:    "DevOps Engineer (Kubernetes, AWS)",
		Category: "Uncategorized",
	})

	require.True(t, ok)
	assert.Equal(t, types.DomainDevOpsCloud, posting.Domain)
	assert.Equal(t, []string{"aws", "kubernetes"}, posting.Skills)
}

func TestClassifySkillsSpanDomains(t *testing.T) {
	c := newTestClassifier()

	posting, ok := c.Classify(types.RawEntry{
		Title:    "Backend Engineer",
		Category: "Programming",
		Summary:  "Golang services on Kubernetes with PostgreSQL and React admin tooling",
	})

	require.True(t, ok)
	assert.Equal(t, types.DomainBackend, posting.Domain)
	assert.Equal(t, []string{"golang", "kubernetes", "postgresql", "react"}, posting.Skills,
		"skills should come from the full vocabulary, not just the winning domain")
}

func TestClassifyDomainTieBreaksByPriority(t *testing.T) {
	c := newTestClassifier()

	// One Frontend keyword and one Mobile keyword: Frontend sits earlier
	// in the priority order and must win the tie.
	posting, ok := c.Classify(types.RawEntry{
		Title:    "Engineer",
		Category: "Programming",
		Summary:  "We use css and swift",
	})

	require.True(t, ok)
	assert.Equal(t, types.DomainFrontend, posting.Domain)
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newTestClassifier()
	entry := types.RawEntry{
		Title:    "Full Stack Developer",
		Category: "Programming",
		Summary:  "React, Node, Docker, PostgreSQL, AWS",
	}

	first, ok := c.Classify(entry)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := c.Classify(entry)
		require.True(t, ok)
		assert.Equal(t, first.Domain, again.Domain)
		assert.Equal(t, first.Skills, again.Skills)
	}
}

func TestClassifyWordBoundaries(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		summary string
		skill   string
		found   bool
	}{
		{"java not matched inside javascript", "we write javascript", "java", false},
		{"javascript matched", "we write javascript", "javascript", true},
		{"cpp matched with punctuation bounds", "modern c++ codebase", "c++", true},
		{"git matched standalone", "git workflows", "git", true},
		{"git not matched inside digital", "digital products", "git", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting, ok := c.Classify(types.RawEntry{
				Title:    "Software Engineer",
				Category: "Programming",
				Summary:  tt.summary,
			})
			require.True(t, ok)
			if tt.found {
				assert.Contains(t, posting.Skills, tt.skill)
			} else {
				assert.NotContains(t, posting.Skills, tt.skill)
			}
		})
	}
}
