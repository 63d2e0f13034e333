package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

func testSnapshot() types.MarketSnapshot {
	return types.MarketSnapshot{
		Total: 42,
		TopSkills: []types.NameCount{
			{Name: "golang", Count: 12},
			{Name: "react", Count: 9},
		},
		Companies: []types.NameCount{
			{Name: "Acme", Count: 5},
		},
		SkillPairs: []types.PairCount{
			{First: "docker", Second: "golang", Count: 4},
		},
		Categories: []types.NameCount{
			{Name: "Programming", Count: 40},
		},
	}
}

func TestAskDisabledShortCircuits(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	bridge := New(Options{Enabled: false, Endpoint: srv.URL})

	_, err := bridge.Ask(context.Background(), "what should I learn?", testSnapshot())

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Zero(t, calls, "disabled bridge must not attempt any network call")
	assert.False(t, bridge.Enabled())
}

func TestAskForwardsPromptAndReturnsReply(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "- Focus on Go backend roles."})
	}))
	defer srv.Close()

	bridge := New(Options{Enabled: true, Endpoint: srv.URL, Model: "test-model"})

	answer, err := bridge.Ask(context.Background(), "what should I learn?", testSnapshot())

	require.NoError(t, err)
	assert.Equal(t, "- Focus on Go backend roles.", answer)
	assert.Equal(t, "test-model", got.Model)
	assert.False(t, got.Stream)
	assert.Contains(t, got.Prompt, "what should I learn?")
	assert.Contains(t, got.Prompt, "Total active jobs: 42")
	assert.Contains(t, got.Prompt, "golang, react")
}

func TestAskUnreachableServiceIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	bridge := New(Options{Enabled: true, Endpoint: srv.URL, Timeout: time.Second})

	_, err := bridge.Ask(context.Background(), "anything", testSnapshot())

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, srv.URL, unavailable.Endpoint)
}

func TestAskNonSuccessStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	bridge := New(Options{Enabled: true, Endpoint: srv.URL})

	_, err := bridge.Ask(context.Background(), "anything", testSnapshot())

	var unavailable *UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestBuildContextSections(t *testing.T) {
	got := BuildContext(testSnapshot(), 0)

	assert.Contains(t, got, "Total active jobs: 42")
	assert.Contains(t, got, "Top demanded skills: golang, react")
	assert.Contains(t, got, "Top hiring companies: Acme")
	assert.Contains(t, got, "docker+golang (4)")
	assert.Contains(t, got, "Posting categories: Programming")
}

func TestBuildContextTruncatesLowestPriorityFirst(t *testing.T) {
	snap := testSnapshot()
	totals := "MARKET SNAPSHOT:\n- Total active jobs: 42"

	// Budget fits the totals and skills sections but nothing below them.
	budget := len(totals) + len("\n- Top demanded skills: golang, react") + 1
	got := BuildContext(snap, budget)

	assert.Contains(t, got, "Total active jobs: 42")
	assert.Contains(t, got, "Top demanded skills")
	assert.NotContains(t, got, "Top hiring companies")
	assert.NotContains(t, got, "skill combinations")
	assert.LessOrEqual(t, len(got), budget)
}

func TestBuildContextEmptySnapshot(t *testing.T) {
	got := BuildContext(types.MarketSnapshot{}, 0)

	assert.True(t, strings.HasPrefix(got, "MARKET SNAPSHOT:"))
	assert.Contains(t, got, "Total active jobs: 0")
	assert.NotContains(t, got, "Top demanded skills")
}
