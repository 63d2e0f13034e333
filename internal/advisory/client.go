// Package advisory formats market statistics into a prompt context and
// forwards user questions to a locally-run text-completion service.
//
// The service is strictly optional: hosted deployments construct the bridge
// disabled, and callers treat any failure here as a degraded feature, never
// a crash.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// DefaultEndpoint is the Ollama generate API on the local machine. The
// bridge is local-only; nothing here is meant to reach past localhost.
const DefaultEndpoint = "http://localhost:11434/api/generate"

// DefaultModel is the completion model asked for by default.
const DefaultModel = "qwen2.5:7b-instruct"

// DefaultTimeout bounds one completion round-trip. Local models are slow,
// so this is far looser than the feed timeout.
const DefaultTimeout = 120 * time.Second

// ErrDisabled is returned by Ask when the bridge was constructed disabled.
// No network I/O happens in that case.
var ErrDisabled = errors.New("advisory feature is disabled")

// UnavailableError indicates the local service could not be reached, timed
// out, or answered with a non-success status.
type UnavailableError struct {
	Endpoint string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("advisory service unavailable at %s: %v", e.Endpoint, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

const systemPrompt = `You are a senior hiring manager giving role-agnostic career advice.

RULES:
- Use hyphen (-) bullets only, one sentence per bullet, max 15 words each.
- Name at most 5 skills, for one role only.
- No generic verbs (learn, study, explore); no courses or certifications.
- Infer the most relevant role from the question and state the assumption.
- Skills must map to real job responsibilities; builds must involve real data or users.

FORMAT:

**Assumed Role**
**Why Companies Hire This Role**
**Top Skills That Matter (Max 5)**
**What to Build to Prove It**
**What to Ignore for Now**
**Next Best Action (This Week)**`

// Options configures the bridge. Enabled is decided once at construction —
// the "disabled in cloud" switch lives here, not in call sites.
type Options struct {
	Enabled       bool
	Endpoint      string
	Model         string
	Timeout       time.Duration
	ContextBudget int
}

// Bridge forwards questions plus market context to the local service.
type Bridge struct {
	opts   Options
	client *http.Client
}

// New builds a Bridge. Zero-valued fields take the package defaults.
func New(opts Options) *Bridge {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ContextBudget <= 0 {
		opts.ContextBudget = DefaultContextBudget
	}
	return &Bridge{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// Enabled reports whether the bridge will attempt the local service at all.
func (b *Bridge) Enabled() bool {
	return b.opts.Enabled
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature   float64 `json:"temperature"`
	NumCtx        int     `json:"num_ctx"`
	NumPredict    int     `json:"num_predict"`
	TopP          float64 `json:"top_p"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Ask sends the question plus serialized snapshot context to the local
// completion service and returns its reply. A disabled bridge returns
// ErrDisabled immediately; an unreachable or failing service returns
// *UnavailableError.
func (b *Bridge) Ask(ctx context.Context, question string, snap types.MarketSnapshot) (string, error) {
	if !b.opts.Enabled {
		return "", ErrDisabled
	}

	prompt := fmt.Sprintf(
		"SYSTEM:\n%s\n\nMARKET DATA (for context only, do NOT repeat verbatim):\n%s\n\nUSER QUESTION:\n%s\n",
		systemPrompt,
		BuildContext(snap, b.opts.ContextBudget),
		question,
	)

	body, err := json.Marshal(generateRequest{
		Model:  b.opts.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature:   0.2,
			NumCtx:        2048,
			NumPredict:    180,
			TopP:          0.9,
			RepeatPenalty: 1.1,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &UnavailableError{Endpoint: b.opts.Endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &UnavailableError{
			Endpoint: b.opts.Endpoint,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnavailableError{Endpoint: b.opts.Endpoint, Err: err}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UnavailableError{
			Endpoint: b.opts.Endpoint,
			Err:      fmt.Errorf("malformed completion response: %w", err),
		}
	}
	return parsed.Response, nil
}
