package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SoumyadeepDas-2004/JobiFy/internal/advisory"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/dataset"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/market"
	"github.com/SoumyadeepDas-2004/JobiFy/internal/types"
)

// AskRequest is the request body for /api/ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the response for /api/ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the JSON error payload. Degraded carries the inline
// degraded-feature notice for failures the dashboard should survive.
type ErrorResponse struct {
	Error    string `json:"error"`
	Degraded bool   `json:"degraded,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSnapshot serves the aggregate view, optionally filtered by domain.
// Query params: domain (enum name), top_k (positive int).
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	opts := market.Options{TopK: s.topK}

	if raw := r.URL.Query().Get("domain"); raw != "" {
		domain, err := types.ParseDomain(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Domain = &domain
	}
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil || k <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "top_k must be a positive integer")
			return
		}
		opts.TopK = k
	}

	postings, err := s.loadDataset(w)
	if err != nil {
		return
	}
	s.writeJSON(w, http.StatusOK, market.Summarize(postings, opts))
}

func (s *Server) handlePostings(w http.ResponseWriter, _ *http.Request) {
	postings, err := s.loadDataset(w)
	if err != nil {
		return
	}
	if postings == nil {
		postings = []types.Posting{}
	}
	s.writeJSON(w, http.StatusOK, postings)
}

// handleAsk forwards a question plus the current snapshot to the advisory
// bridge. Advisory failure is a degraded feature, not a server failure.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	postings, err := s.loadDataset(w)
	if err != nil {
		return
	}
	snap := market.Summarize(postings, market.Options{TopK: s.topK})

	answer, err := s.bridge.Ask(r.Context(), req.Question, snap)
	if err != nil {
		var unavailable *advisory.UnavailableError
		switch {
		case errors.Is(err, advisory.ErrDisabled):
			s.degradedResponse(w, "advisory feature is disabled in this deployment")
		case errors.As(err, &unavailable):
			s.log.Warnw("advisory unavailable", "error", err)
			s.degradedResponse(w, "advisory service is not reachable")
		default:
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	s.writeJSON(w, http.StatusOK, AskResponse{Answer: answer})
}

// loadDataset reads the dataset, writing the error response itself on
// failure so handlers can bail with a bare return.
func (s *Server) loadDataset(w http.ResponseWriter) ([]types.Posting, error) {
	postings, err := s.store.Load()
	if err != nil {
		var schemaErr *dataset.SchemaError
		if errors.As(err, &schemaErr) {
			s.log.Errorw("dataset schema mismatch", "error", err)
			s.errorResponse(w, http.StatusInternalServerError, schemaErr.Error())
		} else {
			s.log.Errorw("dataset load failed", "error", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to load dataset")
		}
		return nil, err
	}
	return postings, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Errorw("failed to encode response", "error", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) degradedResponse(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: msg, Degraded: true})
}
