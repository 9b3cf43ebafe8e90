package httpapi

import (
	"net/http"
	"strconv"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
	"github.com/shinnku-nikaidou/shinnku-com/internal/fuzzy"
	"github.com/shinnku-nikaidou/shinnku-com/internal/searchindex"
	"github.com/shinnku-nikaidou/shinnku-com/internal/workerpool"
)

func toSearchItemDTOs(items []searchindex.Item) []searchItemDTO {
	out := make([]searchItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, searchItemDTO{ID: it.ID, Info: it.Payload})
	}
	return out
}

func parseLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// handleSearch runs the single-query fuzzy search. The CPU-bound match
// loop is offloaded to the worker pool so it never blocks the HTTP
// goroutine, per spec.md §5.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeError(w, apperr.BadRequestf("missing `q` query param"))
		return
	}

	limit := parseLimit(r, 0) // 0 means "all results" for the single-query endpoint
	index := s.State.SearchIndex

	results, err := workerpool.Submit(r.Context(), s.Pool, func() ([]searchindex.Item, error) {
		return fuzzy.Search(q, index, limit), nil
	})
	if err != nil {
		s.writeError(w, apperr.Internalf("search task failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, toSearchItemDTOs(results))
}

// handleCombinedSearch runs the two-query merged fuzzy search.
func (s *Server) handleCombinedSearch(w http.ResponseWriter, r *http.Request) {
	q1 := r.URL.Query().Get("q1")
	q2 := r.URL.Query().Get("q2")
	if q1 == "" || q2 == "" {
		s.writeError(w, apperr.BadRequestf("missing `q1` and/or `q2` query param"))
		return
	}

	n := parseLimit(r, 100)
	index := s.State.SearchIndex

	results, err := workerpool.Submit(r.Context(), s.Pool, func() ([]searchindex.Item, error) {
		return fuzzy.CombinedSearch(q1, q2, n, index), nil
	})
	if err != nil {
		s.writeError(w, apperr.Internalf("combined search task failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, toSearchItemDTOs(results))
}
