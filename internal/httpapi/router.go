// Package httpapi is the HTTP surface (C7 in spec.md): routing, request
// decoding, DTO assembly, and error mapping, on top of a plain
// net/http.ServeMux using Go's method/wildcard route patterns — the same
// router style the reference stack uses for its own internal HTTP surface.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
	"github.com/shinnku-nikaidou/shinnku-com/internal/appstate"
	"github.com/shinnku-nikaidou/shinnku-com/internal/proxyfwd"
	"github.com/shinnku-nikaidou/shinnku-com/internal/wikicache"
	"github.com/shinnku-nikaidou/shinnku-com/internal/workerpool"
)

// Server holds everything a handler needs: the bootstrap state, the
// worker pool for CPU-bound search work, the wiki cache client, the
// sibling-service forwarder, and a logger. It is built once and passed
// explicitly — never a mutable package-level global — per spec.md §9.
type Server struct {
	State     *appstate.State
	Pool      *workerpool.Pool
	WikiCache *wikicache.Client
	Proxy     *proxyfwd.Forwarder
	Log       *slog.Logger
}

// NewMux builds the routed handler for the whole HTTP surface.
func (s *Server) NewMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /files", s.handleFilesRoot)
	mux.HandleFunc("GET /files/{rest...}", s.handleFiles)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /combinesearch", s.handleCombinedSearch)
	mux.HandleFunc("GET /wikisearchpicture", s.handleWikiPicture)
	mux.HandleFunc("/intro", s.handleProxy)
	mux.HandleFunc("/findname", s.handleProxy)

	return mux
}

// writeJSON encodes v as the response body with status and the JSON
// content type header.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status and {"message": ...} body. A
// non-*apperr.Error is treated as Internal, matching spec.md §7.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*apperr.Error)
	if !ok {
		appErr = apperr.Internalf("%v", err)
	}
	if appErr.Kind == apperr.Internal {
		s.Log.Error("request failed", "error", appErr.Message)
	}
	writeJSON(w, appErr.Status(), errorBody{Message: appErr.Message})
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	if err := s.Proxy.Forward(w, r); err != nil {
		s.writeError(w, err)
	}
}
