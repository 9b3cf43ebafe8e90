package httpapi

import (
	"net/http"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
)

func (s *Server) handleWikiPicture(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, apperr.BadRequestf("missing `name` query param"))
		return
	}

	bg, _ := s.WikiCache.Background(r.Context(), name)
	writeJSON(w, http.StatusOK, wikiPictureDTO{Bg: bg})
}
