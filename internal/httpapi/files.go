package httpapi

import (
	"net/http"

	"github.com/shinnku-nikaidou/shinnku-com/internal/apperr"
	"github.com/shinnku-nikaidou/shinnku-com/internal/tree"
)

func (s *Server) handleFilesRoot(w http.ResponseWriter, r *http.Request) {
	s.serveNode(w, "")
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	s.serveNode(w, r.PathValue("rest"))
}

func (s *Server) serveNode(w http.ResponseWriter, path string) {
	result := tree.Navigate(s.State.Tree, path)

	switch result.Kind {
	case tree.FileHit:
		writeJSON(w, http.StatusOK, fileInodeDTO{Type: "file", Name: result.Name, Info: result.File})
	case tree.FolderHit:
		entries := tree.Listing(result.Folder)
		data := make([]nodeDTO, 0, len(entries))
		for _, e := range entries {
			if e.IsFile {
				data = append(data, nodeDTO{Type: "file", Name: e.Name, Info: e.File})
			} else {
				data = append(data, nodeDTO{Type: "folder", Name: e.Name})
			}
		}
		writeJSON(w, http.StatusOK, folderInodeDTO{Type: "folder", Data: data})
	default:
		s.writeError(w, apperr.NotFoundf("path %q not found", path))
	}
}
