package httpapi

import "github.com/shinnku-nikaidou/shinnku-com/internal/types"

// errorBody is the JSON shape for every error response: {"message": ...}.
type errorBody struct {
	Message string `json:"message"`
}

// nodeDTO is one entry in a folder listing.
type nodeDTO struct {
	Type string          `json:"type"`
	Name string          `json:"name"`
	Info *types.FileInfo `json:"info,omitempty"`
}

// fileInodeDTO is the response for /files and /files/{rest...} when the
// path resolves to a file leaf.
type fileInodeDTO struct {
	Type string          `json:"type"`
	Name string          `json:"name"`
	Info *types.FileInfo `json:"info"`
}

// folderInodeDTO is the response for /files and /files/{rest...} when the
// path resolves to a folder; Data is always present, even when empty.
type folderInodeDTO struct {
	Type string    `json:"type"`
	Data []nodeDTO `json:"data"`
}

// searchItemDTO is one entry in a search response array.
type searchItemDTO struct {
	ID   string          `json:"id"`
	Info *types.FileInfo `json:"info"`
}

// wikiPictureDTO is the response for /wikisearchpicture.
type wikiPictureDTO struct {
	Bg *string `json:"bg"`
}
