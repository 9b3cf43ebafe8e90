// Package searchindex builds the flat, ordered list that the fuzzy search
// engine operates over (C4 in spec.md).
package searchindex

import (
	"strings"

	"github.com/shinnku-nikaidou/shinnku-com/internal/types"
)

// collectionPrefix is stripped from file_path to derive a SearchItem's id.
const collectionPrefix = "合集系列/"

// Item pairs a search id with the FileInfo it points at.
type Item struct {
	ID      string
	Payload *types.FileInfo
}

// Build concatenates catalogues, in the order given, into a single ordered
// search list. id is file_path with the exact prefix "合集系列/" stripped
// when present; duplicate ids across catalogues are permitted.
func Build(catalogues ...[]types.FileInfo) []Item {
	total := 0
	for _, c := range catalogues {
		total += len(c)
	}
	items := make([]Item, 0, total)

	for _, catalogue := range catalogues {
		for i := range catalogue {
			f := &catalogue[i]
			items = append(items, Item{
				ID:      strings.TrimPrefix(f.FilePath, collectionPrefix),
				Payload: f,
			})
		}
	}

	return items
}
