// Package catalogue loads the flat, ordered bucket catalogues from disk at
// start-up (part of C6 bootstrap in spec.md).
package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shinnku-nikaidou/shinnku-com/internal/types"
)

// Load reads path as a JSON array of FileInfo. A malformed or unreadable
// catalogue is a bootstrap error — fatal at start-up per spec.md §7.
func Load(path string) ([]types.FileInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue %q: %w", path, err)
	}

	var files []types.FileInfo
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("parsing catalogue %q: %w", path, err)
	}

	return files, nil
}

// FilterByPrefix returns the subset of files whose file_path starts with
// prefix, preserving order.
func FilterByPrefix(files []types.FileInfo, prefix string) []types.FileInfo {
	out := make([]types.FileInfo, 0, len(files))
	for _, f := range files {
		if strings.HasPrefix(f.FilePath, prefix) {
			out = append(out, f)
		}
	}
	return out
}
