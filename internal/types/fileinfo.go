// Package types holds the data shared across the catalogue, tree, and
// search index: the immutable FileInfo record loaded from the bucket JSON
// blobs at start-up.
package types

// FileInfo describes one catalogued file. Instances are created once during
// bootstrap and shared by reference between the tree and the search index;
// nothing mutates a FileInfo after load.
type FileInfo struct {
	FilePath        string `json:"file_path"`
	UploadTimestamp uint64 `json:"upload_timestamp"`
	FileSize        uint64 `json:"file_size"`
}
