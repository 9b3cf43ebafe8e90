// Package tree builds and navigates the hierarchical view of a catalogue:
// a prefix tree keyed by path segment, with each leaf holding a *FileInfo.
package tree

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/shinnku-nikaidou/shinnku-com/internal/types"
)

// Node is either a folder (a mapping of child name to Node) or a leaf
// holding a FileInfo. Exactly one of Children/File is set — modeled as a
// tagged variant rather than an interface, since callers need both "is this
// a file" and "what are the children" without a type switch at every call
// site.
type Node struct {
	Children map[string]*Node
	File     *types.FileInfo
}

// IsFile reports whether this node is a leaf.
func (n *Node) IsFile() bool { return n.File != nil }

func newFolder() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Build constructs a tree from a flat catalogue of FileInfo. Each file_path
// is split on '/'; intermediate segments become folders, the final segment
// becomes a file leaf. A catalogue where some prefix of a path is already a
// file leaf (folder/file name collision) is malformed: Build logs the
// conflict and returns an empty tree, matching the "no tree" disposition in
// spec.md §7 rather than aborting the whole process.
func Build(files []types.FileInfo) *Node {
	root := newFolder()

	for i := range files {
		f := &files[i]
		parts := strings.Split(f.FilePath, "/")
		if len(parts) == 0 {
			continue
		}

		cur := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := cur.Children[part]
			if !ok {
				child = newFolder()
				cur.Children[part] = child
			} else if child.IsFile() {
				slog.Error("catalogue malformed: folder/file name collision",
					"segment", part, "file_path", f.FilePath)
				return newFolder()
			}
			cur = child
		}

		last := parts[len(parts)-1]
		if existing, ok := cur.Children[last]; ok && !existing.IsFile() {
			slog.Error("catalogue malformed: file/folder name collision",
				"segment", last, "file_path", f.FilePath)
			return newFolder()
		}
		cur.Children[last] = &Node{File: f}
	}

	return root
}

// HitKind identifies the outcome of Navigate.
type HitKind int

const (
	// NotFound means no node existed along the requested path.
	NotFound HitKind = iota
	// FileHit means the path resolved to a file leaf.
	FileHit
	// FolderHit means the path resolved to a folder (possibly the root).
	FolderHit
)

// NavResult is the outcome of navigating a tree by path.
type NavResult struct {
	Kind HitKind
	// Name is the final path segment, set only for FileHit.
	Name string
	// File is set only for FileHit.
	File *types.FileInfo
	// Folder is set only for FolderHit.
	Folder *Node
}

// Navigate walks the tree along a slash-separated, percent-encoded path.
// Segments are split on '/', empty segments are discarded, and each
// remaining segment is percent-decoded (lossy UTF-8) before lookup. An
// empty path (or a path with no non-empty segments) resolves to the root
// folder.
func Navigate(root *Node, path string) NavResult {
	segments := splitPath(path)
	if len(segments) == 0 {
		return NavResult{Kind: FolderHit, Folder: root}
	}

	cur := root
	for i, seg := range segments {
		child, ok := cur.Children[seg]
		if !ok {
			return NavResult{Kind: NotFound}
		}
		if child.IsFile() {
			if i == len(segments)-1 {
				return NavResult{Kind: FileHit, Name: seg, File: child.File}
			}
			return NavResult{Kind: NotFound}
		}
		cur = child
	}

	return NavResult{Kind: FolderHit, Folder: cur}
}

func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		decoded, err := url.PathUnescape(s)
		if err != nil {
			// Lossy percent-decoding: fall back to the raw segment rather
			// than rejecting the whole request over one bad escape.
			decoded = s
		}
		segments = append(segments, decoded)
	}
	return segments
}

// Entry describes one child of a folder for listing purposes.
type Entry struct {
	Name   string
	IsFile bool
	File   *types.FileInfo
}

// Listing returns the children of a folder node as a slice of Entry. Order
// follows Go map iteration and is unspecified, matching spec.md's
// "Iteration order is not specified".
func Listing(folder *Node) []Entry {
	entries := make([]Entry, 0, len(folder.Children))
	for name, child := range folder.Children {
		if child.IsFile() {
			entries = append(entries, Entry{Name: name, IsFile: true, File: child.File})
		} else {
			entries = append(entries, Entry{Name: name, IsFile: false})
		}
	}
	return entries
}

// Compose builds the exposed root tree combining the two named subtrees:
// "shinnku" maps to shinnkuTree as-is, "galgame0" maps to the path
// 合集系列/浮士德galgame游戏合集 inside galgame0Tree (or an empty subtree if
// that path is absent).
func Compose(shinnkuTree, galgame0Tree *Node) *Node {
	root := newFolder()
	root.Children["shinnku"] = shinnkuTree

	galgame0Sub := newFolder()
	if outer, ok := galgame0Tree.Children["合集系列"]; ok && !outer.IsFile() {
		if inner, ok := outer.Children["浮士德galgame游戏合集"]; ok && !inner.IsFile() {
			galgame0Sub = inner
		}
	}
	root.Children["galgame0"] = galgame0Sub

	return root
}
