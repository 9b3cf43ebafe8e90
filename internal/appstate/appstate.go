// Package appstate assembles the process-wide, read-only state built once
// at start-up (C6 bootstrap in spec.md): the two catalogues, their trees,
// the composed frontend tree, and the flat search index.
package appstate

import (
	"golang.org/x/sync/errgroup"

	"github.com/shinnku-nikaidou/shinnku-com/internal/catalogue"
	"github.com/shinnku-nikaidou/shinnku-com/internal/searchindex"
	"github.com/shinnku-nikaidou/shinnku-com/internal/tree"
	"github.com/shinnku-nikaidou/shinnku-com/internal/types"
)

const galgame0SearchPrefix = "合集系列/浮士德galgame游戏合集"

// State is the bootstrap output: built once, read by every request
// goroutine thereafter without locking.
type State struct {
	Tree        *tree.Node
	SearchIndex []searchindex.Item
}

// Bootstrap loads the two bucket catalogues from disk, builds their trees,
// composes the exposed frontend tree, and builds the search index from the
// shinnku catalogue plus the galgame0 catalogue filtered to its fauststyle
// subtree. Any catalogue load failure is a fatal bootstrap error.
//
// The two catalogues are independent files; loading them concurrently via
// errgroup halves the bootstrap I/O wait on a cold start with no added
// complexity at the call site.
func Bootstrap(shinnkuPath, galgame0Path string) (*State, error) {
	var shinnkuFiles, galgame0Files []types.FileInfo

	var g errgroup.Group
	g.Go(func() error {
		files, err := catalogue.Load(shinnkuPath)
		shinnkuFiles = files
		return err
	})
	g.Go(func() error {
		files, err := catalogue.Load(galgame0Path)
		galgame0Files = files
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	shinnkuTree := tree.Build(shinnkuFiles)
	galgame0Tree := tree.Build(galgame0Files)
	composed := tree.Compose(shinnkuTree, galgame0Tree)

	galgame0Filtered := catalogue.FilterByPrefix(galgame0Files, galgame0SearchPrefix)
	index := searchindex.Build(shinnkuFiles, galgame0Filtered)

	return &State{
		Tree:        composed,
		SearchIndex: index,
	}, nil
}
