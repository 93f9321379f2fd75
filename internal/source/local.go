// Package source resolves where the manual tree comes from: a local
// directory or a shallow git clone.
package source

import (
	"context"
	"os"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Local is a manual source backed by a directory on disk
type Local struct {
	root string
}

// NewLocal creates a local source for the given root directory
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Name returns the source name
func (l *Local) Name() string {
	return "local"
}

// Resolve validates and returns the manual root directory
func (l *Local) Resolve(ctx context.Context) (string, error) {
	if utils.DirExists(l.root) {
		return l.root, nil
	}
	if _, err := os.Stat(l.root); err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewSourceError(l.Name(), domain.ErrRootNotFound)
		}
		return "", domain.NewSourceError(l.Name(), err)
	}
	return "", domain.NewSourceError(l.Name(), domain.ErrNotADirectory)
}

// Cleanup is a no-op for local sources
func (l *Local) Cleanup() error {
	return nil
}
