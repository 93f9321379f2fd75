package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/utils"
)

// Git is a manual source backed by a git repository. Resolve clones it
// shallowly into a temp dir; Cleanup removes the clone.
type Git struct {
	url    string
	ref    string
	subdir string
	logger *utils.Logger

	cloneDir string
}

// GitOptions configures a git source
type GitOptions struct {
	// URL is the clone URL
	URL string
	// Ref is an optional branch or tag name
	Ref string
	// Subdir is the manual root inside the repository (e.g. docs/manual)
	Subdir string
	// Logger is optional
	Logger *utils.Logger
}

// NewGit creates a git source
func NewGit(opts GitOptions) *Git {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Git{
		url:    opts.URL,
		ref:    opts.Ref,
		subdir: opts.Subdir,
		logger: logger.WithComponent("source.git"),
	}
}

// Name returns the source name
func (g *Git) Name() string {
	return "git"
}

// Resolve clones the repository and returns the manual root inside it
func (g *Git) Resolve(ctx context.Context) (string, error) {
	destDir, err := os.MkdirTemp("", "manualgen-git-*")
	if err != nil {
		return "", domain.NewSourceError(g.Name(), err)
	}
	g.cloneDir = destDir

	g.logger.Info().Str("url", g.url).Msg("Cloning manual repository")

	cloneOpts := &git.CloneOptions{
		URL:      g.url,
		Depth:    1, // Shallow clone for speed
		Progress: nil,
	}
	if g.ref != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(g.ref)
		cloneOpts.SingleBranch = true
	}

	// Use HTTPS auth if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cloneOpts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}

	if _, err := git.PlainCloneContext(ctx, destDir, false, cloneOpts); err != nil {
		return "", domain.NewSourceError(g.Name(), fmt.Errorf("%w: %v", domain.ErrCloneFailed, err))
	}

	root := destDir
	if g.subdir != "" {
		root = filepath.Join(destDir, g.subdir)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", domain.NewSourceError(g.Name(), domain.ErrRootNotFound)
	}
	if !info.IsDir() {
		return "", domain.NewSourceError(g.Name(), domain.ErrNotADirectory)
	}
	return root, nil
}

// Cleanup removes the temporary clone
func (g *Git) Cleanup() error {
	if g.cloneDir == "" {
		return nil
	}
	return os.RemoveAll(g.cloneDir)
}
