package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/classmate/internal/config"
	cmerrors "github.com/alexisbeaulieu97/classmate/pkg/errors"
)

// FetchOptions describes a catalog repository to clone.
type FetchOptions struct {
	URL         string `validate:"required,git_url"`
	Destination string `validate:"required"`
	Branch      string
	Depth       int `validate:"omitempty,min=0"`
}

// FetchResult reports what Fetch did.
type FetchResult struct {
	Destination string
	Head        string
	Cloned      bool
	Catalogs    []string
}

// Fetch clones a repository holding catalogs into Destination. An existing clone of the same
// URL is reused; any other existing non-empty directory is an error.
func Fetch(ctx context.Context, opts FetchOptions) (*FetchResult, error) {
	if err := config.GetValidator().Struct(opts); err != nil {
		return nil, cmerrors.NewValidationError("fetch", err.Error(), err)
	}

	result := &FetchResult{Destination: opts.Destination}

	repo, err := git.PlainOpen(opts.Destination)
	switch {
	case err == nil:
		if url := originURL(repo); url != opts.URL {
			return nil, fmt.Errorf("destination %s is a clone of %q, not %q", opts.Destination, url, opts.URL)
		}
	case nonEmptyDir(opts.Destination):
		return nil, fmt.Errorf("destination %s exists and is not a git repository", opts.Destination)
	default:
		if err := os.MkdirAll(filepath.Dir(opts.Destination), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create destination directory: %w", err)
		}

		cloneOpts := &git.CloneOptions{URL: opts.URL}
		if opts.Depth > 0 {
			cloneOpts.Depth = opts.Depth
		}
		if opts.Branch != "" {
			cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
			cloneOpts.SingleBranch = true
		}

		repo, err = git.PlainCloneContext(ctx, opts.Destination, false, cloneOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to clone repository: %w", err)
		}
		result.Cloned = true
	}

	if head, err := repo.Head(); err == nil {
		result.Head = head.Name().Short()
	}

	catalogs, err := findCatalogs(opts.Destination)
	if err != nil {
		return nil, err
	}
	result.Catalogs = catalogs
	return result, nil
}

func originURL(repo *git.Repository) string {
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return ""
	}
	return remote.Config().URLs[0]
}

func nonEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}

// findCatalogs lists YAML files below root, relative to it, skipping the .git directory.
func findCatalogs(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	sort.Strings(out)
	return out, nil
}
