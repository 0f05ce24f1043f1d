package git

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TouchedPathsReader looks up the files a commit changed, using go-git
// instead of a git subprocess.
type TouchedPathsReader struct {
	repo *git.Repository
}

// NewTouchedPathsReader opens the repository containing repoPath.
func NewTouchedPathsReader(repoPath string) (*TouchedPathsReader, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}
	return &TouchedPathsReader{repo: repo}, nil
}

// Paths returns the sorted paths changed by the commit with the given hash.
// Renames report both the old and the new path. For a root commit every
// file in its tree counts as touched.
func (r *TouchedPathsReader) Paths(hash string) ([]string, error) {
	c, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	if c.NumParents() == 0 {
		err := tree.Files().ForEach(func(f *object.File) error {
			seen[f.Name] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return sortedKeys(seen), nil
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := parentTree.Diff(tree)
	if err != nil {
		return nil, err
	}

	for _, change := range changes {
		if change.From.Name != "" {
			seen[change.From.Name] = struct{}{}
		}
		if change.To.Name != "" {
			seen[change.To.Name] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// Annotate returns a copy of commits with Files filled in.
func (r *TouchedPathsReader) Annotate(commits []Commit) ([]Commit, error) {
	out := make([]Commit, len(commits))
	for i, c := range commits {
		paths, err := r.Paths(c.Hash)
		if err != nil {
			return nil, err
		}
		c.Files = paths
		out[i] = c
	}
	return out, nil
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
