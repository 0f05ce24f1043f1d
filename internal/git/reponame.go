package git

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ResolveRepoName derives a project name from the origin remote of the
// repository containing dir, e.g. https://github.com/user/repo.git -> repo.
// When there is no repository, no origin or no usable URL it falls back to
// the base name of dir. It never fails.
func ResolveRepoName(dir string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		absDir = dir
	}
	fallback := filepath.Base(absDir)

	repo, err := git.PlainOpenWithOptions(absDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("repository name from directory", "dir", absDir, "reason", err)
		return fallback
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		slog.Debug("repository name from directory", "dir", absDir, "reason", err)
		return fallback
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return fallback
	}

	if name := RepoNameFromURL(urls[0]); name != "" {
		return name
	}
	return fallback
}

// RepoNameFromURL extracts the last path segment of a remote URL and strips
// a trailing ".git". It handles URL and scp-like (git@host:user/repo) forms.
func RepoNameFromURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/")
	if i := strings.LastIndexAny(url, "/:"); i != -1 {
		url = url[i+1:]
	}
	return strings.TrimSuffix(url, ".git")
}
