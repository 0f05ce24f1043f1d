// Package filter decides which commits are noise for summarization.
package filter

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/git"
)

// Reason names the rule that ignored a commit.
type Reason string

const (
	ReasonPrefix    Reason = "prefix"
	ReasonKeyword   Reason = "keyword"
	ReasonPathsOnly Reason = "paths-only"
)

// Result holds the outcome of filtering a list of commits.
type Result struct {
	// Kept are the significant commits, in input order.
	Kept []git.Commit
	// Ignored maps the hash of every filtered commit to the rule that matched.
	Ignored map[string]Reason
}

// Filter matches commit subjects and touched paths against the configured rules.
type Filter struct {
	prefixes []string
	keywords []string
	globs    []string
}

// New creates a Filter from the configuration. Prefixes and keywords are
// matched case-insensitively. Returns an error if a path glob is invalid.
func New(cfg config.FilterConfig) (*Filter, error) {
	f := &Filter{}
	for _, p := range cfg.IgnorePrefixes {
		if p = strings.TrimSpace(p); p != "" {
			f.prefixes = append(f.prefixes, strings.ToLower(p))
		}
	}
	for _, k := range cfg.IgnoreKeywords {
		if k = strings.TrimSpace(k); k != "" {
			f.keywords = append(f.keywords, strings.ToLower(k))
		}
	}
	for _, g := range cfg.IgnorePathsOnly {
		g = normalizeGlob(g)
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("invalid ignore_paths_only pattern %q", g)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

// NeedsPaths reports whether any rule looks at touched paths, so callers
// know whether to fill git.Commit.Files before filtering.
func (f *Filter) NeedsPaths() bool {
	return len(f.globs) > 0
}

// Match returns the rule that marks the commit as noise, if any.
// A commit with unknown touched paths is never ignored by path rules.
func (f *Filter) Match(c git.Commit) (Reason, bool) {
	subject := strings.ToLower(strings.TrimSpace(c.Subject))

	for _, p := range f.prefixes {
		if strings.HasPrefix(subject, p) {
			return ReasonPrefix, true
		}
	}
	for _, k := range f.keywords {
		if strings.Contains(subject, k) {
			return ReasonKeyword, true
		}
	}
	if len(f.globs) > 0 && len(c.Files) > 0 && f.onlyIgnoredPaths(c.Files) {
		return ReasonPathsOnly, true
	}
	return "", false
}

// Apply splits commits into kept and ignored ones.
func (f *Filter) Apply(commits []git.Commit) *Result {
	result := &Result{
		Kept:    make([]git.Commit, 0, len(commits)),
		Ignored: make(map[string]Reason),
	}
	for _, c := range commits {
		if reason, ok := f.Match(c); ok {
			result.Ignored[c.Hash] = reason
			continue
		}
		result.Kept = append(result.Kept, c)
	}
	return result
}

func (f *Filter) onlyIgnoredPaths(files []string) bool {
	for _, file := range files {
		if !f.matchesGlob(file) {
			return false
		}
	}
	return true
}

func (f *Filter) matchesGlob(file string) bool {
	file = strings.ReplaceAll(file, "\\", "/")
	base := path.Base(file)
	for _, g := range f.globs {
		if ok, _ := doublestar.Match(g, file); ok {
			return true
		}
		// Slash-free patterns such as "*.md" apply at any depth.
		if !strings.Contains(g, "/") {
			if ok, _ := doublestar.Match(g, base); ok {
				return true
			}
		}
	}
	return false
}

// normalizeGlob turns a directory pattern like "docs/" into "docs/**".
func normalizeGlob(g string) string {
	g = strings.TrimSpace(g)
	g = strings.TrimPrefix(g, "./")
	if strings.HasSuffix(g, "/") {
		g += "**"
	}
	return g
}
