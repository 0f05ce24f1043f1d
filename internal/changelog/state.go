// Package changelog reads and writes the changelog file: the state marker
// that records the last processed commit, and the dated Markdown sections
// prepended on every run.
package changelog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// StateLabel identifies the state marker comment.
const StateLabel = "CHANGELOG_STATE:"

var (
	// The label must match exactly; whitespace around the hash is free.
	stateReadPattern = regexp.MustCompile(`<!--\s*` + regexp.QuoteMeta(StateLabel) + `\s*([0-9a-fA-F]{40})\s*-->`)
	// Any marker, whatever it holds, is removed before a rewrite. It may span
	// lines wherever stateReadPattern allows whitespace.
	stateLinePattern = regexp.MustCompile(`<!--\s*` + regexp.QuoteMeta(StateLabel) + `[^>]*?-->[ \t]*\r?\n?`)
)

// StateMarker renders the marker line for hash, without a trailing newline.
func StateMarker(hash string) string {
	return fmt.Sprintf("<!-- %s %s -->", StateLabel, hash)
}

// ReadLastCommitHash returns the hash recorded in the changelog at path.
// A missing file or a file without a marker yields ("", false, nil).
func ReadLastCommitHash(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read changelog: %w", err)
	}
	hash, ok := ParseStateMarker(string(data))
	return hash, ok, nil
}

// ParseStateMarker extracts the hash from the first state marker in content.
func ParseStateMarker(content string) (string, bool) {
	m := stateReadPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// StripStateMarkers removes every marker line from content. When content
// began with a marker, the blank separator line written after it goes too.
// All other text is kept as is.
func StripStateMarkers(content string) string {
	locs := stateLinePattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content
	}

	stripped := stateLinePattern.ReplaceAllString(content, "")
	if locs[0][0] == 0 {
		if strings.HasPrefix(stripped, "\r\n") {
			stripped = stripped[2:]
		} else {
			stripped = strings.TrimPrefix(stripped, "\n")
		}
	}
	return stripped
}

// Render builds the new file content: marker, blank line, summary, then the
// previous content with its marker removed.
func Render(previous, hash, summary string) string {
	var b strings.Builder
	b.WriteString(StateMarker(hash))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(summary, "\n"))
	b.WriteString("\n")

	if rest := StripStateMarkers(previous); rest != "" {
		b.WriteString("\n")
		b.WriteString(rest)
	}
	return b.String()
}

// WriteEntry prepends summary to the changelog at path and replaces its
// marker with hash. The whole file is rewritten.
func WriteEntry(path, hash, summary string) error {
	var previous string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		previous = string(data)
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("read changelog: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create changelog directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(Render(previous, hash, summary)), 0o644); err != nil {
		return fmt.Errorf("write changelog: %w", err)
	}

	slog.Debug("changelog written", "path", path, "hash", hash)
	return nil
}
