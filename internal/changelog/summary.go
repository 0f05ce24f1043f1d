package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/masmgr/autochangelog/internal/git"
)

const (
	headingDateLayout = "2006-01-02"
	commitDateLayout  = "2006-01-02"
)

// LatestCommitLabel marks the newest hash inside a section. It differs from
// StateLabel so that old sections never count as state markers.
const LatestCommitLabel = "LATEST_COMMIT:"

// Summaries holds optional generated text for a section.
type Summaries struct {
	Overall string
	Modules map[string]string // keyed by module name
}

// BuildSummary renders one changelog section for commits (newest first).
//
// Commits are not attributed to modules: every module lists every commit.
func BuildSummary(modules []string, commits []git.Commit, now time.Time, summaries *Summaries) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", now.Format(headingDateLayout))
	if len(commits) > 0 {
		fmt.Fprintf(&b, "<!-- %s %s -->\n\n", LatestCommitLabel, commits[0].Hash)
	}
	fmt.Fprintf(&b, "%s\n", aggregateSentence(len(commits), len(modules)))

	if summaries != nil && strings.TrimSpace(summaries.Overall) != "" {
		fmt.Fprintf(&b, "\n**Overview**\n\n%s\n", strings.TrimSpace(summaries.Overall))
	}

	for _, module := range modules {
		fmt.Fprintf(&b, "\n### %s\n\n", module)

		if summaries != nil {
			if text := strings.TrimSpace(summaries.Modules[module]); text != "" {
				fmt.Fprintf(&b, "%s\n\n", text)
			}
		}

		if len(commits) == 0 {
			b.WriteString("_No changes._\n")
			continue
		}
		for _, c := range commits {
			fmt.Fprintf(&b, "- `%s` %s (%s, %s)\n",
				c.Short(), escapeMarkdown(c.Subject), escapeMarkdown(c.Author), c.Date.Format(commitDateLayout))
		}
	}

	return b.String()
}

func aggregateSentence(commitCount, moduleCount int) string {
	return fmt.Sprintf("This update includes %s across %s.",
		plural(commitCount, "commit", "commits"),
		plural(moduleCount, "module", "modules"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"<", "&lt;",
	)
	return replacer.Replace(s)
}
