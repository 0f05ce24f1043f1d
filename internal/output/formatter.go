package output

import (
	"io"
	"time"

	"github.com/masmgr/autochangelog/internal/filter"
	"github.com/masmgr/autochangelog/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ PendingReportWriter = (*ConsolePendingWriter)(nil)
	_ PendingReportWriter = (*JSONPendingWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// ParseFormat maps a flag value to an OutputFormat, defaulting to console.
func ParseFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatConsole
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// PendingItem is a commit not yet recorded in the changelog.
type PendingItem struct {
	Commit git.Commit
	// Ignored names the filter rule that keeps the commit out of
	// summarization; empty when the commit is kept.
	Ignored filter.Reason
}

// PendingReport describes the commits a generate run would record.
type PendingReport struct {
	RepoPath    string
	OutputFile  string
	LastCommit  string // Empty when the changelog has no state marker
	GeneratedAt time.Time
	Items       []PendingItem
}

// IgnoredCount returns how many items a filter rule matched.
func (r *PendingReport) IgnoredCount() int {
	n := 0
	for _, item := range r.Items {
		if item.Ignored != "" {
			n++
		}
	}
	return n
}

// NewPendingReport pairs commits with the filter outcome. A nil result
// marks every commit as kept.
func NewPendingReport(repoPath, outputFile, lastCommit string, commits []git.Commit, result *filter.Result, now time.Time) *PendingReport {
	items := make([]PendingItem, len(commits))
	for i, c := range commits {
		items[i] = PendingItem{Commit: c}
		if result != nil {
			items[i].Ignored = result.Ignored[c.Hash]
		}
	}
	return &PendingReport{
		RepoPath:    repoPath,
		OutputFile:  outputFile,
		LastCommit:  lastCommit,
		GeneratedAt: now,
		Items:       items,
	}
}

// PendingReportWriter writes pending commit reports.
type PendingReportWriter interface {
	Write(w io.Writer, report *PendingReport, options OutputOptions) error
}

// NewPendingReportWriter creates a report writer for the specified format.
func NewPendingReportWriter(format OutputFormat) PendingReportWriter {
	switch format {
	case FormatJSON:
		return &JSONPendingWriter{}
	default:
		return &ConsolePendingWriter{}
	}
}
