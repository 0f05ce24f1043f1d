package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONPendingWriter writes pending commit reports as JSON.
type JSONPendingWriter struct{}

// JSONPendingReport is the JSON output structure for pending commits.
type JSONPendingReport struct {
	RepoPath     string            `json:"repo"`
	OutputFile   string            `json:"outputFile"`
	LastCommit   *string           `json:"lastCommit,omitempty"`
	GeneratedAt  string            `json:"generatedAt"`
	TotalCommits int               `json:"totalCommits"`
	IgnoredCount int               `json:"ignoredCount"`
	Items        []JSONPendingItem `json:"items"`
}

// JSONPendingItem is the JSON output structure for a single commit.
type JSONPendingItem struct {
	SHA     string `json:"sha"`
	Short   string `json:"short"`
	When    string `json:"when"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Ignored string `json:"ignored,omitempty"`
}

// Write outputs the pending commit report as JSON.
func (jw *JSONPendingWriter) Write(w io.Writer, report *PendingReport, options OutputOptions) error {
	items := limitTop(report.Items, options.Top)

	jsonItems := make([]JSONPendingItem, len(items))
	for i, item := range items {
		jsonItems[i] = JSONPendingItem{
			SHA:     item.Commit.Hash,
			Short:   item.Commit.Short(),
			When:    item.Commit.Date.Format(time.RFC3339),
			Author:  item.Commit.Author,
			Subject: item.Commit.Subject,
			Ignored: string(item.Ignored),
		}
	}

	var last *string
	if report.LastCommit != "" {
		last = &report.LastCommit
	}

	return writeJSON(w, JSONPendingReport{
		RepoPath:     report.RepoPath,
		OutputFile:   report.OutputFile,
		LastCommit:   last,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Items),
		IgnoredCount: report.IgnoredCount(),
		Items:        jsonItems,
	})
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
