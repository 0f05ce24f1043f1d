package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/masmgr/autochangelog/internal/filter"
)

// Console prints user-facing status lines.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// NewConsole creates a Console writing to out and err.
func NewConsole(out, err io.Writer) *Console {
	return &Console{Out: out, Err: err}
}

// Printf writes plain text to Out.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Success prints a green check line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.Out, color.GreenString("✓ "+format, args...))
}

// Info prints a cyan line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.Out, color.CyanString(format, args...))
}

// Warn prints a yellow line on Err.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.Err, color.YellowString("Warning: "+format, args...))
}

// Failure prints a red cross line on Err.
func (c *Console) Failure(format string, args ...any) {
	fmt.Fprintln(c.Err, color.RedString("✗ "+format, args...))
}

// ConsolePendingWriter writes pending commit reports as a table.
type ConsolePendingWriter struct{}

// Write outputs the pending commit report as a table.
func (cw *ConsolePendingWriter) Write(w io.Writer, report *PendingReport, options OutputOptions) error {
	fmt.Fprintln(w, color.GreenString("Pending Changelog Commits"))
	fmt.Fprintf(w, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(w, "Changelog: %s\n", report.OutputFile)
	if report.LastCommit != "" {
		fmt.Fprintf(w, "Last recorded commit: %s\n", report.LastCommit)
	} else {
		fmt.Fprintln(w, "Last recorded commit: none (full history)")
	}
	fmt.Fprintf(w, "Pending commits: %d (%d ignored for summarization)\n\n", len(report.Items), report.IgnoredCount())

	if len(report.Items) == 0 {
		fmt.Fprintln(w, "No new commits.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHA\tDate\tAuthor\tMessage\tFilter")

	for i, item := range limitTop(report.Items, options.Top) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			item.Commit.Short(),
			item.Commit.Date.Format(reportDateLayout),
			item.Commit.Author,
			truncateMessage(item.Commit.Subject, 50),
			reasonLabel(item.Ignored),
		)
	}

	return tw.Flush()
}

func reasonLabel(reason filter.Reason) string {
	if reason == "" {
		return color.GreenString("kept")
	}
	return color.YellowString("ignored (%s)", reason)
}
