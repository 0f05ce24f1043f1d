package git

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// FieldSeparator splits the fields of one log line. It is a plain token with
// no escaping: the subject is the last field so it may contain the token, but
// an author name containing it would shift the fields.
const FieldSeparator = " ||| "

const logDateLayout = time.RFC3339

// logFormat prints hash, short hash, author, strict ISO author date and subject.
var logFormat = strings.Join([]string{"%H", "%h", "%an", "%aI", "%s"}, FieldSeparator)

const logFields = 5

// Fetcher lists commits by running git log through a Runner.
type Fetcher struct {
	runner   Runner
	repoPath string
}

// NewFetcher creates a fetcher for the repository at repoPath.
func NewFetcher(runner Runner, repoPath string) *Fetcher {
	if repoPath == "" {
		repoPath = "."
	}
	return &Fetcher{runner: runner, repoPath: repoPath}
}

// LogArgs returns the git arguments used to list commits after since.
// An empty since requests the whole history. Colour and signature output
// are disabled so user configuration cannot add lines ParseLog rejects.
func LogArgs(repoPath, since string) []string {
	args := []string{"-C", repoPath, "log"}
	if since != "" {
		args = append(args, since+"..HEAD")
	}
	return append(args, "--no-color", "--no-show-signature", "--pretty=format:"+logFormat)
}

// FetchCommits returns the commits made after since, newest first.
// Runner failures are returned unchanged so that a failed fetch is never
// mistaken for an empty one.
func (f *Fetcher) FetchCommits(ctx context.Context, since string) ([]Commit, error) {
	out, err := f.runner.Run(ctx, LogArgs(f.repoPath, since)...)
	if err != nil {
		return nil, err
	}

	commits, err := ParseLog(out)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched commits", "repo", f.repoPath, "since", since, "count", len(commits))
	return commits, nil
}

// ParseLog parses git log output produced with the Fetcher's format.
// Order is preserved.
func ParseLog(out string) ([]Commit, error) {
	var commits []Commit

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, FieldSeparator, logFields)
		if len(fields) < logFields {
			return nil, fmt.Errorf("unexpected git log line format: %q", line)
		}

		when, err := time.Parse(logDateLayout, strings.TrimSpace(fields[3]))
		if err != nil {
			return nil, fmt.Errorf("parse author date: %w", err)
		}

		commits = append(commits, Commit{
			Hash:      strings.TrimSpace(fields[0]),
			ShortHash: strings.TrimSpace(fields[1]),
			Author:    strings.TrimSpace(fields[2]),
			Date:      when,
			Subject:   strings.TrimSpace(fields[4]),
		})
	}

	return commits, nil
}
