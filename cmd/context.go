package cmd

import (
	"fmt"
	"log/slog"

	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/changelog"
	"github.com/masmgr/autochangelog/internal/filter"
	"github.com/masmgr/autochangelog/internal/git"
	"github.com/masmgr/autochangelog/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup of generate and status.
type CommandContext struct {
	Config     *config.Config
	RepoPath   string
	LastCommit string // Empty when the changelog has no state marker
	Commits    []git.Commit
}

// NewCommandContext reads the changelog state and fetches the commits made
// since the recorded one.
func NewCommandContext(c *cli.Context, deps Deps, cfg *config.Config) (*CommandContext, error) {
	repoPath := c.String("repo")

	last, found, err := changelog.ReadLastCommitHash(cfg.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read changelog state: %w", err)
	}
	if found {
		slog.Debug("resuming from state marker", "hash", last)
	}

	fetcher := git.NewFetcher(deps.Runner, repoPath)
	commits, err := fetcher.FetchCommits(c.Context, last)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return &CommandContext{
		Config:     cfg,
		RepoPath:   repoPath,
		LastCommit: last,
		Commits:    commits,
	}, nil
}

// HasCommits returns true if commits were found since the last run.
func (ctx *CommandContext) HasCommits() bool {
	return len(ctx.Commits) > 0
}

// PrintNoCommitsMessage prints a message when nothing is pending.
func (ctx *CommandContext) PrintNoCommitsMessage(con *output.Console) {
	if ctx.LastCommit != "" {
		con.Info("No new commits since %s.", git.Commit{Hash: ctx.LastCommit}.Short())
		return
	}
	con.Info("No new commits found.")
}

// FilterCommits applies the configured filter rules. Touched paths are read
// only when a path rule exists; if they cannot be read, path rules are
// skipped with a warning.
func (ctx *CommandContext) FilterCommits(con *output.Console) (*filter.Result, error) {
	f, err := filter.New(ctx.Config.Filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter configuration: %w", err)
	}

	commits := ctx.Commits
	if f.NeedsPaths() && len(commits) > 0 {
		annotated, err := annotatePaths(ctx.RepoPath, commits)
		if err != nil {
			con.Warn("cannot read touched paths, ignore_paths_only skipped: %v", err)
		} else {
			commits = annotated
		}
	}

	result := f.Apply(commits)
	slog.Debug("filtered commits", "kept", len(result.Kept), "ignored", len(result.Ignored))
	return result, nil
}

func annotatePaths(repoPath string, commits []git.Commit) ([]git.Commit, error) {
	reader, err := git.NewTouchedPathsReader(repoPath)
	if err != nil {
		return nil, err
	}
	return reader.Annotate(commits)
}
