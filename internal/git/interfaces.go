package git

import "context"

// Runner executes git with the given arguments and returns its standard output.
// Implementations return *CommandError when git exits non-zero.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CommitFetcher lists commits newer than a recorded position.
type CommitFetcher interface {
	FetchCommits(ctx context.Context, since string) ([]Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ Runner        = (*ExecRunner)(nil)
	_ Runner        = (*MockRunner)(nil)
	_ CommitFetcher = (*Fetcher)(nil)
)
