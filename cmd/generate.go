package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/changelog"
	"github.com/masmgr/autochangelog/internal/llm"
	"github.com/masmgr/autochangelog/internal/output"
	"github.com/urfave/cli/v2"
)

// GenerateCmd returns the generate command.
func GenerateCmd(deps Deps) *cli.Command {
	flags := append(commonFlags(),
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Show what would be generated without writing to file",
		},
		&cli.BoolFlag{
			Name:  "summarize",
			Usage: "Add LLM-generated summaries (needs API credentials)",
		},
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate changelog from git history",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return generateAction(c, deps)
		},
	}
}

func generateAction(c *cli.Context, deps Deps) error {
	con := output.NewConsole(deps.Stdout, deps.Stderr)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	con.Success("Loaded configuration from %s", c.String("config"))
	con.Printf("  Output file: %s\n", cfg.OutputFile)
	con.Printf("  Modules: %s\n", strings.Join(cfg.Modules, ", "))

	dryRun := c.Bool("dry-run")
	if dryRun {
		con.Printf("\n(Dry run mode - no files will be written)\n")
	}

	// Credentials are checked before any git or network work.
	var client llm.Client
	if c.Bool("summarize") {
		client, err = newSummaryClient(deps, cfg)
		if err != nil {
			return err
		}
	}

	ctx, err := NewCommandContext(c, deps, cfg)
	if err != nil {
		return err
	}
	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage(con)
		return nil
	}
	con.Info("Found %d new commit(s).", len(ctx.Commits))

	var summaries *changelog.Summaries
	if client != nil {
		summaries, err = summarize(c, ctx, client, con)
		if err != nil {
			return err
		}
	}

	latest := ctx.Commits[0].Hash
	summary := changelog.BuildSummary(cfg.Modules, ctx.Commits, deps.Now(), summaries)

	if dryRun {
		con.Printf("\n%s\n\n%s", changelog.StateMarker(latest), summary)
		return nil
	}

	if err := changelog.WriteEntry(cfg.OutputFile, latest, summary); err != nil {
		return err
	}
	con.Success("Updated %s (latest commit %s)", cfg.OutputFile, ctx.Commits[0].Short())
	return nil
}

func newSummaryClient(deps Deps, cfg *config.Config) (llm.Client, error) {
	src, err := deps.CredentialSource()
	if err != nil {
		return nil, err
	}
	creds, err := llm.ResolveCredentials(src)
	if err != nil {
		if errors.Is(err, llm.ErrNoCredentials) {
			return nil, &config.ConfigError{Message: err.Error(), Err: err}
		}
		return nil, err
	}
	return deps.NewLLMClient(creds, cfg.LLM.Model), nil
}

func summarize(c *cli.Context, ctx *CommandContext, client llm.Client, con *output.Console) (*changelog.Summaries, error) {
	result, err := ctx.FilterCommits(con)
	if err != nil {
		return nil, err
	}
	if len(result.Kept) == 0 {
		con.Info("All new commits match filter rules; skipping summaries.")
		return nil, nil
	}

	con.Info("Summarizing %d commit(s) with %s...", len(result.Kept), ctx.Config.LLM.Model)
	generated, err := llm.Summarize(c.Context, client, ctx.Config.LLM, ctx.Config.Modules, result.Kept)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize changes: %w", err)
	}
	return &changelog.Summaries{Overall: generated.Overall, Modules: generated.Modules}, nil
}
