package cmd

import (
	"fmt"
	"io"

	"github.com/masmgr/autochangelog/internal/output"
	"github.com/urfave/cli/v2"
)

// StatusCmd returns the status command.
func StatusCmd(deps Deps) *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json)",
			Value:   "console",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of commits to show (0 for all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:  "status",
		Usage: "List commits not yet recorded in the changelog",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return statusAction(c, deps)
		},
	}
}

func statusAction(c *cli.Context, deps Deps) error {
	con := output.NewConsole(deps.Stdout, deps.Stderr)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ctx, err := NewCommandContext(c, deps, cfg)
	if err != nil {
		return err
	}

	result, err := ctx.FilterCommits(con)
	if err != nil {
		return err
	}

	report := output.NewPendingReport(ctx.RepoPath, cfg.OutputFile, ctx.LastCommit, ctx.Commits, result, deps.Now())
	opts := outputOptions(c)

	w, closer, err := output.OpenOutput(opts.OutputPath, deps.Stdout)
	if err != nil {
		return err
	}
	writer := output.NewPendingReportWriter(opts.Format)
	return writeAndClose(w, closer, func(w io.Writer) error {
		return writer.Write(w, report, opts)
	})
}

// writeAndClose runs write on w, then closes closer when it is not nil.
// A close failure is returned when the write itself succeeded.
func writeAndClose(w io.Writer, closer io.Closer, write func(io.Writer) error) (err error) {
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close report: %w", cerr)
			}
		}()
	}
	return write(w)
}

// outputOptions creates OutputOptions from CLI flags.
func outputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     output.ParseFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
