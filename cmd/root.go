package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/git"
	"github.com/masmgr/autochangelog/internal/llm"
	"github.com/urfave/cli/v2"
)

// Version is the application version reported by --version.
var Version = "0.1.0"

// Deps holds the collaborators commands reach outside the process with.
// Tests replace them to avoid real git, terminals and network calls.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Runner executes git.
	Runner git.Runner
	// CredentialSource supplies LLM credentials; called only with --summarize.
	CredentialSource func() (llm.CredentialSource, error)
	// NewLLMClient builds the summarization client.
	NewLLMClient func(creds llm.Credentials, model string) llm.Client
	// Now returns the date used for changelog headings.
	Now func() time.Time
}

// DefaultDeps wires the process streams, the git binary and the environment.
func DefaultDeps() Deps {
	return Deps{
		Stdin:  os.Stdin,
		Stdout: color.Output,
		Stderr: color.Error,
		Runner: git.NewExecRunner(),
		CredentialSource: func() (llm.CredentialSource, error) {
			return llm.NewEnvSource()
		},
		NewLLMClient: func(creds llm.Credentials, model string) llm.Client {
			return llm.NewClient(creds, model)
		},
		Now: time.Now,
	}
}

// App creates the CLI application.
func App() *cli.App {
	return NewApp(DefaultDeps())
}

// NewApp creates the CLI application around deps.
func NewApp(deps Deps) *cli.App {
	return &cli.App{
		Name:      "autochangelog",
		Usage:     "Generate changelog entries from git history",
		Version:   Version,
		Reader:    deps.Stdin,
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Commands: []*cli.Command{
			InitCmd(deps),
			GenerateCmd(deps),
			StatusCmd(deps),
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(deps.Stderr, c.Bool("verbose"))
			return nil
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   config.DefaultConfigPath,
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig loads the configuration named by --config.
// Configuration errors are returned as is; their message is user-facing.
func loadConfig(c *cli.Context) (*config.Config, error) {
	return config.LoadConfig(c.String("config"))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintln(color.Error, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
