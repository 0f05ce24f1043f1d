package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/git"
	"github.com/masmgr/autochangelog/internal/output"
	"github.com/masmgr/autochangelog/internal/prompt"
	"github.com/urfave/cli/v2"
)

// InitCmd returns the init command.
func InitCmd(deps Deps) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize changelog configuration file",
		Flags: commonFlags(),
		Action: func(c *cli.Context) error {
			return initAction(c, deps)
		},
	}
}

func initAction(c *cli.Context, deps Deps) error {
	con := output.NewConsole(deps.Stdout, deps.Stderr)
	ask := prompt.New(deps.Stdin, deps.Stdout)

	configPath := c.String("config")
	repoPath := c.String("repo")

	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := ask.Confirm(fmt.Sprintf("Configuration file '%s' already exists. Overwrite?", configPath), false)
		if err != nil {
			return err
		}
		if !overwrite {
			con.Printf("Initialization cancelled.\n")
			return nil
		}
	}

	isMonorepo, err := ask.Confirm("Is this a monorepo with multiple services/modules?", false)
	if err != nil {
		return err
	}

	template, err := config.GenerateTemplate(isMonorepo, git.ResolveRepoName(repoPath), repoPath)
	if err != nil {
		return fmt.Errorf("failed to detect modules: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(template), 0o644); err != nil {
		con.Failure("Error writing configuration file: %v", err)
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	con.Success("Created configuration file: %s", configPath)
	con.Printf("\nNext steps:\n")
	con.Printf("  1. Review and customize %s\n", configPath)
	con.Printf("  2. Run 'autochangelog generate' to create your changelog\n")
	return nil
}
