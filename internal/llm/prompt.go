package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/git"
)

// BuildModulePrompt asks for the summary of one module.
func BuildModulePrompt(instructions, module string, commits []git.Commit) string {
	var b strings.Builder
	writeInstructions(&b, instructions)
	fmt.Fprintf(&b, "Module: %s\n\n", module)
	writeCommits(&b, commits)
	return b.String()
}

// BuildOverallPrompt asks for the summary across all modules.
func BuildOverallPrompt(instructions string, modules []string, commits []git.Commit) string {
	var b strings.Builder
	writeInstructions(&b, instructions)
	fmt.Fprintf(&b, "Modules: %s\n\n", strings.Join(modules, ", "))
	writeCommits(&b, commits)
	return b.String()
}

func writeInstructions(b *strings.Builder, instructions string) {
	if s := strings.TrimSpace(instructions); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
}

func writeCommits(b *strings.Builder, commits []git.Commit) {
	b.WriteString("Commits (newest first):\n")
	for _, c := range commits {
		fmt.Fprintf(b, "- %s %s (%s)\n", c.Short(), c.Subject, valueOr(c.Author, "unknown"))
	}
}

func valueOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}

// Result holds generated summaries.
type Result struct {
	Overall string
	Modules map[string]string
}

// Summarize asks the client for one summary per module and one overall
// summary of commits. No call is made when commits is empty.
func Summarize(ctx context.Context, client Client, cfg config.LLMConfig, modules []string, commits []git.Commit) (*Result, error) {
	result := &Result{Modules: make(map[string]string, len(modules))}
	if len(commits) == 0 {
		return result, nil
	}

	for _, module := range modules {
		text, err := client.Complete(ctx, BuildModulePrompt(cfg.ModuleSummaryPrompt, module, commits))
		if err != nil {
			return nil, fmt.Errorf("summarize module %s: %w", module, err)
		}
		result.Modules[module] = strings.TrimSpace(text)
	}

	text, err := client.Complete(ctx, BuildOverallPrompt(cfg.OverallSummaryPrompt, modules, commits))
	if err != nil {
		return nil, fmt.Errorf("summarize overall: %w", err)
	}
	result.Overall = strings.TrimSpace(text)

	return result, nil
}
