package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// excludedModuleDirs are top-level directories that never hold a module.
var excludedModuleDirs = map[string]struct{}{
	"venv":         {},
	"node_modules": {},
	"__pycache__":  {},
	"dist":         {},
	"build":        {},
	"htmlcov":      {},
	"vendor":       {},
}

// placeholderModules are emitted for a monorepo with no detectable modules.
var placeholderModules = []string{"service-a", "service-b", "shared-library"}

// DetectModules lists the top-level directories of rootDir that look like
// modules, sorted lexicographically. Hidden directories and dependency or build
// output directories are skipped.
func DetectModules(rootDir string) ([]string, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}

	modules := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, skip := excludedModuleDirs[name]; skip {
			continue
		}
		modules = append(modules, name)
	}

	sort.Strings(modules)
	return modules, nil
}

// GenerateTemplate builds the starter configuration document.
// For a monorepo the module list comes from rootDir; otherwise it is repoName.
func GenerateTemplate(isMonorepo bool, repoName, rootDir string) (string, error) {
	var modules []string
	if isMonorepo {
		detected, err := DetectModules(rootDir)
		if err != nil {
			return "", err
		}
		modules = detected
		if len(modules) == 0 {
			modules = placeholderModules
		}
	} else {
		modules = []string{repoName}
	}

	var lines strings.Builder
	for i, m := range modules {
		item, err := yamlScalar(m)
		if err != nil {
			return "", err
		}
		if i > 0 {
			lines.WriteString("\n")
		}
		lines.WriteString("  - ")
		lines.WriteString(item)
	}

	return strings.Replace(templateText, "{{MODULES}}", lines.String(), 1), nil
}

// yamlScalar renders name as a YAML string scalar. Plain names stay bare;
// names YAML would read as a comment, collection, null or number are quoted.
func yamlScalar(name string) (string, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("encode module name %q: %w", name, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

const templateText = `# Automated Changelog Configuration
# This file defines how the changelog generator analyzes your repository.

# Output file where the changelog will be written.
# The tool will prepend new entries to this file.
output_file: "CHANGELOG.md"

# List of modules/packages/services in your repository.
# For monorepos: Each top-level directory is typically a module.
# For single repos: Just list the repo name as a single module.
modules:
{{MODULES}}

# Filtering rules for commits.
# These help focus the changelog on significant changes by excluding noise.
filter:
  # Commits starting with these prefixes will be ignored for summarization.
  ignore_prefixes:
    - "chore:"
    - "docs:"
    - "test:"
    - "ci:"
    - "refactor:"
    - "style:"
    - "build:"

  # Commits containing these keywords in the subject will be ignored.
  ignore_keywords:
    - "typo"
    - "cleanup"
    - "formatting"
    - "[skip ci]"
    - "merge branch"
    - "merge pull request"

  # Commits ONLY touching files/paths matching these patterns will be ignored.
  # Use glob patterns. If a commit touches ANY file outside these patterns, it won't be filtered.
  ignore_paths_only:
    - "*.md"
    - "docs/"
    - "tests/"
    - ".github/"
    - "*.txt"

# LLM Configuration (optional customization)
# The tool uses these prompts to generate summaries when run with --summarize.
llm:
  # Model to use for summarization (default: claude-sonnet-4-5)
  model: "claude-sonnet-4-5"

  # System prompt for module-level summaries
  module_summary_prompt: |
    You are a technical writer creating changelog entries.
    Summarize the significant changes for this module in 2-4 concise bullet points.
    Focus on features, fixes, and breaking changes. Ignore minor updates.
    Use clear, user-facing language.

  # System prompt for overall repository summary
  overall_summary_prompt: |
    You are a technical writer creating changelog entries.
    Provide a high-level summary (3-4 sentences) of the key activities across all modules.
    Highlight the most important changes or themes for this release period.
`
