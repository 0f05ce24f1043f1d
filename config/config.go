package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file used when --config is not given.
const DefaultConfigPath = ".changelog_config.yaml"

// DefaultModel is the summarization model used when llm.model is empty.
const DefaultModel = "claude-sonnet-4-5"

// Config is the root configuration structure.
type Config struct {
	OutputFile string       `yaml:"output_file"`
	Modules    []string     `yaml:"modules"`
	Filter     FilterConfig `yaml:"filter"`
	LLM        LLMConfig    `yaml:"llm"`
}

// FilterConfig holds the rules that keep noise out of summarization.
type FilterConfig struct {
	IgnorePrefixes  []string `yaml:"ignore_prefixes"`  // Subject prefixes, e.g. "chore:"
	IgnoreKeywords  []string `yaml:"ignore_keywords"`  // Case-insensitive subject substrings
	IgnorePathsOnly []string `yaml:"ignore_paths_only"` // Globs; a commit touching only these is ignored
}

// LLMConfig holds summarization settings.
type LLMConfig struct {
	Model                string `yaml:"model"`
	ModuleSummaryPrompt  string `yaml:"module_summary_prompt"`
	OverallSummaryPrompt string `yaml:"overall_summary_prompt"`
}

// ConfigError reports a configuration file that is missing or unusable.
// Its message is meant to be shown to the user as is.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// LoadConfig reads and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{
				Path:    path,
				Message: "configuration file not found (run 'autochangelog init' to create one)",
				Err:     err,
			}
		}
		return nil, &ConfigError{Path: path, Message: fmt.Sprintf("cannot read configuration file: %v", err), Err: err}
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
			return nil, cfgErr
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig decodes a configuration document and checks required fields.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, &ConfigError{Message: "invalid configuration: " + strings.Join(typeErr.Errors, "; "), Err: err}
		}
		return nil, &ConfigError{Message: "invalid YAML: " + strings.TrimPrefix(err.Error(), "yaml: "), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LLM.Model == "" {
		cfg.LLM.Model = DefaultModel
	}
	return cfg, nil
}

// Validate checks the fields every run depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return &ConfigError{Message: "missing required field 'output_file'"}
	}
	if len(c.Modules) == 0 {
		return &ConfigError{Message: "missing required field 'modules' (at least one module is required)"}
	}
	for i, m := range c.Modules {
		if strings.TrimSpace(m) == "" {
			return &ConfigError{Message: fmt.Sprintf("modules[%d] is empty", i)}
		}
	}
	return nil
}
