package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/masmgr/autochangelog/config"
	"github.com/masmgr/autochangelog/internal/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptCommits() []git.Commit {
	return []git.Commit{
		{Hash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", ShortHash: "bbbbbbb", Author: "Bob", Date: time.Now(), Subject: "feat: export"},
		{Hash: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Subject: "fix: crash"},
	}
}

func TestBuildModulePrompt(t *testing.T) {
	got := BuildModulePrompt("  Summarize briefly.\n", "api", promptCommits())

	assert.Equal(t, "Summarize briefly.\n\nModule: api\n\nCommits (newest first):\n"+
		"- bbbbbbb feat: export (Bob)\n"+
		"- aaaaaaa fix: crash (unknown)\n", got)
}

func TestBuildOverallPrompt(t *testing.T) {
	got := BuildOverallPrompt("", []string{"api", "web"}, promptCommits()[:1])

	assert.Equal(t, "Modules: api, web\n\nCommits (newest first):\n- bbbbbbb feat: export (Bob)\n", got)
}

func TestSummarize(t *testing.T) {
	client := &MockClient{Reply: "summary"}
	cfg := config.LLMConfig{ModuleSummaryPrompt: "MODULE", OverallSummaryPrompt: "OVERALL"}

	result, err := Summarize(context.Background(), client, cfg, []string{"api", "web"}, promptCommits())
	require.NoError(t, err)

	require.Len(t, client.Prompts, 3)
	assert.Contains(t, client.Prompts[0], "MODULE")
	assert.Contains(t, client.Prompts[0], "Module: api")
	assert.Contains(t, client.Prompts[1], "Module: web")
	assert.Contains(t, client.Prompts[2], "OVERALL")

	assert.Equal(t, map[string]string{"api": "summary 1", "web": "summary 2"}, result.Modules)
	assert.Equal(t, "summary 3", result.Overall)
}

func TestSummarize_NoCommits(t *testing.T) {
	client := &MockClient{Reply: "unused"}

	result, err := Summarize(context.Background(), client, config.LLMConfig{}, []string{"api"}, nil)
	require.NoError(t, err)
	assert.Empty(t, client.Prompts)
	assert.Empty(t, result.Overall)
	assert.Empty(t, result.Modules)
}

func TestSummarize_Error(t *testing.T) {
	client := &MockClient{Error: errors.New("boom")}

	_, err := Summarize(context.Background(), client, config.LLMConfig{}, []string{"api"}, promptCommits())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize module api")
}
