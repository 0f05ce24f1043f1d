package llm

import (
	"context"
	"fmt"
)

// MockClient is a test double for HTTPClient. It records prompts and
// answers each call with Reply, numbered by call order.
type MockClient struct {
	Reply   string
	Error   error
	Prompts []string
}

// Complete records the prompt and returns the canned reply or error.
func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Error != nil {
		return "", m.Error
	}
	return fmt.Sprintf("%s %d", m.Reply, len(m.Prompts)), nil
}

// Compile-time interface conformance check.
var _ Client = (*MockClient)(nil)
