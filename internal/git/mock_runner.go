package git

import (
	"context"
	"strings"
)

// MockRunner is a test double for ExecRunner.
// It records every invocation and replays canned output without running git.
type MockRunner struct {
	Output string
	Error  error
	Calls  [][]string
}

// NewMockRunner creates a new MockRunner with the given output and error.
func NewMockRunner(output string, err error) *MockRunner {
	return &MockRunner{
		Output: output,
		Error:  err,
	}
}

// Run records the arguments and returns the canned output or error.
func (m *MockRunner) Run(_ context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), args...))
	if m.Error != nil {
		return "", m.Error
	}
	return m.Output, nil
}

// LastCall returns the arguments of the most recent invocation, or nil.
func (m *MockRunner) LastCall() []string {
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1]
}

// LogLine renders one commit the way Fetcher's log format prints it.
func LogLine(c Commit) string {
	return strings.Join([]string{
		c.Hash,
		c.Short(),
		c.Author,
		c.Date.Format(logDateLayout),
		c.Subject,
	}, FieldSeparator)
}
