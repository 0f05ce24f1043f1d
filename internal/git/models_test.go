package git

import "testing"

func TestCommit_Short(t *testing.T) {
	tests := []struct {
		name     string
		commit   Commit
		expected string
	}{
		{name: "Uses short hash", commit: Commit{Hash: "0123456789abcdef0123456789abcdef01234567", ShortHash: "0123456789"}, expected: "0123456789"},
		{name: "Derives from hash", commit: Commit{Hash: "0123456789abcdef0123456789abcdef01234567"}, expected: "0123456"},
		{name: "Short input hash", commit: Commit{Hash: "abc"}, expected: "abc"},
		{name: "Empty", commit: Commit{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.commit.Short(); got != tt.expected {
				t.Errorf("Short() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestIsFullHash(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "0123456789abcdef0123456789abcdef01234567", expected: true},
		{input: "0123456789ABCDEF0123456789ABCDEF01234567", expected: true},
		{input: "0123456789abcdef0123456789abcdef0123456", expected: false},
		{input: "0123456789abcdef0123456789abcdef0123456g", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		if got := IsFullHash(tt.input); got != tt.expected {
			t.Errorf("IsFullHash(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
