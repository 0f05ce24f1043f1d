package git

import (
	"strings"
	"time"
)

// Commit is a read-only snapshot of one commit from the log.
type Commit struct {
	Hash      string
	ShortHash string
	Author    string
	Date      time.Time
	Subject   string
	Files     []string // Touched paths; only filled by TouchedPathsReader
}

// Short returns the abbreviated hash, deriving it from Hash when the log
// did not provide one.
func (c Commit) Short() string {
	if c.ShortHash != "" {
		return c.ShortHash
	}
	if len(c.Hash) > shortHashLen {
		return c.Hash[:shortHashLen]
	}
	return c.Hash
}

// IsFullHash reports whether s looks like a full 40-character SHA-1 hash.
func IsFullHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	return strings.Trim(strings.ToLower(s), "0123456789abcdef") == ""
}

const shortHashLen = 7
