package git

import (
	"strings"
	"testing"
	"time"
)

func TestTouchedPathsReader_Paths(t *testing.T) {
	dir, repo := createTestRepo(t)
	now := time.Now()

	root := commitFiles(t, repo, "initial", map[string]string{
		"README.md":      "readme",
		"service-a/a.go": "package a",
	}, now.Add(-2*time.Hour))
	docs := commitFiles(t, repo, "docs: update", map[string]string{
		"README.md":     "readme v2",
		"docs/guide.md": "guide",
	}, now.Add(-time.Hour))

	reader, err := NewTouchedPathsReader(dir)
	if err != nil {
		t.Fatalf("NewTouchedPathsReader: %v", err)
	}

	t.Run("RootCommit", func(t *testing.T) {
		paths, err := reader.Paths(root)
		if err != nil {
			t.Fatalf("Paths: %v", err)
		}
		if strings.Join(paths, ",") != "README.md,service-a/a.go" {
			t.Fatalf("Paths(root) = %v", paths)
		}
	})

	t.Run("ChildCommit", func(t *testing.T) {
		paths, err := reader.Paths(docs)
		if err != nil {
			t.Fatalf("Paths: %v", err)
		}
		if strings.Join(paths, ",") != "README.md,docs/guide.md" {
			t.Fatalf("Paths(docs) = %v", paths)
		}
	})

	t.Run("Annotate", func(t *testing.T) {
		commits := []Commit{{Hash: docs}, {Hash: root}}
		annotated, err := reader.Annotate(commits)
		if err != nil {
			t.Fatalf("Annotate: %v", err)
		}
		if len(annotated[0].Files) != 2 || len(annotated[1].Files) != 2 {
			t.Fatalf("annotated = %#v", annotated)
		}
		if commits[0].Files != nil {
			t.Fatal("Annotate must not modify its input")
		}
	})

	t.Run("UnknownCommit", func(t *testing.T) {
		if _, err := reader.Paths("0000000000000000000000000000000000000000"); err == nil {
			t.Fatal("expected error for unknown commit, got nil")
		}
	})
}

func TestNewTouchedPathsReader_NotARepository(t *testing.T) {
	if _, err := NewTouchedPathsReader(t.TempDir()); err == nil {
		t.Fatal("expected error outside a repository, got nil")
	}
}
