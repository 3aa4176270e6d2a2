package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-hooks/internal/infrastructure/config"
)

func sessionServiceFor(t *testing.T, root string) *SessionService {
	t.Helper()
	cfg := config.Defaults()
	cfg.ProjectRoot = root
	svc := NewSessionService(cfg)
	svc.gitStatus = func(context.Context, string) (string, error) {
		return "", errors.New("no git in tests")
	}
	return svc
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a", size)), 0o644))
}

func TestSessionCheckMissingClaudeMD(t *testing.T) {
	svc := sessionServiceFor(t, t.TempDir())

	issues := svc.Run(context.Background())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "CLAUDE.md is missing")
}

func TestSessionCheckClaudeMDSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want string
	}{
		{name: "small file is healthy", size: 2 * 1024, want: ""},
		{name: "large file warns", size: 12 * 1024, want: "getting large"},
		{name: "oversized file flags a limit", size: 20 * 1024, want: "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "CLAUDE.md"), tt.size)
			svc := sessionServiceFor(t, root)

			issues := svc.Run(context.Background())
			if tt.want == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Contains(t, issues[0], tt.want)
		})
	}
}

func TestSessionCheckStaleMemoryBank(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"), 100)

	fresh := filepath.Join(root, "memory-bank", "progress.md")
	stale := filepath.Join(root, "memory-bank", "architecture.md")
	writeFile(t, fresh, 10)
	writeFile(t, stale, 10)

	tenDaysAgo := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(stale, tenDaysAgo, tenDaysAgo))

	svc := sessionServiceFor(t, root)
	issues := svc.Run(context.Background())

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "architecture.md")
	assert.Contains(t, issues[0], "10 days")
}

func TestSessionCheckMissingMemoryBankIsFine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"), 100)

	svc := sessionServiceFor(t, root)
	assert.Empty(t, svc.Run(context.Background()))
}

func TestSessionCheckGitStatus(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "CLAUDE.md"), 100)
	svc := sessionServiceFor(t, root)

	t.Run("many changes nudge a commit", func(t *testing.T) {
		svc.gitStatus = func(context.Context, string) (string, error) {
			return strings.Repeat(" M file\n", 12), nil
		}
		issues := svc.Run(context.Background())
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "12 uncommitted changes")
	})

	t.Run("few changes stay quiet", func(t *testing.T) {
		svc.gitStatus = func(context.Context, string) (string, error) {
			return " M file\n?? other\n", nil
		}
		assert.Empty(t, svc.Run(context.Background()))
	})

	t.Run("git failure is silently skipped", func(t *testing.T) {
		svc.gitStatus = func(context.Context, string) (string, error) {
			return "", errors.New("not a repository")
		}
		assert.Empty(t, svc.Run(context.Background()))
	})
}
