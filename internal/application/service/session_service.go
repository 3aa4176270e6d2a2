package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"agent-hooks/internal/infrastructure/config"
)

// gitStatusTimeout bounds the git subprocess during the session check.
const gitStatusTimeout = 5 * time.Second

// uncommittedChangesNudge is the number of changed entries above which the
// session check suggests committing.
const uncommittedChangesNudge = 10

// keyDocs are the memory-bank documents whose staleness is checked.
var keyDocs = []string{"progress.md", "architecture.md", "tech-stack.md"}

// SessionService runs the startup health check: CLAUDE.md size, memory-bank
// document staleness, and git working-tree hygiene. Every check is advisory;
// the service only collects human-readable issues.
type SessionService struct {
	cfg *config.Config
	now func() time.Time

	// gitStatus is injectable for tests; the default runs git itself.
	gitStatus func(ctx context.Context, dir string) (string, error)
}

// NewSessionService creates a SessionService for the configured project root.
func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{
		cfg:       cfg,
		now:       time.Now,
		gitStatus: runGitStatus,
	}
}

// Run executes all checks and returns the collected issues. It never fails:
// a check that cannot run (no git, no memory-bank) simply reports nothing.
func (s *SessionService) Run(ctx context.Context) []string {
	var issues []string
	issues = append(issues, s.checkClaudeMD()...)
	issues = append(issues, s.checkMemoryBank()...)
	issues = append(issues, s.checkGitStatus(ctx)...)
	return issues
}

func (s *SessionService) checkClaudeMD() []string {
	info, err := os.Stat(s.cfg.ResolvePath("CLAUDE.md"))
	if err != nil {
		return []string{"CLAUDE.md is missing, consider running /init"}
	}

	size := info.Size()
	switch {
	case size > s.cfg.ClaudeMdLimitBytes:
		return []string{fmt.Sprintf("CLAUDE.md is too large (%dKB), trim it below %dKB",
			size/1024, s.cfg.ClaudeMdLimitBytes/1024)}
	case size > s.cfg.ClaudeMdWarnBytes:
		return []string{fmt.Sprintf("CLAUDE.md is getting large (%dKB), consider trimming", size/1024)}
	}
	return nil
}

func (s *SessionService) checkMemoryBank() []string {
	bank := s.cfg.ResolvePath("memory-bank")
	if _, err := os.Stat(bank); err != nil {
		// young projects may not have one yet
		return nil
	}

	staleBefore := s.now().AddDate(0, 0, -s.cfg.DocStaleDays)
	var issues []string
	for _, doc := range keyDocs {
		info, err := os.Stat(filepath.Join(bank, doc))
		if err != nil {
			continue
		}
		if info.ModTime().Before(staleBefore) {
			days := int(s.now().Sub(info.ModTime()).Hours() / 24)
			issues = append(issues, fmt.Sprintf("%s has not been updated for %d days, it may need a sync", doc, days))
		}
	}
	return issues
}

func (s *SessionService) checkGitStatus(ctx context.Context) []string {
	out, err := s.gitStatus(ctx, s.cfg.ProjectRoot)
	if err != nil {
		// not a repo, or git unavailable
		return nil
	}

	changes := strings.TrimSpace(out)
	if changes == "" {
		return nil
	}
	if n := len(strings.Split(changes, "\n")); n > uncommittedChangesNudge {
		return []string{fmt.Sprintf("%d uncommitted changes, consider committing regularly", n)}
	}
	return nil
}

func runGitStatus(ctx context.Context, dir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gitStatusTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
