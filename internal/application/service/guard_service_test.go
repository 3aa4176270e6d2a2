package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-hooks/internal/domain/safety"
	"agent-hooks/internal/infrastructure/audit"
)

// stubLogger records appended entries in memory.
type stubLogger struct {
	entries []audit.Entry
	err     error
}

func (s *stubLogger) Append(entry audit.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func TestNewGuardServiceNilLogger(t *testing.T) {
	_, err := NewGuardService(nil)
	require.ErrorIs(t, err, ErrNilLogger)
}

func TestCheckBlockedCommand(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	decision, err := svc.Check("rm -rf /home/user/project")
	require.NoError(t, err)

	assert.True(t, decision.Blocked)
	assert.NotEmpty(t, decision.Reason)
	assert.Equal(t, "recursive force delete of a root-level path", safety.DescriptionFor(decision.Reason))

	require.Len(t, logger.entries, 1)
	assert.Equal(t, "rm -rf /home/user/project", logger.entries[0].Command)
	assert.True(t, logger.entries[0].Blocked)
	assert.Equal(t, decision.Reason, logger.entries[0].Reason)
	assert.NotEmpty(t, logger.entries[0].Timestamp)
}

func TestCheckAllowedCommand(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	decision, err := svc.Check("ls -la")
	require.NoError(t, err)

	assert.False(t, decision.Blocked)
	assert.Empty(t, decision.Reason)

	require.Len(t, logger.entries, 1, "allowed commands are audited too")
	assert.False(t, logger.entries[0].Blocked)
}

func TestCheckSensitiveCommand(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	decision, err := svc.Check("git push --force")
	require.NoError(t, err)

	assert.False(t, decision.Blocked, "sensitive commands are advisory, not blocked")
	require.Len(t, decision.Advisories, 1)
	assert.Equal(t, "force push", decision.Advisories[0].Description)
	require.Len(t, logger.entries, 1)
}

func TestCheckEmptyCommand(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	for _, cmd := range []string{"", "   ", "\n\t"} {
		decision, err := svc.Check(cmd)
		require.NoError(t, err)
		assert.False(t, decision.Blocked)
	}
	assert.Empty(t, logger.entries, "empty input writes zero log entries")
}

func TestCheckTruncatesLoggedCommand(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	long := "echo " + strings.Repeat("x", 500)
	decision, err := svc.Check(long)
	require.NoError(t, err)
	assert.False(t, decision.Blocked)

	require.Len(t, logger.entries, 1)
	assert.Len(t, logger.entries[0].Command, safety.CommandLogLimit)
	assert.Equal(t, safety.Truncate(long, safety.CommandLogLimit), logger.entries[0].Command)
}

func TestCheckAuditFailureDoesNotChangeDecision(t *testing.T) {
	logger := &stubLogger{err: errors.New("disk full")}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	decision, err := svc.Check("rm -rf /")
	require.Error(t, err, "audit degradation is surfaced on its own channel")
	assert.True(t, decision.Blocked, "blocking stays enforceable without auditing")

	decision, err = svc.Check("ls")
	require.Error(t, err)
	assert.False(t, decision.Blocked)
}

func TestCheckIdempotent(t *testing.T) {
	logger := &stubLogger{}
	svc, err := NewGuardService(logger)
	require.NoError(t, err)

	first, err := svc.Check("chmod 777 /srv")
	require.NoError(t, err)
	second, err := svc.Check("chmod 777 /srv")
	require.NoError(t, err)

	assert.Equal(t, first.Blocked, second.Blocked)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Len(t, logger.entries, 2, "the log is the only observable difference")
}
