// Package service wires the domain guard logic to its side effects. The
// audit write and the allow/block computation are two decoupled effects
// sequenced deterministically, so tests can substitute a stub logger without
// altering block/allow behavior.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agent-hooks/internal/domain/safety"
	"agent-hooks/internal/infrastructure/audit"
)

// Sentinel errors for guard operations.
var (
	// ErrCommandBlocked is returned when a command matches a dangerous pattern.
	// The CLI layer maps it to the block exit code.
	ErrCommandBlocked = errors.New("command blocked by safety policy")

	// ErrFileProtected is returned when a file edit targets a protected path.
	// It shares the block exit code with ErrCommandBlocked.
	ErrFileProtected = errors.New("file protected by safety policy")

	// ErrNilLogger is returned when a nil audit logger is passed to the constructor.
	ErrNilLogger = errors.New("audit logger cannot be nil")
)

// AuditLogger records one entry per evaluated command.
type AuditLogger interface {
	Append(entry audit.Entry) error
}

// GuardService evaluates shell commands and audits every evaluation.
type GuardService struct {
	logger AuditLogger
	now    func() time.Time
}

// NewGuardService creates a GuardService writing through logger.
// Returns ErrNilLogger if logger is nil.
func NewGuardService(logger AuditLogger) (*GuardService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &GuardService{logger: logger, now: time.Now}, nil
}

// Check evaluates command and appends exactly one audit entry, whatever the
// outcome. An empty or blank command short-circuits: no patterns are tested
// and nothing is logged.
//
// The returned error reports audit degradation only. The Decision is valid
// whenever Check returns, and a failed append must never change it: blocking
// stays enforceable even when auditing is degraded.
func (s *GuardService) Check(command string) (safety.Decision, error) {
	if strings.TrimSpace(command) == "" {
		return safety.Decision{}, nil
	}

	decision := safety.Evaluate(command)

	entry := audit.Entry{
		Timestamp: s.now().Format(time.RFC3339),
		Command:   safety.Truncate(command, safety.CommandLogLimit),
		Blocked:   decision.Blocked,
		Reason:    decision.Reason,
	}
	if err := s.logger.Append(entry); err != nil {
		return decision, fmt.Errorf("audit log degraded: %w", err)
	}
	return decision, nil
}
