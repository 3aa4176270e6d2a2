package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agent-hooks/internal/application/service"
	"agent-hooks/internal/domain/hook"
	"agent-hooks/internal/domain/safety"
	"agent-hooks/internal/infrastructure/audit"
)

// guardCmd represents the guard command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Vet a shell command before the agent runs it",
	Long: `Reads a PreToolUse hook payload from standard input, tests the carried
shell command against the dangerous and sensitive pattern lists, and
appends one entry to the dated audit log.

Exit codes:
  0  allow execution (including empty or malformed payloads)
  2  block execution; the matched pattern is explained on stderr
  1  tool malfunction, distinct from a policy block`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGuard(cmd.InOrStdin(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(guardCmd)
}

func runGuard(in io.Reader, errOut io.Writer) error {
	payload, err := hook.Decode(in)
	if err != nil {
		// A malformed carrier means there is nothing to check.
		return nil
	}
	command := payload.CommandText()
	if strings.TrimSpace(command) == "" {
		return nil
	}

	svc, err := service.NewGuardService(audit.NewFileLogger(cfg.ResolvePath(cfg.LogDir)))
	if err != nil {
		return err
	}

	decision, auditErr := svc.Check(command)
	if auditErr != nil {
		// Fail open: auditing is degraded but the decision stands.
		log.Warn("audit logging degraded", "error", auditErr)
	}

	for _, adv := range decision.Advisories {
		fmt.Fprintf(errOut, "advisory: %s detected, double-check before proceeding (pattern %q)\n",
			adv.Description, adv.Pattern)
	}

	if decision.Blocked {
		fmt.Fprintf(errOut, "blocked: %s (pattern %q)\ncommand: %s\n",
			safety.DescriptionFor(decision.Reason), decision.Reason,
			safety.Truncate(command, safety.CommandEchoLimit))
		return service.ErrCommandBlocked
	}
	return nil
}
