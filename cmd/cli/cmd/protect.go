package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agent-hooks/internal/application/service"
	"agent-hooks/internal/domain/hook"
	"agent-hooks/internal/domain/protect"
)

// protectCmd represents the protect command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var protectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Block edits to sensitive files",
	Long: `Reads a PreToolUse hook payload from standard input and blocks Write and
Edit tool invocations that target secret-bearing paths: .env files,
private keys, cloud credentials, and anything matched by the per-project
overlay in .claude/protected.yaml.

Exit code 2 blocks the edit; 0 allows it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProtect(cmd.InOrStdin(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(protectCmd)
}

func runProtect(in io.Reader, errOut io.Writer) error {
	payload, err := hook.Decode(in)
	if err != nil {
		return nil
	}
	if !protect.AppliesTo(payload.ToolName) {
		return nil
	}
	path := payload.TargetPath()
	if path == "" {
		return nil
	}

	rules, err := protect.Load(cfg.ResolvePath(cfg.ProtectedRulesFile))
	if err != nil {
		// A broken rules file is a tool malfunction, not a policy block.
		return err
	}

	if rule, protected := rules.Match(path); protected {
		fmt.Fprintf(errOut, "blocked: %s is a protected file (rule %q)\n", path, rule)
		return service.ErrFileProtected
	}
	return nil
}
