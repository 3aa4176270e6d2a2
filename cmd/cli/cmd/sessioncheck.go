package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"agent-hooks/internal/application/service"
)

// sessionCheckCmd represents the session-check command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var sessionCheckCmd = &cobra.Command{
	Use:   "session-check",
	Short: "Run the session startup health check",
	Long: `Checks the project at session start and prints anything worth knowing:
a missing or oversized CLAUDE.md, stale memory-bank documents, and a
working tree with many uncommitted changes.

Issues are printed on stdout so they land in the agent's context. A
healthy project prints nothing. Always exits 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		issues := service.NewSessionService(cfg).Run(cmd.Context())
		if len(issues) == 0 {
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "[Session Check]")
		for _, issue := range issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCheckCmd)
}
