package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agent-hooks/internal/application/service"
	"agent-hooks/internal/domain/hook"
)

// scanCmd represents the scan command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Find leftover console.log calls in JS/TS sources",
	Long: `Scans the path named on the command line, or the file carried by a
PostToolUse hook payload on standard input, for console.log and
console.debug calls. Directories are walked recursively, skipping
node_modules, .git, dist, and build.

Findings are advisory and reported on stderr; the exit code is always 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runScan(path, cmd.InOrStdin(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(path string, in io.Reader, errOut io.Writer) error {
	if path == "" {
		payload, err := hook.Decode(in)
		if err != nil {
			return nil
		}
		path = payload.TargetPath()
	}
	if path == "" {
		return nil
	}

	findings, err := service.ScanPath(cfg.ResolvePath(path))
	if err != nil {
		log.Warn("console scan skipped", "error", err)
		return nil
	}
	for _, f := range findings {
		fmt.Fprintf(errOut, "console call left behind: %s\n", f)
	}
	if len(findings) > 0 {
		fmt.Fprintf(errOut, "%d console call(s) found under %s\n", len(findings), path)
	}
	return nil
}
