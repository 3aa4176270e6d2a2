package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agent-hooks/internal/domain/hook"
	"agent-hooks/internal/infrastructure/adapter/formatter"
)

// formatCmd represents the format command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Run the matching formatter over an edited file",
	Long: `Formats the file named on the command line, or the file carried by a
PostToolUse hook payload on standard input, using the formatter for its
language (gofmt, black, prettier, rustfmt, shfmt).

Formatting is best-effort and always exits 0: an unknown file type or a
missing formatter binary is skipped silently, and a formatter failure is
only reported on stderr. The edit already happened; nothing is blocked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return runFormat(cmd.Context(), path, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(ctx context.Context, path string, in io.Reader, out io.Writer) error {
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

	ran, err := formatter.NewDispatcher().Format(ctx, cfg.ResolvePath(path))
	if err != nil {
		log.Warn("formatter failed", "error", err)
		return nil
	}
	if ran != "" {
		fmt.Fprintf(out, "formatted %s with %s\n", path, ran)
	}
	return nil
}
