package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"agent-hooks/internal/infrastructure/adapter/trash"
)

// trashCmd represents the trash command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var trashCmd = &cobra.Command{
	Use:   "trash FILE...",
	Short: "Move files to the project trash instead of deleting them",
	Long: `Moves each named file or directory into a timestamped batch under the
project trash directory (.claude/trash by default) and prints where it
went. Recovery is a plain move back; nothing is ever overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mover := trash.NewMover(cfg.ResolvePath(cfg.TrashDir))
		for _, path := range args {
			dest, err := mover.Move(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moved %s -> %s\n", path, dest)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trashCmd)
}
