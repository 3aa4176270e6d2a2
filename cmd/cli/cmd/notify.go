package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"agent-hooks/internal/infrastructure/adapter/notify"
)

const defaultNotifyMessage = "Task completed"

// notifyCmd represents the notify command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var notifyCmd = &cobra.Command{
	Use:   "notify [message...]",
	Short: "Send a desktop completion notification",
	Long: `Sends a desktop notification with the given message, falling back to a
terminal bell when no notification daemon is available. Intended as a
Stop hook so the operator notices when a long-running task finishes.

Delivery is best-effort: the command exits 0 even when the notifier
fails, and does nothing at all when notifications are disabled
(HOOKS_NOTIFICATIONS=false).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Notifications {
			return nil
		}
		message := strings.Join(args, " ")
		if message == "" {
			message = defaultNotifyMessage
		}
		if err := notify.New().Send("agent-hooks", message); err != nil {
			log.Warn("notification not delivered", "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}
