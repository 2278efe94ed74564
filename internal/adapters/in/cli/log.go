package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dockside/dockside/internal/app"
)

// newLogCmd creates the log command.
func newLogCmd(configPath *string) *cobra.Command {
	var (
		tail   bool
		lines  int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "log [MESSAGE...]",
		Short: "Print a message on the operator console, or show dockside logs",
		Long: `With a MESSAGE, print it on the operator console. Messages that mention an
error are flagged as errors. With --tail, print the last lines of the dockside
log file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tail && len(args) == 0 {
				return cmd.Help()
			}

			cp, err := newControlPlane(*configPath, app.Options{MessageOutput: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer cp.Close()

			ctx := cp.Context(cmd.Context())
			if !tail {
				return cp.Logs().Log(ctx, strings.Join(args, " "))
			}

			w := cmd.OutOrStdout()
			if follow {
				ch, err := cp.Logs().FollowProcessLogs(ctx, lines)
				if err != nil {
					return err
				}
				for line := range ch {
					if err := cliWriteLine(w, line); err != nil {
						return err
					}
				}
				return nil
			}

			logLines, err := cp.Logs().GetProcessLogs(ctx, lines)
			if err != nil {
				return err
			}
			for _, line := range logLines {
				if err := cliWriteLine(w, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tail, "tail", "t", false, "Show the dockside log file instead of printing a message")
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of log lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep streaming new log lines")
	return cmd
}
