package cli

import (
	"github.com/spf13/cobra"

	"github.com/dockside/dockside/internal/app"
)

// runServer is a variable to allow mocking in tests
var runServer = app.Run

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP bridge",
		Long:  `Start the HTTP bridge used by the desktop front end, including the progress event stream.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, Version)
		},
	}
}
