package cli

import (
	"github.com/spf13/cobra"

	"github.com/dockside/dockside/internal/app"
)

// newCopyCmd creates the cp command.
func newCopyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cp CONTAINER PATH",
		Short: "Copy a file out of a container into the temp directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := newControlPlane(*configPath, app.Options{})
			if err != nil {
				return err
			}
			defer cp.Close()

			dest, err := cp.Files().CopyFromContainer(cp.Context(cmd.Context()), args[0], args[1])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), dest)
		},
	}
}

// newReadFileCmd creates the readfile command.
func newReadFileCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "readfile PATH",
		Short: "Print a host file base64 encoded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := newControlPlane(*configPath, app.Options{})
			if err != nil {
				return err
			}
			defer cp.Close()

			data, err := cp.Files().ReadBase64(cp.Context(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), data)
		},
	}
}
