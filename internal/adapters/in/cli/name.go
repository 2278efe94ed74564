package cli

import (
	"github.com/spf13/cobra"

	"github.com/dockside/dockside/internal/domain"
	"github.com/dockside/dockside/internal/usecase/acquire"
)

// newNameCmd creates the name command.
func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name IMAGE",
		Short: "Print the managed container name of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.ImageReference(args[0])
			if err := acquire.ValidateReference(ref); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), string(domain.ContainerNameFor(ref)))
		},
	}
}
