// Package cli implements the CLI adapter for dockside.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd creates the root command for the dockside CLI.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "dockside",
		Short: "dockside - pull and run model containers for the desktop shell",
		Long: `dockside makes sure the container of a model image is running. It pulls
the image when needed, reuses or restarts an existing container, and reports
progress to the desktop front end over HTTP or to the terminal.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newAcquireCmd(&configPath))
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newSysinfoCmd(&configPath))
	rootCmd.AddCommand(newCopyCmd(&configPath))
	rootCmd.AddCommand(newReadFileCmd(&configPath))
	rootCmd.AddCommand(newLogCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if short {
				return cliWriteLine(w, Version)
			}
			if err := cliWriteLine(w, cliRenderTitle("dockside "+Version)); err != nil {
				return err
			}
			if err := cliWriteLine(w, cliRenderMeta("Commit:", Commit)); err != nil {
				return err
			}
			return cliWriteLine(w, cliRenderMeta("Build Date:", BuildDate))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}
