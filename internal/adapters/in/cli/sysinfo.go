package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/components"
	"github.com/dockside/dockside/internal/app"
	"github.com/dockside/dockside/internal/domain"
)

// newSysinfoCmd creates the sysinfo command.
func newSysinfoCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Show host memory, CPU, disk and GPU usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unsupported output format %q (want text, json or yaml)", output)
			}

			cp, err := newControlPlane(*configPath, app.Options{})
			if err != nil {
				return err
			}
			defer cp.Close()

			snap, err := cp.System().Snapshot(cp.Context(cmd.Context()))
			if err != nil {
				return err
			}
			return writeSnapshot(cmd.OutOrStdout(), snap, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func writeSnapshot(w io.Writer, snap domain.SystemSnapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}

	lines := []string{
		cliRenderTitle(snap.SystemName),
		cliRenderMeta("CPU:", fmt.Sprintf("%s (%.1f%%)", snap.CPUName, snap.CPUUsage)),
		cliRenderMeta("Memory:", usage(snap.UsedMemory, snap.TotalMemory)),
		cliRenderMeta("Swap:", usage(snap.UsedSwap, snap.TotalSwap)),
	}
	if snap.GPUName != nil {
		gpu := *snap.GPUName
		if snap.GPUUsage != nil {
			gpu = fmt.Sprintf("%s (%.0f%%)", gpu, *snap.GPUUsage)
		}
		lines = append(lines, cliRenderMeta("GPU:", gpu))
	} else {
		lines = append(lines, cliRenderMeta("GPU:", "none"))
	}
	for _, line := range lines {
		if err := cliWriteLine(w, line); err != nil {
			return err
		}
	}

	if len(snap.Disks) == 0 {
		return nil
	}
	return cliWriteLine(w, components.DiskTable(snap.Disks))
}

func usage(used, total uint64) string {
	return fmt.Sprintf("%s / %s (%s)", units.HumanSize(float64(used)), units.HumanSize(float64(total)), components.Percent(used, total))
}
