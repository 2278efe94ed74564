package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/components"
	"github.com/dockside/dockside/internal/app"
	"github.com/dockside/dockside/internal/boundaries/in"
	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// errAcquireCancelled is returned when the user interrupts the progress view.
var errAcquireCancelled = errors.New("acquisition cancelled")

// newAcquireCmd creates the acquire command.
func newAcquireCmd(configPath *string) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "acquire IMAGE",
		Short: "Make sure the container of an image is running",
		Long: `Pull IMAGE when needed, then reuse, restart or create its managed container
and start it. Progress is shown as it happens.`,
		Example: "  dockside acquire ghcr.io/acme/bg-remove:1.2\n  dockside acquire nginx:latest --plain",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.ImageReference(args[0])
			w := cmd.OutOrStdout()
			tui := !plain && isTerminal(w)

			opts := app.Options{}
			if tui {
				// Log lines would tear the progress view.
				opts.LogLevel = "disabled"
			}

			cp, err := newControlPlane(*configPath, opts)
			if err != nil {
				return err
			}
			defer cp.Close()

			ctx := cp.Context(cmd.Context())
			if tui {
				return acquireInteractive(ctx, cp.Acquisition(), ref, w)
			}
			return acquirePlain(ctx, cp.Acquisition(), ref, w)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print progress as plain lines instead of the interactive view")
	return cmd
}

func acquirePlain(ctx context.Context, svc in.AcquisitionService, ref domain.ImageReference, w io.Writer) error {
	sink := out.ProgressSinkFunc(func(_ context.Context, update domain.ProgressUpdate) error {
		return cliWritef(w, "[%3.0f%%] %s\n", update.Percentage, update.Message)
	})

	id, err := svc.Acquire(ctx, ref, sink)
	if err != nil {
		return err
	}
	return cliWriteLine(w, cliRenderSuccess(fmt.Sprintf("%s (%s)", domain.ContainerNameFor(ref), shortID(id))))
}

func acquireInteractive(ctx context.Context, svc in.AcquisitionService, ref domain.ImageReference, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := components.NewProgress(string(ref), barWidth(w))
	p := tea.NewProgram(model, tea.WithOutput(w), tea.WithContext(ctx))

	sink := out.ProgressSinkFunc(func(_ context.Context, update domain.ProgressUpdate) error {
		p.Send(components.ProgressMsg(update))
		return nil
	})

	go func() {
		_, err := svc.Acquire(ctx, ref, sink)
		p.Send(components.DoneMsg{Name: domain.ContainerNameFor(ref), Err: err})
	}()

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("progress view: %w", err)
	}
	if m, ok := final.(components.ProgressModel); ok && m.Cancelled() {
		return errAcquireCancelled
	}
	if m, ok := final.(components.ProgressModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
