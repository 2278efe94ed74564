// Package components provides reusable TUI components for the dockside CLI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/styles"
	"github.com/dockside/dockside/internal/domain"
)

// ProgressMsg carries one acquisition progress update into the model.
type ProgressMsg domain.ProgressUpdate

// DoneMsg ends the acquisition view.
type DoneMsg struct {
	Name domain.ContainerName
	Err  error
}

// ProgressModel renders acquisition progress as a spinner, a message and a bar.
type ProgressModel struct {
	spinner spinner.Model
	bar     progress.Model
	title   string
	message string
	percent float64

	done      bool
	cancelled bool
	name      domain.ContainerName
	err       error
}

// NewProgress creates a progress view titled with the image reference.
func NewProgress(title string, width int) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)

	bar := progress.New(progress.WithGradient(string(styles.ColorSecondary), string(styles.ColorPrimary)))
	if width > 0 {
		bar.Width = width
	}

	return ProgressModel{
		spinner: s,
		bar:     bar,
		title:   title,
		message: domain.MsgCheckingExisting,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.message = msg.Message
		m.percent = clampPercent(msg.Percentage)
		return m, nil

	case DoneMsg:
		m.done = true
		m.name = msg.Name
		m.err = msg.Err
		if msg.Err == nil {
			m.percent = domain.ProgressReady
		}
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Theme.Title.Render(m.title))
	b.WriteString("\n")

	switch {
	case m.done && m.err != nil:
		b.WriteString(RenderStatus(StatusError, m.err.Error()))
	case m.done:
		b.WriteString(RenderStatus(StatusSuccess, fmt.Sprintf("%s %s", domain.MsgReady, m.name)))
	case m.cancelled:
		b.WriteString(RenderStatus(StatusWarning, "cancelled"))
	default:
		b.WriteString(m.spinner.View() + " " + styles.Theme.Body.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent / 100))
	b.WriteString("\n")
	return b.String()
}

// Percent returns the last displayed percentage.
func (m ProgressModel) Percent() float64 {
	return m.percent
}

// Cancelled reports whether the user interrupted the view.
func (m ProgressModel) Cancelled() bool {
	return m.cancelled
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// Err returns the acquisition error the view finished with, if any.
func (m ProgressModel) Err() error {
	return m.err
}
