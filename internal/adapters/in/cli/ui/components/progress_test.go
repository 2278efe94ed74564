package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/styles"
	"github.com/dockside/dockside/internal/domain"
)

func TestProgressModel_FollowsUpdates(t *testing.T) {
	m := NewProgress("nginx:latest", 40)

	next, cmd := m.Update(ProgressMsg{Message: "Pulling: 2 of 4", Percentage: 55})
	assert.Nil(t, cmd)
	pm := next.(ProgressModel)
	assert.Equal(t, 55.0, pm.Percent())

	view := stripANSI(pm.View())
	assert.Contains(t, view, "nginx:latest")
	assert.Contains(t, view, "Pulling: 2 of 4")
}

func TestProgressModel_ClampsPercentage(t *testing.T) {
	m := NewProgress("x", 20)

	next, _ := m.Update(ProgressMsg{Percentage: 140})
	assert.Equal(t, 100.0, next.(ProgressModel).Percent())

	next, _ = next.Update(ProgressMsg{Percentage: -3})
	assert.Equal(t, 0.0, next.(ProgressModel).Percent())
}

func TestProgressModel_DoneSuccess(t *testing.T) {
	m := NewProgress("nginx:latest", 20)

	next, cmd := m.Update(DoneMsg{Name: "nginx_latest_container"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	pm := next.(ProgressModel)
	assert.Equal(t, domain.ProgressReady, pm.Percent())
	assert.Contains(t, stripANSI(pm.View()), "nginx_latest_container")
}

func TestProgressModel_DoneError(t *testing.T) {
	m := NewProgress("nginx:latest", 20)
	next, _ := m.Update(ProgressMsg{Message: "Pulling Docker image...", Percentage: 30})

	next, _ = next.Update(DoneMsg{Err: errors.New("failed to pull image: manifest unknown")})

	pm := next.(ProgressModel)
	assert.Equal(t, 30.0, pm.Percent())
	assert.Contains(t, stripANSI(pm.View()), "manifest unknown")
}

func TestProgressModel_CtrlCCancels(t *testing.T) {
	m := NewProgress("x", 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, next.(ProgressModel).Cancelled())
}

func TestRenderStatus(t *testing.T) {
	assert.Contains(t, stripANSI(RenderStatus(StatusSuccess, "ready")), "ready")
	assert.Contains(t, stripANSI(RenderStatus(StatusError, "")), styles.IconError)
}
