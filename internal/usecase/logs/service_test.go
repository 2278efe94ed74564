package logs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/boundaries/out/mocks"
)

func TestIsErrorMessage(t *testing.T) {
	tests := []struct {
		message  string
		expected bool
	}{
		{"model loaded", false},
		{"Inference ERROR: out of memory", true},
		{"request failed", true},
		{"Lỗi kết nối", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorMessage(tt.message))
		})
	}
}

func TestService_Log(t *testing.T) {
	t.Run("plain message", func(t *testing.T) {
		writer := mocks.NewMockMessageWriter(t)
		writer.EXPECT().WriteMessage("model loaded", false).Return(nil)

		svc := NewService("", writer)
		require.NoError(t, svc.Log(context.Background(), "model loaded"))
	})

	t.Run("error message", func(t *testing.T) {
		writer := mocks.NewMockMessageWriter(t)
		writer.EXPECT().WriteMessage("upload failed", true).Return(nil)

		svc := NewService("", writer)
		require.NoError(t, svc.Log(context.Background(), "upload failed"))
	})

	t.Run("writer error", func(t *testing.T) {
		writer := mocks.NewMockMessageWriter(t)
		writer.EXPECT().WriteMessage("x", false).Return(errors.New("broken pipe"))

		svc := NewService("", writer)
		err := svc.Log(context.Background(), "x")
		assert.ErrorContains(t, err, "broken pipe")
	})
}

func TestService_GetProcessLogs(t *testing.T) {
	t.Run("returns lines from log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "dockside.log")
		require.NoError(t, os.WriteFile(logPath, []byte("line1\nline2\nline3\nline4\nline5\n"), 0644))

		svc := NewService(logPath, nil)

		lines, err := svc.GetProcessLogs(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"line3", "line4", "line5"}, lines)
	})

	t.Run("returns empty slice for non-existent file", func(t *testing.T) {
		svc := NewService("/nonexistent/file.log", nil)

		lines, err := svc.GetProcessLogs(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("returns error when log file path not configured", func(t *testing.T) {
		svc := NewService("", nil)

		_, err := svc.GetProcessLogs(context.Background(), 10)
		assert.ErrorContains(t, err, "log file path not configured")
	})

	t.Run("returns all lines when fewer than requested", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "dockside.log")
		require.NoError(t, os.WriteFile(logPath, []byte("line1\nline2\n"), 0644))

		svc := NewService(logPath, nil)

		lines, err := svc.GetProcessLogs(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"line1", "line2"}, lines)
	})
}

func TestService_FollowProcessLogs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dockside.log")
	require.NoError(t, os.WriteFile(logPath, []byte("initial1\ninitial2\n"), 0644))

	svc := NewService(logPath, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := svc.FollowProcessLogs(ctx, 2)
	require.NoError(t, err)

	var received []string
	for i := 0; i < 2; i++ {
		select {
		case line := <-ch:
			received = append(received, line)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for initial lines")
		}
	}
	assert.Equal(t, []string{"initial1", "initial2"}, received)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("appended\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case line := <-ch:
		assert.Equal(t, "appended", line)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for appended line")
	}

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTailLines(t *testing.T) {
	r := strings.NewReader("a\nb\nc\nd\ne\n")

	lines, err := tailLines(r, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e"}, lines)

	lines, err = tailLines(r, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
