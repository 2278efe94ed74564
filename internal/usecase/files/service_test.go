package files

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/boundaries/out/mocks"
	"github.com/dockside/dockside/internal/domain"
)

func TestService_ReadBase64(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.png")
	data := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
	require.NoError(t, os.WriteFile(path, data, 0600))

	svc := NewService(nil, t.TempDir())

	encoded, err := svc.ReadBase64(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), encoded)

	_, err = svc.ReadBase64(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestService_CopyFromContainer(t *testing.T) {
	t.Run("writes file into temp dir", func(t *testing.T) {
		reader := mocks.NewMockContainerFileReader(t)
		dir := t.TempDir()

		reader.EXPECT().
			CopyFromContainer(mock.Anything, "bg_remove_container", "/app/out/result.png").
			Return(io.NopCloser(strings.NewReader("pixels")), nil)

		svc := NewService(reader, dir)

		dest, err := svc.CopyFromContainer(context.Background(), "bg_remove_container", "/app/out/result.png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "result.png"), dest)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "pixels", string(got))
	})

	t.Run("reader error", func(t *testing.T) {
		reader := mocks.NewMockContainerFileReader(t)
		reader.EXPECT().
			CopyFromContainer(mock.Anything, "gone", "/x").
			Return(nil, domain.ErrFileNotFound)

		svc := NewService(reader, t.TempDir())

		_, err := svc.CopyFromContainer(context.Background(), "gone", "/x")
		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})

	t.Run("stream error removes partial file", func(t *testing.T) {
		reader := mocks.NewMockContainerFileReader(t)
		dir := t.TempDir()
		reader.EXPECT().
			CopyFromContainer(mock.Anything, "c", "/out.bin").
			Return(io.NopCloser(io.MultiReader(strings.NewReader("part"), errReader{})), nil)

		svc := NewService(reader, dir)

		_, err := svc.CopyFromContainer(context.Background(), "c", "/out.bin")
		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "out.bin"))
	})
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "result.png", OutputName("/app/result.png"))
	assert.Equal(t, "result.png", OutputName("result.png"))
	assert.Equal(t, DefaultOutputName, OutputName("/app/out/"))
	assert.Equal(t, DefaultOutputName, OutputName(""))
	assert.Equal(t, DefaultOutputName, OutputName("/app/.."))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
