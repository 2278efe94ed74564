// Package files implements the file helpers used by the desktop shell.
package files

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/dockside/dockside/internal/boundaries/out"
)

// DefaultOutputName is used when the container path has no usable base name.
const DefaultOutputName = "output.png"

// Service implements the FileService interface.
type Service struct {
	reader  out.ContainerFileReader
	tempDir string
}

// NewService creates a new file service. Copies land in tempDir, or in
// os.TempDir() when tempDir is empty.
func NewService(reader out.ContainerFileReader, tempDir string) *Service {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Service{reader: reader, tempDir: tempDir}
}

// ReadBase64 reads a host file and returns its standard base64 encoding.
func (s *Service) ReadBase64(ctx context.Context, path string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ReadBase64",
		"path":                path,
	})
	log := zerowrap.FromCtx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", log.WrapErr(err, fmt.Sprintf("failed to read file %s", path))
	}

	log.Debug().Int("bytes", len(data)).Msg("file read")
	return base64.StdEncoding.EncodeToString(data), nil
}

// CopyFromContainer copies one file out of a container into the temp
// directory and returns the host path.
func (s *Service) CopyFromContainer(ctx context.Context, containerName, containerPath string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CopyFromContainer",
		"container_name":      containerName,
		"container_path":      containerPath,
	})
	log := zerowrap.FromCtx(ctx)

	src, err := s.reader.CopyFromContainer(ctx, containerName, containerPath)
	if err != nil {
		return "", log.WrapErr(err, fmt.Sprintf("failed to copy file from container %s", containerName))
	}
	defer src.Close()

	dest := filepath.Join(s.tempDir, OutputName(containerPath))
	f, err := os.Create(dest)
	if err != nil {
		return "", log.WrapErr(err, "failed to create output file")
	}

	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		return "", log.WrapErr(err, "failed to write output file")
	}

	log.Info().Str("dest", dest).Int64("bytes", n).Msg("file copied from container")
	return dest, nil
}

// OutputName returns the host file name for a container path.
func OutputName(containerPath string) string {
	name := containerPath[strings.LastIndex(containerPath, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return DefaultOutputName
	}
	return name
}
