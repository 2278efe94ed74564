package docker

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"

	"github.com/dockside/dockside/internal/domain"
)

// CopyFromContainer returns the content of one regular file inside a container.
// The engine sends a tar archive; only its first regular file is read.
func (e *Engine) CopyFromContainer(ctx context.Context, containerName, srcPath string) (io.ReadCloser, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CopyFromContainer",
		"container_name":      containerName,
		"path":                srcPath,
	})
	log := zerowrap.FromCtx(ctx)

	rc, stat, err := e.client.CopyFromContainer(ctx, containerName, srcPath)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s:%s", domain.ErrFileNotFound, containerName, srcPath)
		}
		return nil, log.WrapErr(classify(err, nil), "failed to copy from container")
	}
	if stat.Mode.IsDir() {
		rc.Close()
		return nil, fmt.Errorf("%s:%s is a directory", containerName, srcPath)
	}

	tr := tar.NewReader(rc)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			rc.Close()
			return nil, fmt.Errorf("%w: %s:%s", domain.ErrFileNotFound, containerName, srcPath)
		}
		if err != nil {
			rc.Close()
			return nil, log.WrapErr(err, "failed to read archive from container")
		}
		if hdr.Typeflag == tar.TypeReg {
			log.Debug().Int64("size", hdr.Size).Msg("copying file from container")
			return &tarFile{Reader: tr, closer: rc}, nil
		}
	}
}

// tarFile reads one archive entry and closes the whole archive stream.
type tarFile struct {
	io.Reader
	closer io.Closer
}

func (f *tarFile) Close() error {
	return f.closer.Close()
}
