package in

import "context"

// FileService defines the contract for the file helpers of the desktop shell.
type FileService interface {
	// ReadBase64 reads a host file and returns it standard base64 encoded.
	ReadBase64(ctx context.Context, path string) (string, error)

	// CopyFromContainer copies a file out of a container into the host temp
	// directory and returns the host path.
	CopyFromContainer(ctx context.Context, containerName, containerPath string) (string, error)
}
