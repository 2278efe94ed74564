package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/dockside/dockside/internal/domain"
)

// pullStream decodes the JSON message stream of an image pull.
type pullStream struct {
	body    io.ReadCloser
	decoder *json.Decoder
}

func newPullStream(body io.ReadCloser) *pullStream {
	return &pullStream{body: body, decoder: json.NewDecoder(body)}
}

// Next returns the next pull event, io.EOF at the end of a successful pull,
// or the engine's reason when the pull failed.
func (s *pullStream) Next(ctx context.Context) (domain.PullEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.PullEvent{}, err
	}

	var msg jsonmessage.JSONMessage
	if err := s.decoder.Decode(&msg); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.PullEvent{}, io.EOF
		}
		return domain.PullEvent{}, fmt.Errorf("failed to read pull stream: %w", err)
	}

	if msg.Error != nil {
		return domain.PullEvent{}, errors.New(msg.Error.Message)
	}
	if msg.ErrorMessage != "" {
		return domain.PullEvent{}, errors.New(msg.ErrorMessage)
	}

	ev := domain.PullEvent{LayerID: msg.ID, Status: msg.Status}
	if msg.Progress != nil {
		ev.Progress = &domain.ByteProgress{Current: msg.Progress.Current, Total: msg.Progress.Total}
	}
	return ev, nil
}

// Close abandons the stream.
func (s *pullStream) Close() error {
	return s.body.Close()
}
