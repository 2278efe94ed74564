// Package logs implements the log access use case.
package logs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/dockside/dockside/internal/boundaries/out"
)

// errorMarkers flag a message as an error when found in its lowercase form.
var errorMarkers = []string{"error", "fail", "lỗi"}

// Service implements the LogService interface.
type Service struct {
	logFilePath string
	writer      out.MessageWriter
}

// NewService creates a new log service.
func NewService(logFilePath string, writer out.MessageWriter) *Service {
	return &Service{
		logFilePath: logFilePath,
		writer:      writer,
	}
}

// IsErrorMessage reports whether message reads like an error report.
func IsErrorMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range errorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Log prints message on the console and records it in the structured log.
func (s *Service) Log(ctx context.Context, message string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Log",
	})
	log := zerowrap.FromCtx(ctx)

	isError := IsErrorMessage(message)
	if isError {
		log.Error().Str("message", message).Msg("frontend log")
	} else {
		log.Info().Str("message", message).Msg("frontend log")
	}

	if err := s.writer.WriteMessage(message, isError); err != nil {
		return log.WrapErr(err, "failed to write message")
	}
	return nil
}

// GetProcessLogs returns the last N lines of the dockside log file.
func (s *Service) GetProcessLogs(ctx context.Context, lines int) ([]string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetProcessLogs",
		"lines":               lines,
	})
	log := zerowrap.FromCtx(ctx)

	if s.logFilePath == "" {
		return nil, fmt.Errorf("log file path not configured")
	}

	file, err := os.Open(s.logFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, log.WrapErr(err, "failed to open log file")
	}
	defer file.Close()

	return tailLines(file, lines)
}

// FollowProcessLogs returns a channel that streams dockside log lines.
func (s *Service) FollowProcessLogs(ctx context.Context, initialLines int) (<-chan string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "FollowProcessLogs",
		"initial_lines":       initialLines,
	})
	log := zerowrap.FromCtx(ctx)

	if s.logFilePath == "" {
		return nil, fmt.Errorf("log file path not configured")
	}

	file, err := os.Open(s.logFilePath)
	if err != nil {
		return nil, log.WrapErr(err, "failed to open log file")
	}

	ch := make(chan string, 100)

	go func() {
		defer close(ch)
		defer file.Close()

		if initialLines > 0 {
			lines, err := tailLines(file, initialLines)
			if err != nil {
				log.Warn().Err(err).Msg("failed to read initial lines")
			}
			for _, line := range lines {
				select {
				case ch <- line:
				case <-ctx.Done():
					return
				}
			}
		}

		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			log.Warn().Err(err).Msg("failed to seek to end")
			return
		}

		reader := bufio.NewReader(file)
		var partial string
		for {
			chunk, err := reader.ReadString('\n')
			partial += chunk
			if err == io.EOF {
				select {
				case <-ctx.Done():
					return
				case <-time.After(100 * time.Millisecond):
				}
				continue
			}
			if err != nil {
				log.Warn().Err(err).Msg("error reading log file")
				return
			}
			line := strings.TrimRight(partial, "\n\r")
			partial = ""
			select {
			case ch <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// tailLines reads the last n lines from r using a ring buffer.
func tailLines(r io.ReadSeeker, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	ring := make([]string, n)
	next, total := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % n
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if total <= n {
		return append([]string{}, ring[:total]...), nil
	}
	return append(ring[next:], ring[:next]...), nil
}
