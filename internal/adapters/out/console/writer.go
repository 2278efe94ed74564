// Package console prints operator-facing messages with colored tags.
package console

import (
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/dockside/dockside/internal/boundaries/out"
)

var _ out.MessageWriter = (*Writer)(nil)

// Writer implements the MessageWriter interface.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	tag map[bool]*color.Color
	msg map[bool]*color.Color
}

// NewWriter creates a Writer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
		tag: map[bool]*color.Color{
			true:  color.New(color.FgRed, color.Bold),
			false: color.New(color.FgYellow, color.Bold),
		},
		msg: map[bool]*color.Color{
			true:  color.New(color.FgRed),
			false: color.New(color.FgGreen),
		},
	}
}

// WriteMessage prints "[ERROR] message" or "[LOG] message".
func (w *Writer) WriteMessage(message string, isError bool) error {
	label := "[LOG]"
	if isError {
		label = "[ERROR]"
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.tag[isError].Fprint(w.w, label); err != nil {
		return err
	}
	_, err := w.msg[isError].Fprintln(w.w, " "+message)
	return err
}
