package relay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.klb.dev/pbcat/internal/frame"
	"go.klb.dev/pbcat/internal/message"
)

// watchInput forwards every record read from r as ReceivedText and finishes
// with Exit. It returns nil at end of input or once the handler is gone; only
// read errors are fatal.
func watchInput(r *frame.Reader, q *queue) error {
	for {
		text, err := r.ReadRecord()
		if errors.Is(err, io.EOF) {
			slog.Info("end of input")
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if !q.send(message.ReceivedText(text)) {
			slog.Debug("handler stopped, no longer reading input")
			break
		}
	}

	// Best effort: the handler may already be gone.
	_ = q.send(message.Exit())
	return nil
}
