package relay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.klb.dev/pbcat/internal/clip"
	"go.klb.dev/pbcat/internal/frame"
	"go.klb.dev/pbcat/internal/logging"
	"go.klb.dev/pbcat/internal/message"
)

// errNoClipboard is returned when ReceivedText arrives at a handler that was
// built without a clipboard (read-only mode).
var errNoClipboard = errors.New("no clipboard handle for received text")

// Handler is the only writer to the output stream and the clipboard, and the
// only owner of the last text acted on.
type Handler struct {
	out       *frame.Writer
	clipboard clip.Clipboard

	last    string
	hasLast bool
}

// NewHandler returns a handler writing framed records to out and received
// text to cb. cb may be nil when no text will be received.
func NewHandler(out io.Writer, cb clip.Clipboard) *Handler {
	return &Handler{
		out:       frame.NewWriter(out),
		clipboard: cb,
	}
}

// Handle applies one message. stop is true for Exit. A non-nil error means a
// sink failed and the process must not continue.
func (h *Handler) Handle(m message.Message) (stop bool, err error) {
	text, hasText := m.TextPayload()
	if hasText && h.hasLast && text == h.last {
		slog.Debug("no change", "kind", m.Kind)
		return false, nil
	}

	switch m.Kind {
	case message.KindClipboardTextChanged:
		slog.Debug("forwarding clipboard text", "preview", logging.Preview(text))
		if err := h.out.WriteRecord(text); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}

	case message.KindReceivedText:
		slog.Debug("writing to clipboard", "preview", logging.Preview(text))
		if h.clipboard == nil {
			return false, errNoClipboard
		}
		if err := h.clipboard.WriteText(text); err != nil {
			return false, fmt.Errorf("write clipboard: %w", err)
		}

	case message.KindExit:
		return true, nil

	default:
		return false, fmt.Errorf("unexpected message kind %v", m.Kind)
	}

	h.last = text
	h.hasLast = true
	return false, nil
}

// LastText returns the most recent text acted on.
func (h *Handler) LastText() (string, bool) { return h.last, h.hasLast }

// serve consumes q until Exit, channel close or a sink failure.
func (h *Handler) serve(q *queue) error {
	for m := range q.events {
		stop, err := h.Handle(m)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}
