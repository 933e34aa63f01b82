package relay

import (
	"errors"
	"log/slog"
	"time"

	"go.klb.dev/pbcat/internal/clip"
	"go.klb.dev/pbcat/internal/logging"
	"go.klb.dev/pbcat/internal/message"
)

// DefaultPollInterval is how often the clipboard change counter is sampled.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher polls a clipboard for text changes. The clipboard is only read when
// the change counter moved since the previous poll.
type Watcher struct {
	clipboard clip.Clipboard
	counter   clip.ChangeCounter
	interval  time.Duration
	last      uint64
}

// NewWatcher samples the counter immediately, so contents already on the
// clipboard at startup are not reported.
func NewWatcher(cb clip.Clipboard, counter clip.ChangeCounter, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		clipboard: cb,
		counter:   counter,
		interval:  interval,
		last:      counter.ChangeCount(),
	}
}

// Poll runs one detection cycle. ok is false when the counter did not move or
// the clipboard holds no readable text.
func (w *Watcher) Poll() (text string, ok bool) {
	current := w.counter.ChangeCount()
	logging.Trace("clipboard poll", "count", current)

	if current == w.last {
		logging.Trace("no update")
		return "", false
	}
	w.last = current

	text, err := w.clipboard.ReadText()
	if err != nil {
		if errors.Is(err, clip.ErrNoText) {
			slog.Debug("no text on clipboard")
		} else {
			slog.Debug("clipboard read failed", "err", err)
		}
		return "", false
	}
	return text, true
}

// run polls until the handler stops. It never sends Exit.
func (w *Watcher) run(q *queue) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()
	for {
		select {
		case <-q.stopped():
			return nil
		case <-t.C:
		}

		text, ok := w.Poll()
		if !ok {
			continue
		}
		if !q.send(message.ClipboardTextChanged(text)) {
			return nil
		}
	}
}
