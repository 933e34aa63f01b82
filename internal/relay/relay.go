// Package relay runs the pbcat bridge: two watchers feeding one handler over
// a single ordered channel.
//
//	stdin ──▶ input watcher ─────┐
//	                             ├──▶ queue ──▶ handler ──▶ stdout / clipboard
//	clipboard ──▶ clip watcher ──┘
//
// Shutdown is driven by data only. The input watcher sends Exit at end of
// input; the handler returns on Exit or when every producer is gone; a sink
// or source failure is fatal and ends Run with an error. There is no
// cancellation context.
package relay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.klb.dev/pbcat/internal/clip"
	"go.klb.dev/pbcat/internal/frame"
)

// ErrInvalidMode is returned for an unknown Mode.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects which directions are bridged.
type Mode string

const (
	// ModeDuplex bridges both directions.
	ModeDuplex Mode = "duplex"
	// ModeRead copies clipboard changes to the output stream only.
	ModeRead Mode = "read"
	// ModeWrite copies input records to the clipboard only.
	ModeWrite Mode = "write"
)

// ParseMode converts a flag value to a Mode; empty means duplex.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeDuplex, nil
	case ModeDuplex, ModeRead, ModeWrite:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q (want duplex|read|write)", ErrInvalidMode, s)
	}
}

func (m Mode) readsInput() bool       { return m == ModeDuplex || m == ModeWrite }
func (m Mode) watchesClipboard() bool { return m == ModeDuplex || m == ModeRead }

// Config is fixed for the lifetime of a Run.
type Config struct {
	// PollInterval between change-counter samples; DefaultPollInterval if zero.
	PollInterval time.Duration
	// Mode defaults to ModeDuplex.
	Mode Mode
	// Open returns a fresh clipboard handle. It is called once per worker
	// that touches the clipboard.
	Open func() (clip.Clipboard, error)
	// NewCounter returns the change counter for the clipboard watcher;
	// clip.NewChangeCounter if nil.
	NewCounter func() clip.ChangeCounter
}

const (
	inputWorker     = "input watcher"
	clipboardWorker = "clipboard watcher"
	handlerWorker   = "message handler"
)

type result struct {
	worker string
	err    error
}

// Run bridges in and out with the clipboard until the handler finishes or a
// worker fails. Workers still blocked in I/O when Run returns are left to
// process exit.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	if cfg.Mode == "" {
		cfg.Mode = ModeDuplex
	}
	if _, err := ParseMode(string(cfg.Mode)); err != nil {
		return err
	}
	if cfg.Open == nil {
		return errors.New("relay: no clipboard opener")
	}
	if cfg.NewCounter == nil {
		cfg.NewCounter = clip.NewChangeCounter
	}

	q := newQueue(queueSize)
	results := make(chan result, 3)

	var producers sync.WaitGroup
	spawn := func(worker string, producer bool, fn func() error) {
		if producer {
			producers.Add(1)
		}
		go func() {
			if producer {
				defer producers.Done()
			}
			results <- result{worker: worker, err: guard(fn)}
		}()
	}

	spawn(handlerWorker, false, func() error {
		defer q.stop()
		var cb clip.Clipboard
		if cfg.Mode.readsInput() {
			var err error
			if cb, err = cfg.Open(); err != nil {
				return fmt.Errorf("open clipboard: %w", err)
			}
		}
		return NewHandler(out, cb).serve(q)
	})

	if cfg.Mode.readsInput() {
		spawn(inputWorker, true, func() error {
			return watchInput(frame.NewReader(in), q)
		})
	}

	if cfg.Mode.watchesClipboard() {
		spawn(clipboardWorker, true, func() error {
			cb, err := cfg.Open()
			if err != nil {
				return fmt.Errorf("open clipboard: %w", err)
			}
			slog.Debug("watching clipboard", "backend", cb.Name(), "interval", cfg.PollInterval)
			return NewWatcher(cb, cfg.NewCounter(), cfg.PollInterval).run(q)
		})
	}

	go func() {
		producers.Wait()
		close(q.events)
	}()

	for r := range results {
		if r.err != nil {
			return fmt.Errorf("%s: %w", r.worker, r.err)
		}
		if r.worker == handlerWorker {
			return nil
		}
	}
	return nil
}

// guard runs fn, turning a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
