// Package clip gives pbcat text access to the system clipboard.
//
// Two concerns are kept apart:
//
//	Clipboard     : read and write text through a backend handle
//	ChangeCounter : a cheap "did anything change" indicator, polled before
//	                paying for a read
//
// Build constraints select the change counter:
//
//	clip_darwin.go  : macOS NSPasteboard changeCount via cgo
//	clip_windows.go : Windows GetClipboardSequenceNumber via user32
//	clip_other.go   : everywhere else, an ElapsedCounter (1 Hz)
//
// Backends are chosen at run time with Open:
//
//	native.go  : golang.design/x/clipboard
//	command.go : github.com/atotto/clipboard (pbcopy, xclip, xsel, wl-copy, ...)
//	memory.go  : in-process, for tests
package clip

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrNoText is returned by ReadText when the clipboard is empty or holds
	// only non-text content.
	ErrNoText = errors.New("clipboard holds no text")

	// ErrUnavailable is returned by Open when no backend can reach a clipboard.
	ErrUnavailable = errors.New("clipboard unavailable")
)

// Clipboard is a handle on a clipboard. Handles are not shared between
// goroutines; each worker opens its own.
type Clipboard interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current text content, or ErrNoText.
	ReadText() (string, error)

	// WriteText replaces the clipboard content with text.
	WriteText(text string) error
}

// ChangeCounter reports an opaque value that changes whenever the clipboard
// may have changed. Values are only compared for equality with the previous
// observation of the same counter; wraps and resets read as a change.
type ChangeCounter interface {
	ChangeCount() uint64
}

// Kind selects a clipboard backend.
type Kind string

const (
	KindAuto    Kind = "auto"
	KindNative  Kind = "native"
	KindCommand Kind = "command"
)

// ParseKind converts a flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAuto, KindNative, KindCommand:
		return k, nil
	case "":
		return KindAuto, nil
	default:
		return "", fmt.Errorf("unknown clipboard backend %q (want auto|native|command)", s)
	}
}

// Open returns a new handle for the requested backend. KindAuto tries the
// native backend first and falls back to the command backend.
func Open(kind Kind) (Clipboard, error) {
	switch kind {
	case KindNative:
		return openNative()
	case KindCommand:
		return openCommand()
	case KindAuto, "":
		cb, err := openNative()
		if err == nil {
			return cb, nil
		}
		slog.Debug("native clipboard unavailable, trying command backend", "err", err)
		cb, cmdErr := openCommand()
		if cmdErr != nil {
			return nil, errors.Join(err, cmdErr)
		}
		return cb, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", kind)
	}
}
