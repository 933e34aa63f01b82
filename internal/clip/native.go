package clip

import (
	"errors"
	"fmt"

	"golang.design/x/clipboard"
)

type nativeBackend struct{}

// openNative initialises golang.design/x/clipboard. Init is idempotent, so
// every handle calls it; the first failure is sticky.
func openNative() (Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: native: %w", ErrUnavailable, err)
	}
	return nativeBackend{}, nil
}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) ReadText() (string, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", ErrNoText
	}
	return string(data), nil
}

func (nativeBackend) WriteText(text string) error {
	// Write returns a nil channel when the platform rejected the data.
	if clipboard.Write(clipboard.FmtText, []byte(text)) == nil {
		return errors.New("native clipboard write failed")
	}
	return nil
}
