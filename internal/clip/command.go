package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type commandBackend struct{}

// openCommand returns a backend that shells out to the platform clipboard
// utilities. It fails when none of them were found on PATH.
func openCommand() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("%w: command: no clipboard utility found", ErrUnavailable)
	}
	return commandBackend{}, nil
}

func (commandBackend) Name() string { return "command" }

func (commandBackend) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoText, err)
	}
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func (commandBackend) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("command clipboard write: %w", err)
	}
	return nil
}
