//go:build windows

package clip

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

var procGetClipboardSequenceNumber = windows.NewLazySystemDLL("user32.dll").NewProc("GetClipboardSequenceNumber")

// sequenceCounter reads the clipboard sequence number, incremented by the
// system whenever the clipboard contents change.
type sequenceCounter struct{}

// NewChangeCounter returns the Windows clipboard sequence counter, or an
// ElapsedCounter if user32 does not export it.
func NewChangeCounter() ChangeCounter {
	if err := procGetClipboardSequenceNumber.Find(); err != nil {
		slog.Warn("clipboard sequence number unavailable, polling once per second", "err", err)
		return NewElapsedCounter()
	}
	return sequenceCounter{}
}

func (sequenceCounter) ChangeCount() uint64 {
	r, _, _ := procGetClipboardSequenceNumber.Call()
	return uint64(uint32(r))
}
