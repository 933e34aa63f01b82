//go:build !darwin && !windows

package clip

// NewChangeCounter returns an ElapsedCounter: X11 and Wayland expose no cheap
// change indicator, so the clipboard is re-read once per second.
func NewChangeCounter() ChangeCounter { return NewElapsedCounter() }
