//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger pbcat_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

// pasteboardCounter reads NSPasteboard's changeCount, which the system bumps
// on every ownership change of the general pasteboard.
type pasteboardCounter struct{}

// NewChangeCounter returns the macOS pasteboard change counter.
func NewChangeCounter() ChangeCounter { return pasteboardCounter{} }

func (pasteboardCounter) ChangeCount() uint64 {
	return uint64(C.pbcat_changeCount())
}
