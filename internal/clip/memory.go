package clip

import "sync"

// Memory is an in-process clipboard. It never touches the system clipboard
// and implements both Clipboard and ChangeCounter: every write bumps the
// change count.
type Memory struct {
	mu    sync.Mutex
	text  string
	set   bool
	count uint64
}

// NewMemory returns an empty Memory clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "memory" }

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set || m.text == "" {
		return "", ErrNoText
	}
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	m.text = text
	m.set = true
	m.count++
	m.mu.Unlock()
	return nil
}

// Clear empties the clipboard, as if it had been set to non-text content.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.text = ""
	m.set = false
	m.count++
	m.mu.Unlock()
}

func (m *Memory) ChangeCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

var (
	_ Clipboard     = (*Memory)(nil)
	_ ChangeCounter = (*Memory)(nil)
)
