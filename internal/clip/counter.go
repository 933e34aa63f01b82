package clip

import "time"

// ElapsedCounter approximates a change counter on platforms without one: the
// count is the number of whole seconds since the counter was created, so a
// poller reads the clipboard at most once per second whether or not anything
// changed.
type ElapsedCounter struct {
	start time.Time
	now   func() time.Time
}

// NewElapsedCounter returns a counter starting at zero now.
func NewElapsedCounter() *ElapsedCounter {
	return newElapsedCounter(time.Now)
}

func newElapsedCounter(now func() time.Time) *ElapsedCounter {
	return &ElapsedCounter{start: now(), now: now}
}

func (c *ElapsedCounter) ChangeCount() uint64 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Second)
}
