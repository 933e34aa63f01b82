package relay

import "go.klb.dev/pbcat/internal/message"

// queueSize bounds the event channel. Producers block once it is full; the
// handler drains it in order, so the bound only adds back-pressure.
const queueSize = 64

// queue is the single ordered channel between the watchers and the handler.
//
// Go channels cannot signal a dropped receiver, so the handler closes done
// when it returns and every send selects on it: a send that sees done closed
// reports false, which the watchers treat as the normal shutdown path.
// events itself is closed once every producer has returned.
type queue struct {
	events chan message.Message
	done   chan struct{}
}

func newQueue(size int) *queue {
	return &queue{
		events: make(chan message.Message, size),
		done:   make(chan struct{}),
	}
}

// send enqueues m. It returns false once the handler has stopped, even if
// buffer space is left.
func (q *queue) send(m message.Message) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.events <- m:
		return true
	case <-q.done:
		return false
	}
}

// stop marks the handler as gone. Only the handler calls it, exactly once.
func (q *queue) stop() { close(q.done) }

// stopped is closed after stop.
func (q *queue) stopped() <-chan struct{} { return q.done }
