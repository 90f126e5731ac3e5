package anim

// FrameQueue is a Scheduler pumped by the host once per display frame.
// Callbacks requested while flushing run on the following frame.
type FrameQueue struct {
	pending []*frameCallback
}

type frameCallback struct {
	fn        func()
	cancelled bool
}

func (q *FrameQueue) RequestFrame(fn func()) func() {
	cb := &frameCallback{fn: fn}
	q.pending = append(q.pending, cb)
	return func() { q.remove(cb) }
}

func (q *FrameQueue) remove(cb *frameCallback) {
	cb.cancelled = true
	for i, p := range q.pending {
		if p == cb {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs everything queued before the call. A callback cancelled by an
// earlier one in the same batch is skipped.
func (q *FrameQueue) Flush() {
	batch := q.pending
	q.pending = nil
	for _, cb := range batch {
		if cb.cancelled {
			continue
		}
		cb.cancelled = true
		cb.fn()
	}
}

func (q *FrameQueue) Len() int {
	return len(q.pending)
}
