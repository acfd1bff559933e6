package easel

import "sync"

const defaultQueueCap = 64

// Queue is an ordered buffer of Renderables awaiting the next draw tick.
// Insertion order is draw order: later items paint over earlier ones.
//
// Queue is safe for concurrent use. Readers never iterate the live buffer;
// take swaps it out for a spare one under the lock, so items pushed while a
// frame is being drawn land in the next frame.
type Queue struct {
	mu      sync.Mutex
	pending []Renderable
	spare   []Renderable
}

// NewQueue creates an empty queue with preallocated buffers.
func NewQueue() *Queue {
	return &Queue{
		pending: make([]Renderable, 0, defaultQueueCap),
		spare:   make([]Renderable, 0, defaultQueueCap),
	}
}

// Push appends items to the end of the queue.
func (q *Queue) Push(items ...Renderable) {
	q.mu.Lock()
	q.pending = append(q.pending, items...)
	q.mu.Unlock()
}

// Replace discards everything pending and installs a copy of items as the
// next frame.
func (q *Queue) Replace(items []Renderable) {
	q.mu.Lock()
	clear(q.pending)
	q.pending = append(q.pending[:0], items...)
	q.mu.Unlock()
}

// Clear discards every pending item without drawing it.
func (q *Queue) Clear() {
	q.mu.Lock()
	clear(q.pending)
	q.pending = q.pending[:0]
	q.mu.Unlock()
}

// Len returns the number of pending items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// take removes and returns the pending items in order. The caller owns the
// returned slice until it hands it back with recycle.
func (q *Queue) take() []Renderable {
	q.mu.Lock()
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = nil
	q.mu.Unlock()
	return out
}

// recycle zeroes buf so its items can be collected and keeps it as the
// spare buffer for the next take.
func (q *Queue) recycle(buf []Renderable) {
	clear(buf)
	q.mu.Lock()
	if q.spare == nil || cap(buf) > cap(q.spare) {
		q.spare = buf[:0]
	}
	q.mu.Unlock()
}
