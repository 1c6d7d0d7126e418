package workers

import "context"

// Pool is a counting semaphore that caps the number of key derivations
// running at once. scrypt is memory-hard on purpose, so an unbounded burst
// of sign-up or sign-in requests would otherwise exhaust process memory.
type Pool struct {
	slots chan struct{}
}

// NewPool creates a pool with the given number of slots.
// A size of zero or less falls back to a single slot.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Acquire blocks until a slot is free or ctx is done.
// A derivation that already started is never interrupted; cancellation
// applies only while waiting in line.
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot previously taken by Acquire.
func (p *Pool) Release() {
	<-p.slots
}

// Size returns the maximum number of concurrent slots.
func (p *Pool) Size() int {
	return cap(p.slots)
}
