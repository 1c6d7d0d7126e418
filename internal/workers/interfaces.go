// Package workers provides the bounded concurrency primitives used by the
// application's CPU- and memory-intensive paths.
//
// The central type is Pool, a counting semaphore handed to the password
// hasher so that the number of simultaneous scrypt derivations stays within
// a configured budget.
package workers

import "context"

// Limiter is the interface consumed by components that need to bound their
// own concurrency. Pool is the canonical implementation.
//
// Example usage:
//
//	if err := limiter.Acquire(ctx); err != nil {
//	    return err
//	}
//	defer limiter.Release()
type Limiter interface {
	// Acquire blocks until a slot is available or ctx is cancelled.
	Acquire(ctx context.Context) error

	// Release returns a slot to the pool.
	Release()
}
