// Package failopen runs an operation under a time limit and substitutes a
// fallback value when it fails, panics or runs out of time.
package failopen

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when the operation did not finish within the
// time limit. It wraps context.DeadlineExceeded.
var ErrTimeout = fmt.Errorf("operation timed out: %w", context.DeadlineExceeded)

// PanicError carries a value recovered from a panicking operation.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("operation panicked: %v", e.Value)
}

type outcome[T any] struct {
	val T
	err error
}

// Run calls op with a context limited to timeout. If op returns an error,
// panics, or is still running when the limit expires, Run returns
// fallback together with the cause. A non-nil error therefore always means
// fallback was substituted.
//
// Run never blocks past the limit: on expiry it stops waiting and cancels
// op's context, leaving op to wind down in its own goroutine.
func Run[T any](ctx context.Context, timeout time.Duration, fallback T, op func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so an abandoned op can still deliver and exit.
	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: &PanicError{Value: r}}
			}
		}()
		v, err := op(ctx)
		done <- outcome[T]{val: v, err: err}
	}()

	select {
	case o := <-done:
		if o.err == nil {
			return o.val, nil
		}
		// An op that noticed the deadline first still counts as a timeout.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fallback, fmt.Errorf("%w (%v)", ErrTimeout, o.err)
		}
		return fallback, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fallback, ErrTimeout
		}
		return fallback, ctx.Err()
	}
}
