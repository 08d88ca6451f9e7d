// Package retry runs operations with deterministic exponential backoff.
//
// A policy with MaxRetries n calls the operation at most n+1 times, sleeping
// BaseDelay * 2^i before the (i+2)-th call. There is no jitter.
package retry

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy configures the number of retries and the base delay
type Policy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

// Operation is retried until it returns nil or a permanent error
type Operation = backoff.Operation

// Notify is called after each failed attempt with the error and the upcoming delay
type Notify = backoff.Notify

// Timer drives the sleeps between attempts
type Timer = backoff.Timer

// Permanent wraps err so that it is returned immediately without further retries
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// BackOff returns the backoff schedule described by the policy
func (p Policy) BackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, p.MaxRetries)
}

// Do runs op under the policy, honouring context cancellation
func Do(ctx context.Context, p Policy, op Operation, notify Notify) error {
	return DoWithTimer(ctx, p, nil, op, notify)
}

// DoWithTimer is Do with a custom timer; a nil timer uses the real one
func DoWithTimer(ctx context.Context, p Policy, timer Timer, op Operation, notify Notify) error {
	return backoff.RetryNotifyWithTimer(op, backoff.WithContext(p.BackOff(), ctx), notify, timer)
}
