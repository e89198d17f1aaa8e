package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrTemporary marks an error as worth retrying.
var ErrTemporary = errors.New("temporary failure")

// IsRetriable reports whether err is a transient broker or network failure.
func IsRetriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTemporary) {
		return true
	}
	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Temporary()
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

// Backoff configures RetryWithBackoff. Delays grow as BaseDelay*2^attempt plus jitter and are capped by MaxDelay when set.
type Backoff struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (b Backoff) delay(attempt int) time.Duration {
	d := time.Duration(math.Pow(2, float64(attempt))) * b.BaseDelay
	if b.BaseDelay > 0 {
		d += time.Duration(rand.Int63n(int64(b.BaseDelay))) //nolint:gosec // jitter doesn't need crypto rand
	}
	if b.MaxDelay > 0 && d > b.MaxDelay {
		d = b.MaxDelay
	}
	return d
}

func RetryWithBackoff[T any](ctx context.Context, b Backoff, fn func() (T, error)) (T, error) {
	var zero T
	if b.MaxRetries <= 0 {
		return zero, fmt.Errorf("maxRetries must be > 0, got %d", b.MaxRetries)
	}
	var lastErr error

	for i := 0; i < b.MaxRetries; i++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetriable(err) {
			return zero, err
		}

		if i < b.MaxRetries-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(b.delay(i)):
			}
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", b.MaxRetries, lastErr)
}

type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

type CircuitBreaker struct {
	mu               sync.Mutex
	state            CircuitState
	failureCount     int
	failureThreshold int
	resetTimeout     time.Duration
	lastFailureTime  time.Time
}

func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
	}
}

var ErrCircuitOpen = errors.New("circuit breaker is open")

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Execute runs fn unless the breaker is open. Only retriable failures count towards tripping it.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) <= cb.resetTimeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch {
	case err == nil:
		cb.failureCount = 0
		cb.state = StateClosed
	case IsRetriable(err):
		cb.failureCount++
		cb.lastFailureTime = time.Now()
		if cb.state == StateHalfOpen || cb.failureCount >= cb.failureThreshold {
			cb.state = StateOpen
		}
	}
	return err
}

func RetryWithCircuitBreaker[T any](ctx context.Context, cb *CircuitBreaker, b Backoff, fn func() (T, error)) (T, error) {
	return RetryWithBackoff(ctx, b, func() (T, error) {
		var result T
		var fnErr error
		cbErr := cb.Execute(func() error {
			result, fnErr = fn()
			return fnErr
		})
		if cbErr != nil && !errors.Is(cbErr, fnErr) {
			return result, cbErr
		}
		return result, fnErr
	})
}
