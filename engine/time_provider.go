package engine

import "time"

// TimeProvider abstracts the clock so frame timing can be driven in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider { return &MonotonicTimeProvider{} }

func (*MonotonicTimeProvider) Now() time.Time { return time.Now() }
