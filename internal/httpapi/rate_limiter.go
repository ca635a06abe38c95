package httpapi

import (
	"sync"
	"time"
)

const (
	// DefaultRateLimitWindow is the rolling window over which submissions are counted.
	DefaultRateLimitWindow = 15 * time.Minute
	// DefaultRateLimitMaxRequests is the number of submissions allowed per client per window.
	DefaultRateLimitMaxRequests = 5
)

// SubmissionRateLimiter decides whether one more request from the given
// client key is admitted. Implementations must be safe for concurrent use.
type SubmissionRateLimiter interface {
	Allow(clientKey string) bool
}

// SlidingWindowRateLimiter admits at most maxRequestsPerWindow requests per
// client key within a rolling window. Counters live in process memory, so
// they reset on restart; multi-instance deployments need a shared backing
// store behind the same interface.
type SlidingWindowRateLimiter struct {
	window               time.Duration
	maxRequestsPerWindow int
	mutex                sync.Mutex
	requestTimesByKey    map[string][]time.Time
	now                  func() time.Time
}

// NewSlidingWindowRateLimiter creates a limiter with the given window and
// per-window request budget.
func NewSlidingWindowRateLimiter(window time.Duration, maxRequestsPerWindow int) *SlidingWindowRateLimiter {
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	if maxRequestsPerWindow <= 0 {
		maxRequestsPerWindow = DefaultRateLimitMaxRequests
	}
	return &SlidingWindowRateLimiter{
		window:               window,
		maxRequestsPerWindow: maxRequestsPerWindow,
		requestTimesByKey:    make(map[string][]time.Time),
		now:                  time.Now,
	}
}

// WithClock overrides the limiter's time source.
func (limiter *SlidingWindowRateLimiter) WithClock(now func() time.Time) *SlidingWindowRateLimiter {
	if now != nil {
		limiter.now = now
	}
	return limiter
}

// Allow records one request for the client key and reports whether it fits
// the budget. The count and the admission decision happen under one lock so
// concurrent bursts from the same client cannot undercount.
func (limiter *SlidingWindowRateLimiter) Allow(clientKey string) bool {
	currentTime := limiter.now()
	windowStart := currentTime.Add(-limiter.window)

	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	recentTimes := pruneBefore(limiter.requestTimesByKey[clientKey], windowStart)
	if len(recentTimes) >= limiter.maxRequestsPerWindow {
		limiter.requestTimesByKey[clientKey] = recentTimes
		return false
	}

	limiter.requestTimesByKey[clientKey] = append(recentTimes, currentTime)
	limiter.pruneStaleKeysLocked(windowStart)
	return true
}

func pruneBefore(requestTimes []time.Time, windowStart time.Time) []time.Time {
	firstRecentIndex := 0
	for firstRecentIndex < len(requestTimes) && !requestTimes[firstRecentIndex].After(windowStart) {
		firstRecentIndex++
	}
	if firstRecentIndex == 0 {
		return requestTimes
	}
	return append([]time.Time(nil), requestTimes[firstRecentIndex:]...)
}

func (limiter *SlidingWindowRateLimiter) pruneStaleKeysLocked(windowStart time.Time) {
	for clientKey, requestTimes := range limiter.requestTimesByKey {
		if len(requestTimes) == 0 || !requestTimes[len(requestTimes)-1].After(windowStart) {
			delete(limiter.requestTimesByKey, clientKey)
		}
	}
}
