package seqdiff

import "time"

// timeoutSampleInterval controls how often Valid actually reads the clock.
// Reading time.Now on every inner-loop iteration would dominate the diff
// itself, so the clock is sampled once per interval of calls.
const timeoutSampleInterval = 512

// Timeout bounds a diff computation by wall-clock time. The zero deadline
// means unbounded. A Timeout carries a call counter and must not be shared
// across goroutines; derive one per worker from the same deadline instead.
type Timeout struct {
	deadline time.Time
	calls    int
	expired  bool
}

// Infinite returns a timeout that never expires.
func Infinite() *Timeout { return &Timeout{} }

// Deadline returns a timeout that expires budget from now.
func Deadline(budget time.Duration) *Timeout {
	return &Timeout{deadline: time.Now().Add(budget)}
}

// At returns a timeout that expires at deadline. A zero deadline never
// expires.
func At(deadline time.Time) *Timeout { return &Timeout{deadline: deadline} }

// Valid reports whether the computation may continue. Once it has returned
// false it keeps returning false.
func (t *Timeout) Valid() bool {
	if t.expired {
		return false
	}
	if t.deadline.IsZero() {
		return true
	}
	t.calls++
	if t.calls%timeoutSampleInterval != 0 {
		return true
	}
	if !time.Now().Before(t.deadline) {
		t.expired = true
		return false
	}
	return true
}
