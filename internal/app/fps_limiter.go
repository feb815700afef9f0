package app

import "time"

// spinWindow is how close to the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	limit int
	next  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter capped at limit frames per second.
// A limit of zero or less disables it.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit, now: time.Now, sleep: time.Sleep}
}

// Limit returns the current cap.
func (f *FPSLimiter) Limit() int {
	return f.limit
}

// Wait blocks until the next frame should start.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.limit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
		if !f.now().Before(f.next) {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
