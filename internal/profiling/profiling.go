// Package profiling accumulates per-frame CPU time by named section.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Frame collects section totals for the frame in progress.
// Usage: defer frame.Track("renderer.Render")()
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

// NewFrame returns an empty frame profiler using the wall clock.
func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that records the elapsed time under name.
// A nil Frame tracks nothing.
func (f *Frame) Track(name string) func() {
	if f == nil {
		return func() {}
	}
	start := f.now()
	return func() {
		d := f.now().Sub(start)
		f.mu.Lock()
		f.totals[name] += d
		f.mu.Unlock()
	}
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// TopN formats the n largest totals, longest first.
// Example: "renderer.Render:4.2ms, input.Poll:0.1ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	ss := f.Snapshot()
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = max(0, min(n, len(list)))

	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing .0.
func formatMs(d time.Duration) string {
	tenths := d.Microseconds() / 100
	s := strconv.FormatInt(tenths/10, 10)
	if frac := tenths % 10; frac != 0 {
		s += "." + strconv.FormatInt(frac, 10)
	}
	return s + "ms"
}
