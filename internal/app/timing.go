package app

// FrameTiming tracks the previous frame timestamp and the last delta, in
// seconds of platform time.
type FrameTiming struct {
	Last  float64
	Delta float64
}

// Start seeds the previous timestamp so the first delta covers one frame
// rather than the whole startup.
func (t *FrameTiming) Start(now float64) {
	t.Last = now
	t.Delta = 0
}

// Advance records now and returns the seconds since the previous call.
// A clock that goes backwards yields zero.
func (t *FrameTiming) Advance(now float64) float64 {
	t.Delta = now - t.Last
	if t.Delta < 0 {
		t.Delta = 0
	}
	t.Last = now
	return t.Delta
}
