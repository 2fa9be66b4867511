package progress

// window holds the most recent inter-tick intervals, in seconds, in a
// fixed-capacity ring. When full, a push evicts the single oldest entry.
type window struct {
	samples []float64
	next    int // next write position
	size    int // number of valid entries
}

func newWindow(capacity int) *window {
	return &window{samples: make([]float64, capacity)}
}

// push appends an interval, evicting the oldest when the ring is full.
// A zero-capacity window discards everything.
func (w *window) push(v float64) {
	if len(w.samples) == 0 {
		return
	}
	w.samples[w.next] = v
	w.next = (w.next + 1) % len(w.samples)
	if w.size < len(w.samples) {
		w.size++
	}
}

// average returns the arithmetic mean of the stored intervals. The second
// return value is false when no samples exist yet; callers must treat that
// as "insufficient data", not as a rate of zero.
func (w *window) average() (float64, bool) {
	if w.size == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range w.samples[:w.size] {
		sum += v
	}
	return sum / float64(w.size), true
}
