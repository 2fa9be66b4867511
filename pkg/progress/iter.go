package progress

import (
	"iter"
	"slices"
)

// Slice wraps a slice in a sequence that meters consumption. The total is
// taken from len(s), so the meter is determinate from the first element.
// Elements are yielded unchanged and in order.
func Slice[S ~[]E, E any](s S, options ...Option) iter.Seq[E] {
	return wrap(slices.Values(s), append([]Option{WithTotal(len(s))}, options...))
}

// Seq wraps an arbitrary sequence. The element count cannot be known
// without consuming the sequence, so the meter is indeterminate unless
// WithTotal supplies an estimate.
func Seq[V any](seq iter.Seq[V], options ...Option) iter.Seq[V] {
	return wrap(seq, options)
}

// Chan wraps a channel, metering each received value until the channel
// is closed or the consumer stops.
func Chan[V any](ch <-chan V, options ...Option) iter.Seq[V] {
	return wrap(func(yield func(V) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}, options)
}

// wrap decorates seq with a Bar, ticking after each yielded element.
// Finish runs via defer, so the meter line is finalized even when the
// consumer breaks out early or panics. Render errors are not consumed
// here; a broken output device must not disturb the iteration.
func wrap[V any](seq iter.Seq[V], options []Option) iter.Seq[V] {
	return func(yield func(V) bool) {
		bar := New(options...)
		defer bar.Finish()

		for v := range seq {
			if !yield(v) {
				return
			}
			_ = bar.Tick()
		}
	}
}
