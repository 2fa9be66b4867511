// Package progress renders a live, single-line progress meter for iteration.
//
// This package wraps any sequence of items and, as items are consumed,
// overwrites one line of text on the output device with the current count,
// a bar, the elapsed time, and a smoothed estimate of the iteration rate
// and time remaining. Items pass through unchanged.
//
// # Usage
//
//	for doc := range progress.Slice(docs, progress.WithLabel("indexing")) {
//	    index(doc)
//	}
//
// Or drive a [Bar] directly when a sequence wrapper does not fit:
//
//	bar := progress.New(progress.WithTotal(len(jobs)))
//	defer bar.Finish()
//	for _, job := range jobs {
//	    run(job)
//	    bar.Tick()
//	}
//
// # Output Format
//
// With a known total the meter is determinate:
//
//	indexing: |####------| 392/1000 39% [elapsed: 00:00:03 left: 00:00:06, 100.00 iters/sec]
//
// With an unknown total (or once the count exceeds it) the meter drops the
// bar, percentage, and remaining-time estimate:
//
//	indexing: 392 [elapsed: 00:00:03, 100.00 iters/sec]
//
// # Rate Estimation
//
// The rate shown is doubly smoothed: a bounded moving average over the most
// recent inter-tick intervals absorbs per-item jitter, and an exponential
// layer on top damps shifts of that average between renders, so the number
// on screen stays stable instead of flickering.
//
// # Throttling
//
// Rendering is rate-limited: a render happens at most once per
// [WithMinInterval], and with [WithCheckEvery] the clock comparison itself
// is skipped until enough items have passed, bounding the overhead added
// to very fast loops.
//
// A Bar belongs to a single goroutine driving a single iteration. It is
// not safe for concurrent ticks.
package progress
