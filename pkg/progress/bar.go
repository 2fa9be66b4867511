package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// smoothingWeight is the exponential-smoothing factor applied to the
	// moving average between renders. Higher values weight history more
	// heavily, reacting slower to speed changes.
	smoothingWeight = 0.8

	defaultWindowSize  = 250
	defaultMinInterval = 100 * time.Millisecond
	defaultSegments    = 10
)

// Options configures a Bar.
type Options struct {
	Total         int           // expected item count, 0 = unknown
	Label         string        // display prefix
	Output        io.Writer     // where the meter is written (default: os.Stderr)
	ClearOnFinish bool          // erase the meter line on Finish (default: true)
	MinInterval   time.Duration // minimum time between renders
	CheckEvery    int           // items between render-interval checks
	Segments      int           // bar resolution
	WindowSize    int           // inter-tick intervals kept for the moving average
}

// Option is a functional option for configuring a Bar.
type Option func(*Options)

// WithTotal sets the expected number of items. A total of 0 means the
// total is unknown and the meter renders in indeterminate form.
func WithTotal(n int) Option {
	return func(o *Options) {
		o.Total = n
	}
}

// WithLabel sets a prefix displayed before the meter.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// WithOutput sets the writer the meter is rendered to.
// Default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithClearOnFinish controls whether Finish erases the meter line or
// leaves it on screen followed by a newline. Default is true (erase).
func WithClearOnFinish(clear bool) Option {
	return func(o *Options) {
		o.ClearOnFinish = clear
	}
}

// WithMinInterval sets the minimum time between renders. Default is 100ms.
func WithMinInterval(d time.Duration) Option {
	return func(o *Options) {
		o.MinInterval = d
	}
}

// WithCheckEvery sets how many items must pass since the last render
// before the render interval is checked again. Raising this bounds the
// per-item overhead for very fast loops. Default is 1.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		o.CheckEvery = n
	}
}

// WithSegments sets the number of bar segments. Default is 10.
func WithSegments(n int) Option {
	return func(o *Options) {
		o.Segments = n
	}
}

// WithWindowSize sets how many recent inter-tick intervals feed the
// moving average. Default is 250.
func WithWindowSize(n int) Option {
	return func(o *Options) {
		o.WindowSize = n
	}
}

// Bar is the progress meter engine. It owns the rate estimate and render
// throttling for one iteration over one sequence.
//
// A Bar is driven by the iteration itself: call Tick once per consumed
// item and Finish exactly once when iteration ends, however it ends. It
// must not be shared across goroutines or reused after Finish.
type Bar struct {
	opts  Options
	label string // "" or "label: "

	count       int
	lastPrinted int // count at last render
	start       time.Time
	lastRender  time.Time
	lastTick    time.Time
	lastLen     int // rendered line length, for overwrite padding

	secsPerItem float64 // smoothed estimate, 0 = no estimate yet
	window      *window

	finished bool
}

// New creates a Bar. The zero-item state renders nothing; the first Tick
// triggers the initial render.
func New(options ...Option) *Bar {
	opts := Options{
		ClearOnFinish: true,
		MinInterval:   defaultMinInterval,
		CheckEvery:    1,
		Segments:      defaultSegments,
		WindowSize:    defaultWindowSize,
	}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.CheckEvery < 1 {
		opts.CheckEvery = 1
	}
	if opts.Segments < 1 {
		opts.Segments = defaultSegments
	}

	label := ""
	if opts.Label != "" {
		label = opts.Label + ": "
	}

	return &Bar{
		opts:   opts,
		label:  label,
		start:  time.Now(),
		window: newWindow(opts.WindowSize),
	}
}

// Tick records one consumed item and renders the meter when due. The
// first Tick always renders; later ticks render at most once per
// MinInterval, and the interval is only checked once CheckEvery items
// have passed since the last render.
//
// Write errors from the output device are returned unchanged.
func (b *Bar) Tick() error {
	now := time.Now()

	if b.count == 0 {
		b.count = 1
		b.lastTick = now
		b.estimate()
		return b.render(now)
	}

	b.count++
	b.window.push(now.Sub(b.lastTick).Seconds())
	b.lastTick = now

	if b.count-b.lastPrinted < b.opts.CheckEvery {
		return nil
	}
	if now.Sub(b.lastRender) < b.opts.MinInterval {
		return nil
	}

	b.estimate()
	return b.render(now)
}

// Finish renders the meter one final time regardless of throttling, then
// either erases the line or leaves it on screen with a trailing newline.
// Finish is idempotent; a Bar must not be ticked after it.
func (b *Bar) Finish() error {
	if b.finished {
		return nil
	}
	b.finished = true

	b.estimate()
	if err := b.render(time.Now()); err != nil {
		return err
	}

	if b.opts.ClearOnFinish {
		_, err := fmt.Fprintf(b.opts.Output, "\r%s\r", strings.Repeat(" ", b.lastLen))
		return err
	}
	_, err := fmt.Fprintln(b.opts.Output)
	return err
}

// Count returns the number of items recorded so far.
func (b *Bar) Count() int {
	return b.count
}

// estimate folds the current moving average into the smoothed
// seconds-per-item estimate. With no samples yet the estimate is left
// unset and the meter shows rate "0" and remaining time "?".
func (b *Bar) estimate() {
	avg, ok := b.window.average()
	if !ok {
		return
	}
	if b.secsPerItem > 0 {
		b.secsPerItem = avg*(1-smoothingWeight) + b.secsPerItem*smoothingWeight
	} else {
		b.secsPerItem = avg
	}
}

// render overwrites the current line: carriage return, label, meter, and
// enough trailing spaces to cover a longer previous line.
func (b *Bar) render(now time.Time) error {
	line := b.label + formatMeter(b.count, b.opts.Total, b.opts.Segments, now.Sub(b.start), b.secsPerItem)

	pad := b.lastLen - len(line)
	if pad < 0 {
		pad = 0
	}

	if _, err := fmt.Fprintf(b.opts.Output, "\r%s%s", line, strings.Repeat(" ", pad)); err != nil {
		return err
	}

	b.lastLen = len(line)
	b.lastPrinted = b.count
	b.lastRender = now
	return nil
}
