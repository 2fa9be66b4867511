package progress_test

import (
	"time"

	"github.com/ligustah/tally/pkg/progress"
)

func Example_slice() {
	items := []string{"alpha.dat", "beta.dat", "gamma.dat"}

	// The total comes from the slice length; the meter renders to stderr
	// and the items pass through unchanged.
	for item := range progress.Slice(items, progress.WithLabel("processing")) {
		process(item)
	}
}

func Example_bar() {
	bar := progress.New(
		progress.WithTotal(1000),
		progress.WithLabel("backfill"),
		progress.WithClearOnFinish(false),
	)
	defer bar.Finish()

	for i := 0; i < 1000; i++ {
		work(i)
		bar.Tick()
	}
}

func Example_channel() {
	events := make(chan int)
	go func() {
		defer close(events)
		for i := 0; i < 100; i++ {
			events <- i
		}
	}()

	// Unknown total: the meter shows count, elapsed time, and rate only.
	for e := range progress.Chan(events, progress.WithLabel("draining")) {
		handle(e)
	}
}

func process(string) { time.Sleep(time.Millisecond) }
func work(int)       { time.Sleep(time.Millisecond) }
func handle(int)     { time.Sleep(time.Millisecond) }
