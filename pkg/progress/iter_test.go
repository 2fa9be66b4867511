package progress

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"testing"
)

func TestSlicePassThrough(t *testing.T) {
	var buf bytes.Buffer
	in := []string{"a", "b", "c", "d"}

	var got []string
	for v := range Slice(in, WithOutput(&buf)) {
		got = append(got, v)
	}

	if !slices.Equal(got, in) {
		t.Errorf("wrapped iteration yielded %v, want %v", got, in)
	}
}

func TestSliceEagerTotal(t *testing.T) {
	var buf bytes.Buffer
	in := make([]int, 50)

	for range Slice(in, WithOutput(&buf), WithClearOnFinish(false)) {
	}

	// The slice length becomes the total before the first render.
	if !strings.Contains(buf.String(), "/50") {
		t.Errorf("expected total 50 in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "50/50 100%") {
		t.Errorf("final render should show completion, got %q", buf.String())
	}
}

func TestSeqIndeterminate(t *testing.T) {
	var buf bytes.Buffer
	seq := func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	for range Seq(iter.Seq[int](seq), WithOutput(&buf), WithClearOnFinish(false)) {
	}

	if strings.Contains(buf.String(), "|") {
		t.Errorf("sequence of unknown length should render indeterminate, got %q", buf.String())
	}
}

func TestSeqWithTotal(t *testing.T) {
	var buf bytes.Buffer
	seq := func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	for range Seq(iter.Seq[int](seq), WithTotal(3), WithOutput(&buf), WithClearOnFinish(false)) {
	}

	if !strings.Contains(buf.String(), "3/3 100%") {
		t.Errorf("expected determinate render with supplied total, got %q", buf.String())
	}
}

func TestChanPassThrough(t *testing.T) {
	var buf bytes.Buffer
	ch := make(chan int, 5)
	for i := 1; i <= 5; i++ {
		ch <- i
	}
	close(ch)

	var got []int
	for v := range Chan(ch, WithOutput(&buf)) {
		got = append(got, v)
	}

	if !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("wrapped channel yielded %v", got)
	}
}

func TestEarlyBreakStillFinishes(t *testing.T) {
	var buf bytes.Buffer
	in := []int{1, 2, 3, 4, 5}

	for v := range Slice(in, WithOutput(&buf), WithClearOnFinish(false)) {
		if v == 3 {
			break
		}
	}

	// The deferred Finish must run and terminate the meter line.
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("abandoned iteration should still finalize the meter, got %q", buf.String())
	}
}
