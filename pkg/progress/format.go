package progress

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// formatMeter renders the status line for the current engine state.
// secsPerItem <= 0 means no rate estimate exists yet.
//
// A total of 0 means the total is unknown; a count beyond the total means
// the supplied total was wrong. Both render in indeterminate form.
func formatMeter(count, total, segments int, elapsed time.Duration, secsPerItem float64) string {
	rate := "0"
	if secsPerItem > 0 {
		rate = fmt.Sprintf("%.2f", 1/secsPerItem)
	}
	elapsedStr := FormatDuration(elapsed.Seconds())

	if total > 0 && count <= total {
		frac := float64(count) / float64(total)
		filled := int(frac * float64(segments))
		bar := strings.Repeat("#", filled) + strings.Repeat("-", segments-filled)

		left := "?"
		if secsPerItem > 0 {
			left = FormatDuration(secsPerItem * float64(total-count))
		}

		return fmt.Sprintf("|%s| %d/%d %d%% [elapsed: %s left: %s, %s iters/sec]",
			bar, count, total, int(math.Round(frac*100)), elapsedStr, left, rate)
	}

	return fmt.Sprintf("%d [elapsed: %s, %s iters/sec]", count, elapsedStr, rate)
}

// FormatDuration formats a number of seconds as H:MM:SS. Components are
// zero-padded to two digits; hours beyond 99 keep their full width.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds) / 60
	hours := minutes / 60
	secs := int(seconds) - minutes*60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes-hours*60, secs)
}
