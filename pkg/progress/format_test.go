package progress

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00"},
		{5.0, "00:00:05"},
		{59.9, "00:00:59"},
		{60, "00:01:00"},
		{3661.0, "01:01:01"},
		{360061, "100:01:01"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		result := FormatDuration(tt.seconds)
		if result != tt.expected {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, result, tt.expected)
		}
	}
}

func TestFormatMeter(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		total       int
		segments    int
		elapsed     time.Duration
		secsPerItem float64
		expected    string
	}{
		{
			name:  "determinate mid-run",
			count: 392, total: 1000, segments: 10,
			elapsed:     3920 * time.Millisecond,
			secsPerItem: 0.01,
			expected:    "|###-------| 392/1000 39% [elapsed: 00:00:03 left: 00:00:06, 100.00 iters/sec]",
		},
		{
			name:  "determinate no estimate yet",
			count: 1, total: 10, segments: 10,
			elapsed:     0,
			secsPerItem: 0,
			expected:    "|#---------| 1/10 10% [elapsed: 00:00:00 left: ?, 0 iters/sec]",
		},
		{
			name:  "determinate complete",
			count: 10, total: 10, segments: 10,
			elapsed:     5 * time.Second,
			secsPerItem: 0.5,
			expected:    "|##########| 10/10 100% [elapsed: 00:00:05 left: 00:00:00, 2.00 iters/sec]",
		},
		{
			name:  "unknown total",
			count: 7, total: 0, segments: 10,
			elapsed:     2 * time.Second,
			secsPerItem: 0.5,
			expected:    "7 [elapsed: 00:00:02, 2.00 iters/sec]",
		},
		{
			name:  "count exceeds total",
			count: 6, total: 5, segments: 10,
			elapsed:     2 * time.Second,
			secsPerItem: 0.5,
			expected:    "6 [elapsed: 00:00:02, 2.00 iters/sec]",
		},
		{
			name:  "unknown total no estimate",
			count: 1, total: 0, segments: 10,
			elapsed:     0,
			secsPerItem: 0,
			expected:    "1 [elapsed: 00:00:00, 0 iters/sec]",
		},
		{
			name:  "custom segment count",
			count: 1, total: 4, segments: 20,
			elapsed:     time.Second,
			secsPerItem: 1,
			expected:    "|#####---------------| 1/4 25% [elapsed: 00:00:01 left: 00:00:03, 1.00 iters/sec]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatMeter(tt.count, tt.total, tt.segments, tt.elapsed, tt.secsPerItem)
			if result != tt.expected {
				t.Errorf("formatMeter() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{256 * 1024 * 1024, "256.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TiB"},
	}

	for _, tt := range tests {
		result := FormatBytes(tt.input)
		if result != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
