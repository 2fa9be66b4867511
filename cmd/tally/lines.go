package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ligustah/tally/internal/config"
	"github.com/ligustah/tally/pkg/progress"
)

func runLines(args []string) int {
	fs := flag.NewFlagSet("lines", flag.ExitOnError)

	total := fs.Int("total", 0, "Expected line count (0 = unknown)")
	label := fs.String("label", "", "Meter label")
	keep := fs.Bool("keep", false, "Leave the meter on screen when done")
	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: tally lines [options]

Copy stdin to stdout line by line while rendering a progress meter on
stderr. With -total the meter shows a bar and remaining-time estimate;
without it the meter shows only count, elapsed time, and rate.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, code := loadConfig(*configPath, config.Config{Label: *label, Keep: *keep})
	if code != ExitSuccess {
		return code
	}

	bar := progress.New(barOptions(cfg, *total)...)
	defer bar.Finish()

	if _, err := pumpLines(os.Stdin, os.Stdout, bar); err != nil {
		bar.Finish()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitGeneralError
	}

	return ExitSuccess
}

// pumpLines copies r to w line by line, ticking the bar once per line.
// It returns the number of lines copied. The line content is forwarded
// unchanged; only the meter observes the iteration.
func pumpLines(r io.Reader, w io.Writer, bar *progress.Bar) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lines := 0
	for scanner.Scan() {
		if _, err := w.Write(append(scanner.Bytes(), '\n')); err != nil {
			return lines, fmt.Errorf("write line: %w", err)
		}
		lines++
		if err := bar.Tick(); err != nil {
			return lines, fmt.Errorf("render meter: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// loadConfig builds the effective configuration: defaults, then config
// file, then environment, then flag overrides.
func loadConfig(path string, overrides config.Config) (config.Config, int) {
	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cfg, ExitInvalidArgs
		}
		cfg = loaded
	}

	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, ExitInvalidArgs
	}

	cfg = cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, ExitInvalidArgs
	}

	return cfg, ExitSuccess
}

// barOptions translates CLI configuration into progress options.
func barOptions(cfg config.Config, total int) []progress.Option {
	return []progress.Option{
		progress.WithTotal(total),
		progress.WithLabel(cfg.Label),
		progress.WithOutput(os.Stderr),
		progress.WithClearOnFinish(!cfg.Keep),
		progress.WithMinInterval(cfg.Interval),
		progress.WithCheckEvery(cfg.CheckEvery),
		progress.WithSegments(cfg.Segments),
		progress.WithWindowSize(cfg.Window),
	}
}
