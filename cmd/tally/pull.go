package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/ligustah/tally/internal/config"
	"github.com/ligustah/tally/pkg/progress"
)

func runPull(args []string) int {
	fs := flag.NewFlagSet("pull", flag.ExitOnError)

	bucketURL := fs.String("bucket", "", "Source bucket URL (required)")
	prefix := fs.String("prefix", "", "Object key prefix to pull")
	dir := fs.String("dir", ".", "Destination directory")
	label := fs.String("label", "", "Meter label")
	keep := fs.Bool("keep", false, "Leave the meter on screen when done")
	configPath := fs.String("config", "", "Path to YAML config file")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: tally pull [options]

Download every object under a prefix to a local directory, rendering a
progress meter over the object count. The object list is enumerated up
front so the meter can show a bar and remaining-time estimate.

Bucket URLs use gocloud syntax, e.g. s3://bucket, gs://bucket, or
file:///path for local testing.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	cfg, code := loadConfig(*configPath, config.Config{
		Label:  *label,
		Keep:   *keep,
		Bucket: *bucketURL,
		Prefix: *prefix,
		Dir:    *dir,
	})
	if code != ExitSuccess {
		return code
	}

	if cfg.Bucket == "" {
		fmt.Fprintln(os.Stderr, "Error: -bucket is required")
		fs.Usage()
		return ExitInvalidArgs
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[tally] Received interrupt, shutting down...")
		cancel()
	}()

	return pullPrefix(ctx, cfg)
}

func pullPrefix(ctx context.Context, cfg config.Config) int {
	bucket, err := blob.OpenBucket(ctx, cfg.Bucket)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitStorageError
	}
	defer bucket.Close()

	keys, err := listKeys(ctx, bucket, cfg.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitStorageError
	}
	if len(keys) == 0 {
		fmt.Fprintf(os.Stderr, "[tally] No objects under prefix %q\n", cfg.Prefix)
		return ExitSuccess
	}

	bar := progress.New(barOptions(cfg, len(keys))...)
	defer bar.Finish()

	start := time.Now()
	var totalBytes int64
	for _, key := range keys {
		n, err := pullObject(ctx, bucket, key, cfg.Prefix, cfg.Dir)
		if err != nil {
			bar.Finish()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitStorageError
		}
		totalBytes += n
		if err := bar.Tick(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitGeneralError
		}
	}

	bar.Finish()
	fmt.Fprintf(os.Stderr, "[tally] Pulled %d objects (%s) in %s\n",
		len(keys),
		progress.FormatBytes(totalBytes),
		progress.FormatDuration(time.Since(start).Seconds()),
	)
	return ExitSuccess
}

// listKeys enumerates all object keys under prefix. The full list is
// collected before any download so the meter total is known up front.
func listKeys(ctx context.Context, bucket *blob.Bucket, prefix string) ([]string, error) {
	var keys []string
	it := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// pullObject downloads a single object to dir, preserving the key path
// relative to the prefix. Returns the number of bytes written.
func pullObject(ctx context.Context, bucket *blob.Bucket, key, prefix, dir string) (int64, error) {
	rel := strings.TrimPrefix(key, prefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		rel = filepath.Base(key)
	}
	dest := filepath.Join(dir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("create directory: %w", err)
	}

	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return 0, fmt.Errorf("open object %s: %w", key, err)
	}
	defer r.Close()

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("create file %s: %w", dest, err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		return n, fmt.Errorf("download %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close file %s: %w", dest, err)
	}
	return n, nil
}
