package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/idmask/internal/config"
)

// itemResult is one processed item, printed as it completes.
type itemResult struct {
	input  string
	output string
	err    error
}

// runBatch applies process to every entry in cfg.Args concurrently, under a
// cfg.Parallel worker cap, printing results as they complete and an
// optional stats summary at the end. Mirrors the teacher's
// errgroup-plus-printer-goroutine shape, applied to identifiers/tokens
// instead of files.
func runBatch(cfg *config.Config, process func(arg string) (string, error)) error {
	start := time.Now()

	results := make(chan itemResult, len(cfg.Args))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	printed := make(chan struct{})

	var processed, errored int

	go func() {
		defer close(printed)

		for res := range results {
			if res.err != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", res.input, res.err)

				continue
			}

			processed++

			if !cfg.Quiet {
				fmt.Println(res.output) //nolint:forbidigo
			}
		}
	}()

	for _, arg := range cfg.Args {
		group.Go(func() error {
			out, err := process(arg)
			if err != nil {
				results <- itemResult{input: arg, err: err}

				return err
			}

			results <- itemResult{input: arg, output: out}

			return nil
		})
	}

	err := group.Wait()

	close(results)

	<-printed

	if cfg.Stats {
		printStats(len(cfg.Args), processed, errored, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("batch processing: %w", err)
	}

	return nil
}

func printStats(scanned, processed, errored int, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %s\n", humanize.Comma(int64(scanned)))
	fmt.Fprintf(os.Stderr, "  Processed: %s\n", humanize.Comma(int64(processed)))
	fmt.Fprintf(os.Stderr, "  Errors:    %s\n", humanize.Comma(int64(errored)))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
