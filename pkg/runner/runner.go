package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/kdocfmt/pkg/fsutil"
	"github.com/yaklabco/kdocfmt/pkg/wrap"
)

// ErrNoResolver is returned when Options.Resolver is missing.
var ErrNoResolver = errors.New("runner: no resolver configured")

// Run discovers files under opts.Paths and formats them concurrently.
// Results are collected in deterministic path order regardless of worker
// completion order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Resolver == nil {
		return nil, ErrNoResolver
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker formats files from workCh and sends outcomes to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := processFile(path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile resolves options for one file, reformats it, and applies the
// run mode.
func processFile(path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	resolved, err := opts.Resolver.OptionsFor(path)
	if err != nil {
		outcome.Status = StatusErrored
		outcome.Error = fmt.Errorf("resolve options: %w", err)
		return outcome
	}

	content, info, err := fsutil.ReadFile(path)
	if err != nil {
		outcome.Status = StatusErrored
		outcome.Error = err
		return outcome
	}

	formatted := wrap.File(string(content), wrap.DetectKind(path), resolved)
	if formatted == string(content) {
		outcome.Status = StatusUnchanged
		return outcome
	}

	if opts.Mode == ModeCheck {
		outcome.Status = StatusChanged
		outcome.Formatted = formatted
		return outcome
	}

	// Refuse to clobber a file that changed under us between read and
	// write.
	modified, err := info.Modified()
	if err != nil {
		outcome.Status = StatusErrored
		outcome.Error = err
		return outcome
	}
	if modified {
		outcome.Status = StatusSkipped
		return outcome
	}

	if err := fsutil.WriteAtomic(path, []byte(formatted), info.Mode); err != nil {
		outcome.Status = StatusErrored
		outcome.Error = err
		return outcome
	}

	outcome.Status = StatusWritten
	return outcome
}
