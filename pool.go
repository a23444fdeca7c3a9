package mdsite

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one page renders at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrency; page generation is I/O-light and
	// more goroutines stop paying off quickly.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the OS and the static copy.
	cpuDivisor = 2
)

// ResolveWorkers determines how many pages to render concurrently.
// Priority: explicit count > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// runPool executes fn for every index in [0, n) on at most workers
// goroutines. Errors are slotted by index so reporting order is stable
// regardless of scheduling; pages render independently, so no other
// coordination is needed.
func runPool(ctx context.Context, workers, n int, fn func(i int) error) error {
	if workers < MinWorkers {
		workers = MinWorkers
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				errs[i] = fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return errors.Join(errs...)
}
