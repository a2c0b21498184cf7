// Package parallel provides the iteration strategies used to spread per-sample work over a batch.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ForFunc invokes body(i) exactly once for every i in [0, n).
//
// Implementations give no ordering guarantee and may run bodies concurrently,
// so bodies must only touch index-disjoint state.
type ForFunc func(n int, body func(i int))

// Sequential runs body(0), body(1), ... body(n-1) on the calling goroutine.
func Sequential(n int, body func(i int)) {
	for i := 0; i < n; i++ {
		body(i)
	}
}

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		Sequential(n, f)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForFunc binds cfg to For.
func (cfg Config) ForFunc() ForFunc {
	return func(n int, body func(i int)) {
		For(n, body, cfg)
	}
}

// Limited returns a ForFunc that schedules one task per index on an errgroup
// with at most workers tasks in flight. workers <= 0 means runtime.NumCPU().
func Limited(workers int) ForFunc {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return func(n int, body func(i int)) {
		if n <= 0 {
			return
		}
		if workers == 1 || n == 1 {
			Sequential(n, body)
			return
		}
		var g errgroup.Group
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				body(i)
				return nil
			})
		}
		_ = g.Wait()
	}
}
