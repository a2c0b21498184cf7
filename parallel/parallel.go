// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel provides the iteration strategies activation passes spread samples over.
//
// Any ForFunc may be passed to activation.Forward and activation.Backward; the
// results do not depend on which one is used.
//
//	forI := parallel.DefaultConfig().ForFunc() // chunked goroutines
//	forI = parallel.Limited(4)                 // at most 4 samples in flight
//	forI = parallel.Sequential                 // calling goroutine only
package parallel

import "github.com/born-ml/activ/internal/parallel"

// ForFunc invokes body(i) exactly once for every i in [0, n), in no particular order.
type ForFunc = parallel.ForFunc

// Config controls chunked parallel execution.
type Config = parallel.Config

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential runs every index on the calling goroutine, in order.
func Sequential(n int, body func(i int)) {
	parallel.Sequential(n, body)
}

// For executes f(i) for i in [0, n) according to cfg.
func For(n int, f func(i int), cfg Config) {
	parallel.For(n, f, cfg)
}

// Limited returns a ForFunc with at most workers indices in flight.
// workers <= 0 means runtime.NumCPU().
func Limited(workers int) ForFunc {
	return parallel.Limited(workers)
}
