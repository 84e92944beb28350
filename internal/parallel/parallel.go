// Package parallel fans cmd/straxisbench's benchmark sweep out across
// goroutines. The kernel engine itself stays single-threaded per call;
// this package only ever drives the CLI layer above it, running
// independent benchmark cases concurrently, and is never reachable from
// internal/kernel or internal/blasplan.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For spreads work across goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum item count before parallelizing at all.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For calls f(i) for every i in [0, n). Work is striped round-robin
// across cfg.NumWorkers goroutines rather than split into contiguous
// blocks: straxisbench's cases vary widely in cost (a small trace case
// is cheap, a large contract case is not), and a contiguous split can
// leave one worker with a run of the expensive cases while another
// finishes early. Round-robin striping spreads that variance evenly
// instead. Falls back to sequential execution when disabled or n is
// below MinChunkSize.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := cfg.NumWorkers
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += workers {
				f(i)
			}
		}(w)
	}
	wg.Wait()
}
