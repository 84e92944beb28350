// Package config supplies the RecursiveKernel's tuning knobs: the
// cache-blocking base-case threshold and the default contraction
// dispatch method. These are expected to be re-tuned per deployment
// target, so they are loadable from a YAML file rather than fixed as
// Go constants.
package config

import (
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// defaultBaseCaseThreshold matches internal/kernel's baseCaseThreshold:
// the element count below which splitRecurse falls through to a flat
// walkAxis traversal instead of bisecting further.
const defaultBaseCaseThreshold = 4096

// Config holds the tunable knobs read by the kernel and planner.
type Config struct {
	// BaseCaseThreshold is the element count at or below which
	// splitRecurse stops bisecting and walks the remaining axes flat.
	BaseCaseThreshold int `yaml:"baseCaseThreshold"`

	// DefaultMethod names the Method Contract resolves MethodAuto to:
	// "auto" keeps the built-in library-preferring heuristic, "native"
	// forces internal/kernel's RecursiveKernel, "library" forces
	// internal/blasplan's BLAS gemm dispatch.
	DefaultMethod string `yaml:"defaultMethod"`
}

// Default returns the built-in tuning configuration.
func Default() Config {
	return Config{
		BaseCaseThreshold: defaultBaseCaseThreshold,
		DefaultMethod:     "auto",
	}
}

var current atomic.Value // holds Config

func init() {
	current.Store(Default())
}

var loadMu sync.Mutex

// LoadFile reads a YAML tuning file and installs it as the current
// configuration for the process. Fields absent from the file keep
// their Default() value.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	if cfg.BaseCaseThreshold <= 0 {
		cfg.BaseCaseThreshold = defaultBaseCaseThreshold
	}
	current.Store(cfg)
	return nil
}

// Current returns the process-wide tuning configuration, as installed
// by the most recent LoadFile call, or Default if none has run.
func Current() Config {
	return current.Load().(Config)
}

// Set installs cfg as the current configuration directly, bypassing
// YAML loading. Intended for tests and for callers that already have
// a parsed Config from some other source.
func Set(cfg Config) {
	loadMu.Lock()
	defer loadMu.Unlock()
	current.Store(cfg)
}
