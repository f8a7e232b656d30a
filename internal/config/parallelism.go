package config

import "runtime"

// Parallelism resolution chain (highest priority first):
//   1. CLI flag (-parallel)
//   2. Environment variable (PERFPHYLO_PARALLEL)
//   3. Config file (parallel)
//   4. Estimation from the mode and hardware (this file)

// firstRestCandidates is the fixed number of completions in first-rest mode.
const firstRestCandidates = 4

// ApplyAdaptiveParallelism fills in Parallel when it was left at zero.
// User-specified values are preserved.
func ApplyAdaptiveParallelism(cfg AppConfig) AppConfig {
	if cfg.Parallel == 0 {
		cfg.Parallel = EstimateParallelism(cfg.Mode)
	}
	return cfg
}

// EstimateParallelism picks a worker count without running benchmarks.
// The first-rest mode never has more than four candidates, so more workers
// would sit idle.
func EstimateParallelism(mode string) int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	if mode == DefaultMode && numCPU > firstRestCandidates {
		return firstRestCandidates
	}
	return numCPU
}
