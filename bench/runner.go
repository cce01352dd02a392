package bench

import (
	"fmt"

	"github.com/katalvlaran/growthlab/gen"
	"github.com/katalvlaran/growthlab/timing"
)

// Run sweeps target across the configured sizes and returns the collected
// Result.
//
// Per size: derive the instance seed, Prepare the instance (untimed), then
// time Trials invocations of the returned closure. A generation or trial
// error marks that size failed and the sweep continues with the next size.
// When the cutoff is exceeded — by a single trial or by a size's mean — the
// remaining larger sizes are abandoned and the Result keeps everything
// collected so far.
//
// Returns a configuration sentinel error (ErrNilTarget, ErrNoSizes,
// ErrUnsortedSizes, ErrBadTrials, ErrBadCutoff) before any measurement
// happens; a Result is always non-nil otherwise.
func Run(target Target, opts ...Option) (*Result, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateOptions(target, cfg); err != nil {
		return nil, err
	}

	log := cfg.Logger.With().
		Str("algorithm", target.Name()).
		Str("class", target.Class()).
		Logger()
	log.Info().Ints("sizes", cfg.Sizes).Int("trials", cfg.Trials).Msg("sweep start")

	result := &Result{
		Algorithm: target.Name(),
		Class:     target.Class(),
		Seed:      cfg.Seed,
		Samples:   make([]Sample, 0, len(cfg.Sizes)),
	}

	// 2) Sweep sizes in increasing order.
	for _, size := range cfg.Sizes {
		sample, overCutoff := measureSize(target, size, cfg)
		result.Samples = append(result.Samples, sample)

		switch {
		case sample.Failed:
			log.Warn().Int("size", size).Err(sample.Err).Msg("size failed, continuing sweep")
		case overCutoff:
			log.Info().
				Int("size", size).
				Str("mean", timing.FormatDuration(sample.Mean)).
				Msg("cutoff exceeded, abandoning larger sizes")
		default:
			log.Info().
				Int("size", size).
				Str("mean", timing.FormatDuration(sample.Mean)).
				Int("trials", len(sample.Trials)).
				Bool("outcome", sample.Outcome).
				Msg("size measured")
		}

		// 3) Cutoff abandonment: everything after this size is larger, so
		//    it can only be slower. Collected samples are preserved.
		if overCutoff {
			break
		}
	}

	log.Info().Int("samples", len(result.Samples)).Msg("sweep done")

	return result, nil
}

// validateOptions enforces the sweep configuration contract.
func validateOptions(target Target, cfg Options) error {
	if target == nil {
		return ErrNilTarget
	}
	if len(cfg.Sizes) == 0 {
		return ErrNoSizes
	}
	for i := 1; i < len(cfg.Sizes); i++ {
		if cfg.Sizes[i] <= cfg.Sizes[i-1] {
			return fmt.Errorf("sizes[%d]=%d after %d: %w", i, cfg.Sizes[i], cfg.Sizes[i-1], ErrUnsortedSizes)
		}
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("trials=%d: %w", cfg.Trials, ErrBadTrials)
	}
	if cfg.Cutoff < 0 {
		return fmt.Errorf("cutoff=%v: %w", cfg.Cutoff, ErrBadCutoff)
	}

	return nil
}

// measureSize produces one Sample for one size, and reports whether the
// cutoff was exceeded while measuring it.
//
// The cutoff is a cooperative checkpoint between trials: a single oversized
// trial runs to completion before being noticed, by accepted limitation.
// Trials stopped by the cutoff still contribute to the mean, matching the
// "average over completed trials" accounting.
func measureSize(target Target, size int, cfg Options) (Sample, bool) {
	sample := Sample{Size: size}

	// 1) Per-size instance seed, decorrelated from neighboring sizes.
	seed := gen.DeriveSeed(cfg.Seed, uint64(size))

	// 2) Instance generation, outside any timed interval.
	run, err := target.Prepare(size, seed)
	if err != nil {
		sample.Failed = true
		sample.Err = fmt.Errorf("bench: prepare size %d: %w", size, err)

		return sample, false
	}

	// 3) Timed trials.
	overCutoff := false
	for trial := 0; trial < cfg.Trials; trial++ {
		elapsed, outcome, terr := timing.Measure(run)
		sample.Trials = append(sample.Trials, elapsed)
		if terr != nil {
			// Measurement failure: keep what was collected, mark, stop.
			sample.Failed = true
			sample.Err = fmt.Errorf("bench: size %d trial %d: %w", size, trial+1, terr)

			break
		}
		sample.Outcome = outcome

		// Between-trials checkpoint: one oversized trial is proof enough
		// that this size (and every larger one) is past the budget.
		if cfg.Cutoff > 0 && elapsed > cfg.Cutoff {
			overCutoff = true

			break
		}
	}
	sample.Mean = sample.Trials.Mean()

	// A failed sample never triggers abandonment; larger sizes may still
	// succeed.
	if sample.Failed {
		return sample, false
	}

	// 4) Mean-level cutoff, for sweeps whose individual trials stay under
	//    the bound but whose average does not.
	if cfg.Cutoff > 0 && sample.Mean > cfg.Cutoff {
		overCutoff = true
	}

	return sample, overCutoff
}
