package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/growthlab/bench"
	"github.com/katalvlaran/growthlab/growth"
	"github.com/katalvlaran/growthlab/timing"
)

// Compare runs the bench+fit pipeline once for the exponential-class family
// and once for the polynomial-class family, and returns the composite
// Comparison.
//
// The two families run sequentially through identical machinery; only the
// target, sizes, and trial count differ. A sweep configuration error aborts
// Compare; a non-computable fit does not — it is recorded in the family's
// FitErr with the benchmark result kept intact.
func Compare(opts ...Option) (*Comparison, error) {
	// 1) Build configuration from the reference experiment.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Run both families through the same pipeline.
	exponential, err := runFamily(cfg.ExponentialTarget, cfg.ExponentialSizes, cfg.ExponentialTrials, cfg)
	if err != nil {
		return nil, fmt.Errorf("compare: exponential family: %w", err)
	}

	polynomial, err := runFamily(cfg.PolynomialTarget, cfg.PolynomialSizes, cfg.PolynomialTrials, cfg)
	if err != nil {
		return nil, fmt.Errorf("compare: polynomial family: %w", err)
	}

	// 3) Attach host metadata (informational side channel).
	cmp := &Comparison{
		Exponential: exponential,
		Polynomial:  polynomial,
		System:      timing.Collect(),
	}

	cfg.Logger.Info().
		Str("system", cmp.System.String()).
		Str("exponential", reportLine(cmp.Exponential)).
		Str("polynomial", reportLine(cmp.Polynomial)).
		Msg("comparison done")

	return cmp, nil
}

// runFamily sweeps one family and fits its growth exponent.
func runFamily(target bench.Target, sizes []int, trials int, cfg Options) (FamilyReport, error) {
	result, err := bench.Run(target,
		bench.WithSizes(sizes...),
		bench.WithTrials(trials),
		bench.WithCutoff(cfg.Cutoff),
		bench.WithSeed(cfg.Seed),
		bench.WithLogger(cfg.Logger),
	)
	if err != nil {
		return FamilyReport{}, err
	}

	report := FamilyReport{Result: result}
	estimate, fitErr := growth.Fit(result)
	switch {
	case fitErr == nil:
		report.Estimate = estimate
	case errors.Is(fitErr, growth.ErrFitUnavailable):
		// Not computable is a reportable outcome, not a pipeline failure.
		report.FitErr = fitErr
	default:
		return FamilyReport{}, fitErr
	}

	return report, nil
}

// reportLine renders one family for the summary log entry.
func reportLine(r FamilyReport) string {
	if r.FitErr != nil {
		return fmt.Sprintf("%s: fit not computable (%v)", r.Result.Algorithm, r.FitErr)
	}

	return fmt.Sprintf("%s: %s", r.Result.Algorithm, r.Estimate)
}
