package valuation

import (
	"fmt"
	"math"
)

// ImpliedRate solves for the rate r such that DCF(cashFlows, r) == price.
//
// With price equal to an initial outlay this is the internal rate of return of
// the projection. The solver uses Newton-Raphson with analytic first derivative,
// clamped to [MinRate, MaxRate] of the active SolverConfig.
func ImpliedRate(cashFlows []float64, price float64) (RateResult, error) {
	if len(cashFlows) == 0 {
		return RateResult{}, fmt.Errorf("ImpliedRate: cash flows are required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return RateResult{}, fmt.Errorf("ImpliedRate: price %v: %w", price, ErrNonFinite)
	}
	for i, cf := range cashFlows {
		if math.IsNaN(cf) || math.IsInf(cf, 0) {
			return RateResult{}, fmt.Errorf("ImpliedRate: cash flow for period %d: %w", i+1, ErrNonFinite)
		}
	}

	cfg := GetSolverConfig()
	r := clamp(cfg.InitialGuess, cfg.MinRate, cfg.MaxRate)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		pv, dPdr := valueAndDeriv(r, cashFlows)
		f := pv - price

		if math.Abs(f) < cfg.Tolerance {
			return RateResult{Rate: r, Iterations: iter + 1}, nil
		}
		if math.Abs(dPdr) < cfg.DerivativeThreshold {
			return RateResult{Rate: r, Iterations: iter + 1}, fmt.Errorf("ImpliedRate: derivative too small at iter %d: %w", iter, ErrNoConvergence)
		}

		r = clamp(r-f/dPdr, cfg.MinRate, cfg.MaxRate)
	}

	return RateResult{Rate: r, Iterations: cfg.MaxIterations}, fmt.Errorf("ImpliedRate: after %d iterations: %w", cfg.MaxIterations, ErrNoConvergence)
}

// valueAndDeriv returns (value, dValue/dr):
//
//	value = Σ cf_i / (1+r)^i
//	dV/dr = Σ −i · cf_i / (1+r)^(i+1)
func valueAndDeriv(r float64, cashFlows []float64) (float64, float64) {
	var value, deriv float64
	for i, cf := range cashFlows {
		t := float64(i + 1)
		value += cf / math.Pow(1.0+r, t)
		deriv += -t * cf / math.Pow(1.0+r, t+1)
	}
	return value, deriv
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
