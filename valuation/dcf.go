package valuation

import (
	"fmt"
	"math"
)

// DCF returns the present value of cashFlows discounted at rate:
//
//	value = Σ cf_i / (1+rate)^i,  i = 1..n
//
// rate is a fraction (0.10 for 10%). An empty series is worth 0. The formula is
// not guarded: a rate of exactly -1 yields ±Inf or NaN. Use Evaluate for a
// checked result.
func DCF(cashFlows []float64, rate float64) float64 {
	var value float64
	for i, cf := range cashFlows {
		value += cf / math.Pow(1.0+rate, float64(i+1))
	}
	return value
}

// DiscountFactor returns 1/(1+rate)^period.
func DiscountFactor(rate float64, period int) float64 {
	return 1.0 / math.Pow(1.0+rate, float64(period))
}

// PresentValues returns the discounted contribution of every period. Their sum
// is DCF(cashFlows, rate).
func PresentValues(cashFlows []float64, rate float64) []float64 {
	out := make([]float64, len(cashFlows))
	for i, cf := range cashFlows {
		out[i] = cf / math.Pow(1.0+rate, float64(i+1))
	}
	return out
}

// Evaluate is DCF with input checks. It rejects a rate of -100% and non-finite
// inputs, and reports the per-period breakdown alongside the total.
func Evaluate(cashFlows []float64, rate float64) (Result, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Result{}, fmt.Errorf("Evaluate: rate %v: %w", rate, ErrNonFinite)
	}
	if 1.0+rate == 0 {
		return Result{}, fmt.Errorf("Evaluate: %w", ErrRateTotalLoss)
	}
	for i, cf := range cashFlows {
		if math.IsNaN(cf) || math.IsInf(cf, 0) {
			return Result{}, fmt.Errorf("Evaluate: cash flow for period %d: %w", i+1, ErrNonFinite)
		}
	}

	dfs := make([]float64, len(cashFlows))
	for i := range cashFlows {
		dfs[i] = DiscountFactor(rate, i+1)
	}

	return Result{
		Value:           DCF(cashFlows, rate),
		PresentValues:   PresentValues(cashFlows, rate),
		DiscountFactors: dfs,
	}, nil
}
