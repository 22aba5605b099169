package valuation

import (
	"errors"
	"math"
)

var (
	// ErrRateTotalLoss is returned when 1+rate == 0 and every discount factor is undefined.
	ErrRateTotalLoss = errors.New("discount rate of -100% is undefined")
	// ErrNonFinite is returned when an input or a computed value is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")
	// ErrNoConvergence is returned when ImpliedRate exhausts its iterations.
	ErrNoConvergence = errors.New("implied rate did not converge")
)

// Series is a projected cash flow per future period.
//
// Position i holds the net cash flow of period i+1.
type Series []float64

func (s Series) Len() int {
	return len(s)
}

// Total is the undiscounted sum of the series.
func (s Series) Total() float64 {
	var total float64
	for _, cf := range s {
		total += cf
	}
	return total
}

// Periods returns the period index of each cash flow, starting at 1.
func (s Series) Periods() []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = i + 1
	}
	return out
}

// Result is the output of Evaluate.
type Result struct {
	// Value is the present value of the whole series.
	Value float64
	// PresentValues holds each period's discounted contribution.
	PresentValues []float64
	// DiscountFactors holds 1/(1+r)^i per period.
	DiscountFactors []float64
}

// Finite reports whether the value and every per-period figure are finite.
// A rate close to -100% can overflow a finite series to ±Inf.
func (r Result) Finite() bool {
	if !isFinite(r.Value) {
		return false
	}
	for i := range r.PresentValues {
		if !isFinite(r.PresentValues[i]) || !isFinite(r.DiscountFactors[i]) {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RateResult is the output of ImpliedRate.
type RateResult struct {
	// Rate is the per-period discount rate as a fraction (0.10 = 10%).
	Rate float64
	// Iterations is the number of Newton-Raphson steps taken.
	Iterations int
}
