// Package chart renders a projected cash flow series as a bar chart, one bar
// per period in ascending period order.
package chart

const (
	DefaultTitle  = "Projected Cash Flows"
	DefaultXLabel = "Years"
	DefaultYLabel = "Cash Flow ($)"
)

// Bar is one period of the chart.
type Bar struct {
	Period int
	Value  float64
}

// Bars maps cashFlows to bars; Period starts at 1.
func Bars(cashFlows []float64) []Bar {
	out := make([]Bar, 0, len(cashFlows))
	for i, cf := range cashFlows {
		out = append(out, Bar{Period: i + 1, Value: cf})
	}
	return out
}

// Labels holds the chart title and axis captions. Zero fields fall back to the
// defaults above.
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

func (l Labels) withDefaults() Labels {
	if l.Title == "" {
		l.Title = DefaultTitle
	}
	if l.XLabel == "" {
		l.XLabel = DefaultXLabel
	}
	if l.YLabel == "" {
		l.YLabel = DefaultYLabel
	}
	return l
}
