package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/meenmo/dcf/utils"
)

const barRune = "█"

// TextOptions configures RenderText.
type TextOptions struct {
	Labels
	// Width is the number of columns shared by the negative and positive
	// sides of the widest bars. Defaults to 50.
	Width int
}

// RenderText writes a horizontal bar chart of cashFlows to w. Negative values
// extend left of the zero axis. An empty series prints the header only.
func RenderText(w io.Writer, cashFlows []float64, opts TextOptions) error {
	labels := opts.Labels.withDefaults()
	width := opts.Width
	if width <= 0 {
		width = 50
	}

	bars := Bars(cashFlows)
	periodCol := len(labels.XLabel)
	if n := len(strconv.Itoa(len(bars))); n > periodCol {
		periodCol = n
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", labels.Title)
	fmt.Fprintf(&b, "%*s  %s\n", periodCol, labels.XLabel, labels.YLabel)
	if len(bars) == 0 {
		fmt.Fprintf(&b, "%*s  (no cash flows)\n", periodCol, "")
		_, err := io.WriteString(w, b.String())
		return err
	}

	var maxPos, maxNeg float64
	for _, bar := range bars {
		maxPos = math.Max(maxPos, bar.Value)
		maxNeg = math.Max(maxNeg, -bar.Value)
	}

	scale := 0.0
	if total := maxPos + maxNeg; total > 0 {
		scale = float64(width) / total
	}
	negCols := int(math.Round(maxNeg * scale))

	for _, bar := range bars {
		n := int(math.Round(math.Abs(bar.Value) * scale))
		var left, right string
		if bar.Value < 0 {
			left = strings.Repeat(" ", negCols-n) + strings.Repeat(barRune, n)
		} else {
			left = strings.Repeat(" ", negCols)
			right = strings.Repeat(barRune, n)
		}
		fmt.Fprintf(&b, "%*d  %s|%s %s\n", periodCol, bar.Period, left, right, utils.FormatAmount(bar.Value))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
