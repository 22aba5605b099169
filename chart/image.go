package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// barColor is blue at 60% opacity.
var barColor = color.NRGBA{R: 0, G: 0, B: 255, A: 153}

// ImageOptions configures SaveImage.
type ImageOptions struct {
	Labels
	// Width and Height of the figure. Default to 8x5 inches.
	Width  vg.Length
	Height vg.Length
}

// SaveImage draws cashFlows as a vertical bar chart and writes it to path. The
// file format follows the extension (.png, .svg, .pdf, .jpg, ...).
func SaveImage(path string, cashFlows []float64, opts ImageOptions) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 8 * vg.Inch
	}
	if height <= 0 {
		height = 5 * vg.Inch
	}

	p, _, err := newBarPlot(Bars(cashFlows), opts.Labels.withDefaults())
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// newBarPlot builds the plot. The returned bar chart is nil for an empty series.
func newBarPlot(bars []Bar, labels Labels) (*plot.Plot, *plotter.BarChart, error) {
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.XLabel
	p.Y.Label.Text = labels.YLabel

	if len(bars) == 0 {
		return p, nil, nil
	}

	values := make(plotter.Values, len(bars))
	names := make([]string, len(bars))
	for i, bar := range bars {
		values[i] = bar.Value
		names[i] = strconv.Itoa(bar.Period)
	}

	bc, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, nil, fmt.Errorf("build bar chart: %w", err)
	}
	bc.Color = barColor
	bc.LineStyle.Width = 0

	p.Add(bc)
	p.NominalX(names...)
	return p, bc, nil
}
