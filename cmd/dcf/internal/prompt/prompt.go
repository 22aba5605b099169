package prompt

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/meenmo/dcf/chart"
	"github.com/meenmo/dcf/config"
	"github.com/meenmo/dcf/utils"
	"github.com/meenmo/dcf/valuation"
)

// Command is the interactive DCF valuation.
type Command struct {
	Config *config.Config
	Logger *zap.Logger
}

func Run(cfg *config.Config, logger *zap.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &Command{Config: cfg, Logger: logger.Named("prompt")}
	return c.Run(args, stdin, stdout, stderr)
}

func (c *Command) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("prompt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	chartMode := fs.String("chart", c.Config.Chart.Mode, "Chart output: text, image or none")
	chartOut := fs.String("chart-out", c.Config.Chart.Path, "Image path for -chart image (.png, .svg, .pdf)")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		fs.PrintDefaults()
		return 0
	}

	mode := strings.ToLower(strings.TrimSpace(*chartMode))
	switch mode {
	case config.ChartText, config.ChartImage, config.ChartNone:
	default:
		fmt.Fprintf(stderr, "invalid -chart %q (use text, image or none)\n", *chartMode)
		return 2
	}

	in, err := NewSession(stdin, stdout).Collect()
	if err != nil {
		c.Logger.Debug("failed to read inputs", zap.Error(err))
		fmt.Fprintf(stderr, "\nerror: %v\n", err)
		return 1
	}
	c.Logger.Debug("collected inputs", zap.Float64s("cash_flows", in.CashFlows), zap.Float64("total", valuation.Series(in.CashFlows).Total()), zap.Float64("rate", in.Rate))

	res, err := valuation.Evaluate(in.CashFlows, in.Rate)
	if err != nil {
		c.Logger.Debug("valuation failed", zap.Error(err))
		fmt.Fprintf(stderr, "\nerror: %v\n", err)
		return 1
	}
	c.Logger.Info("valuation complete", zap.Float64("dcf_value", res.Value), zap.Int("years", len(in.CashFlows)))

	fmt.Fprintf(stdout, "\nThe Discounted Cash Flow (DCF) valuation is: %s\n\n", utils.FormatCurrency(res.Value, c.Config.CurrencySymbol))

	if err := c.renderChart(mode, strings.TrimSpace(*chartOut), in.CashFlows, stdout); err != nil {
		c.Logger.Debug("failed to render chart", zap.String("mode", mode), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (c *Command) renderChart(mode, path string, cashFlows []float64, stdout io.Writer) error {
	labels := chart.Labels{YLabel: fmt.Sprintf("Cash Flow (%s)", c.Config.CurrencySymbol)}

	switch mode {
	case config.ChartText:
		return chart.RenderText(stdout, cashFlows, chart.TextOptions{Labels: labels, Width: c.Config.Chart.Width})
	case config.ChartImage:
		if path == "" {
			return fmt.Errorf("-chart-out is required for image charts")
		}
		if err := chart.SaveImage(path, cashFlows, chart.ImageOptions{Labels: labels}); err != nil {
			return err
		}
		c.Logger.Info("chart saved", zap.String("path", path))
		fmt.Fprintf(stdout, "Chart saved to %s\n", path)
		return nil
	default:
		return nil
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dcf [prompt] [-chart text|image|none] [-chart-out path]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ask for projected cash flows and a discount rate, print the DCF valuation")
	fmt.Fprintln(w, "and chart the cash flows.")
	fmt.Fprintln(w)
}
