package batch

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/meenmo/dcf/valuation"
)

// ValuationInput defines the JSON input schema.
//
// Rates are in percent (e.g., 10 means 10%).
type ValuationInput struct {
	TaskID    string    `json:"task_id,omitempty"`
	CashFlows []float64 `json:"cash_flows"`
	// DiscountRatePct is required.
	DiscountRatePct *float64 `json:"discount_rate"`
	// Price is optional. When set, the rate that discounts the cash flows to
	// Price is reported as implied_rate.
	Price *float64 `json:"price,omitempty"`
}

type ValuationOutput struct {
	TaskID          string    `json:"task_id,omitempty"`
	DCFValue        float64   `json:"dcf_value"`
	PresentValues   []float64 `json:"present_values"`
	DiscountFactors []float64 `json:"discount_factors"`
	ImpliedRatePct  *float64  `json:"implied_rate,omitempty"`
	Error           string    `json:"error,omitempty"`
}

func Run(logger *zap.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger = logger.Named("batch")

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (optional; if set, ignores stdin)")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stderr)
		return 0
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if f, ok := stdin.(*os.File); ok {
			if stat, err := f.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
				usage(stderr)
				return 2
			}
		}
	}

	raw, err := readInput(stdin, path)
	if err != nil {
		return writeError(stdout, fmt.Sprintf("failed to read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		return writeError(stdout, fmt.Sprintf("failed to parse JSON input: %v", err))
	}
	logger.Debug("parsed inputs", zap.Int("count", len(inputs)), zap.Bool("array", isArray))

	hadError := false
	outputs := make([]ValuationOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			logger.Warn("valuation failed", zap.String("task_id", in.TaskID), zap.Error(err))
			if out == nil {
				out = &ValuationOutput{TaskID: in.TaskID}
			}
			out.Error = err.Error()
		}
		outputs = append(outputs, *out)
	}

	var b []byte
	if isArray {
		b, err = json.Marshal(outputs)
	} else {
		b, err = json.Marshal(outputs[0])
	}
	if err != nil {
		return writeError(stdout, fmt.Sprintf("failed to encode output: %v", err))
	}
	fmt.Fprintln(stdout, string(b))

	if hadError {
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dcf json < input.json")
	fmt.Fprintln(w, "  dcf json -input /path/to/input.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read one JSON object or an array of objects, calculate DCF values, output JSON to stdout.")
	fmt.Fprintln(w, `Input: {"task_id": "a", "cash_flows": [100, 110], "discount_rate": 10, "price": 180}`)
}

// process values one input. An implied-rate failure is returned together with
// the valuation fields already computed.
func process(in ValuationInput) (*ValuationOutput, error) {
	if in.DiscountRatePct == nil {
		return nil, fmt.Errorf("discount_rate is required")
	}
	rate := *in.DiscountRatePct / 100.0

	res, err := valuation.Evaluate(in.CashFlows, rate)
	if err != nil {
		return nil, err
	}
	if !res.Finite() {
		return nil, fmt.Errorf("dcf value overflows at discount_rate %v: %w", *in.DiscountRatePct, valuation.ErrNonFinite)
	}

	out := &ValuationOutput{
		TaskID:          in.TaskID,
		DCFValue:        res.Value,
		PresentValues:   res.PresentValues,
		DiscountFactors: res.DiscountFactors,
	}

	if in.Price != nil {
		implied, err := valuation.ImpliedRate(in.CashFlows, *in.Price)
		if err != nil {
			return out, fmt.Errorf("implied rate: %w", err)
		}
		pct := implied.Rate * 100.0
		out.ImpliedRatePct = &pct
	}

	return out, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseInputs(raw []byte) ([]ValuationInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []ValuationInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input ValuationInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []ValuationInput{input}, false, nil
}

func writeError(stdout io.Writer, msg string) int {
	// Only the error string is set, so encoding cannot fail.
	b, _ := json.Marshal(ValuationOutput{Error: msg})
	fmt.Fprintln(stdout, string(b))
	return 1
}
