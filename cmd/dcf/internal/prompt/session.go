package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/meenmo/dcf/utils"
)

const (
	yearsPrompt = "Enter number of years for cash flow projections: "
	flowPrompt  = "Enter cash flow for year %d: "
	ratePrompt  = "Enter the discount rate (as a percentage): "
)

// Inputs are the answers collected by a Session.
type Inputs struct {
	CashFlows []float64
	// Rate is a fraction: the user types 10 for 0.10.
	Rate float64
}

// Session asks for the projection line by line.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Collect asks for the number of years, one cash flow per year and the discount
// rate in percent. The first unparsable answer aborts the session.
func (s *Session) Collect() (Inputs, error) {
	years, err := ask(s, yearsPrompt, utils.ParseCount)
	if err != nil {
		return Inputs{}, fmt.Errorf("number of years: %w", err)
	}

	cashFlows := make([]float64, 0, years)
	for i := 1; i <= years; i++ {
		cf, err := ask(s, fmt.Sprintf(flowPrompt, i), utils.ParseAmount)
		if err != nil {
			return Inputs{}, fmt.Errorf("cash flow for year %d: %w", i, err)
		}
		cashFlows = append(cashFlows, cf)
	}

	rate, err := ask(s, ratePrompt, utils.ParsePercent)
	if err != nil {
		return Inputs{}, fmt.Errorf("discount rate: %w", err)
	}

	return Inputs{CashFlows: cashFlows, Rate: rate}, nil
}

func ask[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return zero, err
	}
	line, err := s.readLine()
	if err != nil {
		return zero, err
	}
	return parse(line)
}

// readLine returns the next line without its terminator. A final line without
// a newline is accepted; end of input before any text is an error.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
