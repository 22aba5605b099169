package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBars(t *testing.T) {
	bars := Bars([]float64{100, -50, 0, 250})
	require.Len(t, bars, 4)
	for i, bar := range bars {
		assert.Equal(t, i+1, bar.Period)
	}
	assert.Equal(t, -50.0, bars[1].Value)
	assert.Empty(t, Bars(nil))
}

// barLines returns the rendered rows that carry a bar, i.e. contain the axis.
func barLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "|") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestRenderText_OneBarPerPeriodAscending(t *testing.T) {
	cashFlows := []float64{1000, 1500, 2000, 500, 3000}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, cashFlows, TextOptions{Width: 30}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, DefaultTitle+"\n"))
	assert.Contains(t, out, DefaultXLabel)
	assert.Contains(t, out, DefaultYLabel)

	lines := barLines(out)
	require.Len(t, lines, len(cashFlows))
	for i, line := range lines {
		fields := strings.Fields(line)
		assert.Equal(t, strconv.Itoa(i+1), fields[0])
	}

	// The largest value takes the whole width.
	assert.Equal(t, 30, strings.Count(lines[4], barRune))
	assert.Equal(t, 10, strings.Count(lines[0], barRune))
	assert.True(t, strings.HasSuffix(lines[4], " 3,000.00"))
}

func TestRenderText_NegativeValuesLeftOfAxis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, []float64{-100, 300}, TextOptions{Width: 40}))

	lines := barLines(buf.String())
	require.Len(t, lines, 2)

	neg := lines[0]
	axis := strings.Index(neg, "|")
	assert.Equal(t, 10, strings.Count(neg[:axis], barRune))
	assert.Equal(t, 0, strings.Count(neg[axis:], barRune))
	assert.True(t, strings.HasSuffix(neg, " -100.00"))

	pos := lines[1]
	axis = strings.Index(pos, "|")
	assert.Equal(t, 0, strings.Count(pos[:axis], barRune))
	assert.Equal(t, 30, strings.Count(pos[axis:], barRune))
}

func TestRenderText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, nil, TextOptions{}))
	assert.Contains(t, buf.String(), "(no cash flows)")
	assert.Empty(t, barLines(buf.String()))
}

func TestRenderText_AllZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, []float64{0, 0}, TextOptions{}))
	lines := barLines(buf.String())
	require.Len(t, lines, 2)
	assert.NotContains(t, buf.String(), barRune)
}

func TestRenderText_CustomLabels(t *testing.T) {
	var buf bytes.Buffer
	opts := TextOptions{Labels: Labels{Title: "Free Cash Flow", XLabel: "Period", YLabel: "EUR"}}
	require.NoError(t, RenderText(&buf, []float64{1}, opts))
	assert.True(t, strings.HasPrefix(buf.String(), "Free Cash Flow\n"))
	assert.Contains(t, buf.String(), "Period  EUR")
}

func TestNewBarPlot(t *testing.T) {
	p, bc, err := newBarPlot(Bars([]float64{10, 20, -5}), Labels{}.withDefaults())
	require.NoError(t, err)
	require.NotNil(t, bc)

	assert.Equal(t, DefaultTitle, p.Title.Text)
	assert.Equal(t, DefaultXLabel, p.X.Label.Text)
	assert.Equal(t, DefaultYLabel, p.Y.Label.Text)
	assert.Equal(t, []float64{10, 20, -5}, []float64(bc.Values))
}

func TestNewBarPlot_Empty(t *testing.T) {
	p, bc, err := newBarPlot(nil, Labels{}.withDefaults())
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Nil(t, bc)
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"flows.png", "flows.svg", "empty.png"} {
		path := filepath.Join(dir, name)
		cashFlows := []float64{100, 200, 150}
		if strings.HasPrefix(name, "empty") {
			cashFlows = nil
		}

		require.NoError(t, SaveImage(path, cashFlows, ImageOptions{}), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSaveImage_UnknownExtension(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "flows.txt"), []float64{1}, ImageOptions{})
	assert.Error(t, err)
}
