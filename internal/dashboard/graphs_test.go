package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBrailleChartDimensions(t *testing.T) {
	data := []float64{0, 25, 50, 75, 100, 75, 50, 25}
	out := RenderBrailleChart(data, 10, 4)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestRenderBrailleChartEmptyInputs(t *testing.T) {
	assert.Empty(t, RenderBrailleChart(nil, 10, 4))
	assert.Empty(t, RenderBrailleChart([]float64{50}, 0, 4))
	assert.Empty(t, RenderBrailleChart([]float64{50}, 10, 0))
}

func TestRenderBrailleChartClampsOutOfRange(t *testing.T) {
	// Values outside [0,100] must not panic or overflow the grid.
	out := RenderBrailleChart([]float64{-10, 150, 50}, 5, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
}

func TestRenderGaugeBarWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
	}{
		{"empty", 20, 0},
		{"half", 20, 50},
		{"full", 20, 100},
		{"over 100 clamps", 20, 250},
		{"negative clamps", 20, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderGaugeBar(tt.width, tt.percent)
			assert.Equal(t, tt.width, lipgloss.Width(out))
		})
	}
}

func TestDecimatePreservesPeaks(t *testing.T) {
	// A single spike in a long flat series must survive downsampling.
	data := make([]float64, 100)
	data[57] = 99

	out := decimate(data, 10)
	require.Len(t, out, 10)

	var peak float64
	for _, v := range out {
		if v > peak {
			peak = v
		}
	}
	assert.Equal(t, 99.0, peak)
}

func TestDecimatePassthroughWhenSmall(t *testing.T) {
	data := []float64{1, 2, 3}
	assert.Equal(t, data, decimate(data, 10))
	assert.Nil(t, decimate(nil, 10))
	assert.Nil(t, decimate(data, 0))
}

func TestMetricColorThresholds(t *testing.T) {
	assert.Equal(t, ColorHealthy, MetricColor(0))
	assert.Equal(t, ColorHealthy, MetricColor(69.9))
	assert.Equal(t, ColorWarning, MetricColor(70))
	assert.Equal(t, ColorWarning, MetricColor(89.9))
	assert.Equal(t, ColorCritical, MetricColor(90))
	assert.Equal(t, ColorCritical, MetricColor(100))
}
