package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille-based chart rendering. Each braille character is a 2x4 dot matrix,
// giving two data columns and four vertical levels per terminal cell.
// Unicode braille starts at U+2800; dot positions map to bit offsets:
// bit 0..2 = left column top..bottom rows, bit 3..5 = right column,
// bits 6/7 = left/right dots of the bottom row.

const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset for the braille pattern,
// row 0-3 top to bottom, col 0-1 left to right.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// RenderBrailleChart plots percentage samples (0-100 fixed scale) as a
// braille chart of width x height cells. Columns are colored by severity.
// Data narrower than the display fills from the right; wider data is
// decimated with peak-preserving max buckets.
func RenderBrailleChart(data []float64, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	resampled := data
	if len(data) > targetPoints {
		resampled = decimate(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Peak value per character column, used for severity coloring.
	colPeak := make([]float64, width)

	// Right-align when there are fewer samples than display columns.
	offset := targetPoints - len(resampled)
	if offset < 0 {
		offset = 0
	}

	for i, val := range resampled {
		normalized := val / 100
		if normalized < 0 {
			normalized = 0
		}
		if normalized > 1 {
			normalized = 1
		}
		dotHeight := int(normalized * float64(totalDots))
		if dotHeight > totalDots {
			dotHeight = totalDots
		}

		charCol := (i + offset) / 2
		if charCol >= width {
			continue
		}
		if val > colPeak[charCol] {
			colPeak[charCol] = val
		}
		subCol := (i + offset) % 2

		// Fill dots from the bottom up.
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - dot/4
			if row < 0 {
				continue
			}
			subRow := 3 - dot%4
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	var lines []string
	for _, row := range grid {
		var b strings.Builder
		for col, char := range row {
			style := lipgloss.NewStyle().Foreground(MetricColor(colPeak[col]))
			b.WriteString(style.Render(string(char)))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

// RenderGaugeBar renders a horizontal gauge with severity-gradient fill:
// the filled portion transitions green → amber → red by position.
func RenderGaugeBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			pos := float64(i+1) / float64(width) * 100
			b.WriteString(lipgloss.NewStyle().Foreground(MetricColor(pos)).Render("█"))
		} else {
			b.WriteString(MutedStyle.Render("░"))
		}
	}
	return b.String()
}

// decimate downsamples data to targetSize using the max of each bucket so
// short spikes stay visible in the chart.
func decimate(data []float64, targetSize int) []float64 {
	if targetSize <= 0 || len(data) == 0 {
		return nil
	}
	if len(data) <= targetSize {
		return data
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(data)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		maxVal := data[start]
		for j := start + 1; j < end; j++ {
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
