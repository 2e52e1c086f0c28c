package statcalc

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	chartWidth  = 640
	chartHeight = 320
	chartMargin = 24.0

	// Height spread within a species, as a fraction of the mean.
	heightSigmaFraction = 0.15
)

func heightDistribution(mean float64) distuv.Normal {
	return distuv.Normal{Mu: mean, Sigma: mean * heightSigmaFraction}
}

// HeightPercentile says how the height compares to the species mean as a
// value in [0, 1].
func HeightPercentile(mean, height float64) float64 {
	if mean <= 0 {
		return 0
	}
	return heightDistribution(mean).CDF(height)
}

// RenderHeightCurve draws the species height distribution with the given
// height marked, and returns the PNG bytes.
func RenderHeightCurve(mean, height float64) ([]byte, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("mean height must be positive")
	}

	dist := heightDistribution(mean)
	low := dist.Mu - 4*dist.Sigma
	high := dist.Mu + 4*dist.Sigma
	peak := dist.Prob(dist.Mu)

	plotWidth := float64(chartWidth) - 2*chartMargin
	plotHeight := float64(chartHeight) - 2*chartMargin

	toX := func(v float64) float64 {
		return chartMargin + (v-low)/(high-low)*plotWidth
	}
	toY := func(p float64) float64 {
		return float64(chartHeight) - chartMargin - p/peak*plotHeight
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Axis baseline.
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	dc.DrawLine(chartMargin, float64(chartHeight)-chartMargin,
		float64(chartWidth)-chartMargin, float64(chartHeight)-chartMargin)
	dc.Stroke()

	// Bell curve.
	dc.SetRGB(0.2, 0.4, 0.8)
	dc.SetLineWidth(2)
	const samples = 256
	for i := 0; i <= samples; i++ {
		v := low + (high-low)*float64(i)/samples
		x, y := toX(v), toY(dist.Prob(v))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	// Marker for the queried height, clamped into the plotted range.
	marked := height
	if marked < low {
		marked = low
	}
	if marked > high {
		marked = high
	}
	dc.SetRGB(0.85, 0.2, 0.2)
	dc.SetLineWidth(2)
	dc.DrawLine(toX(marked), chartMargin, toX(marked), float64(chartHeight)-chartMargin)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode height chart: %w", err)
	}
	return buf.Bytes(), nil
}
