package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RGas is the molar gas constant in J/(mol·K).
const RGas = 8.314

// HistogramBins is the per-axis bin count of the joint histogram.
const HistogramBins = 10

// Entropy estimates the joint distribution of two angle columns with a
// HistogramBins×HistogramBins histogram and returns its Shannon entropy,
// natural log, scaled by the molar gas constant. The estimate is a pure
// function of the current table; preprocess with DropFirstObservations
// before calling.
func (e *Experiment) Entropy(xcol, ycol int) (float64, error) {
	x, err := e.AngleColumn(xcol)
	if err != nil {
		return 0, err
	}

	y, err := e.AngleColumn(ycol)
	if err != nil {
		return 0, err
	}

	grid, err := JointHistogram(x, y)
	if err != nil {
		return 0, fmt.Errorf("%s columns %d, %d: %w", e.Path, xcol, ycol, err)
	}

	pmf := make([]float64, 0, HistogramBins*HistogramBins)
	for _, row := range grid {
		pmf = append(pmf, row...)
	}
	floats.Scale(1/floats.Sum(pmf), pmf)

	// stat.Entropy uses the natural log and skips empty bins, matching the
	// 0·log(0) ≡ 0 convention.
	return RGas * stat.Entropy(pmf), nil
}

// JointHistogram bins two equal-length series into a
// HistogramBins×HistogramBins count grid. Bin edges span each series' own
// value range, and the rightmost bin is closed so the maximum lands in it
// rather than overflowing.
func JointHistogram(x, y []float64) ([][]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: series lengths differ (%d vs %d)", ErrMalformedInput, len(x), len(y))
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("%w: no observations to bin", ErrEmptyDataset)
	}

	bx, by := newBinRange(x), newBinRange(y)

	grid := make([][]float64, HistogramBins)
	for i := range grid {
		grid[i] = make([]float64, HistogramBins)
	}

	for i := range x {
		grid[bx.index(x[i])][by.index(y[i])]++
	}

	return grid, nil
}

type binRange struct {
	min   float64
	width float64
}

func newBinRange(s []float64) binRange {
	min, max := floats.Min(s), floats.Max(s)

	// A constant series has no natural range; widen it by half a unit on each
	// side so every observation still falls in a well-defined bin.
	if min == max {
		min, max = min-0.5, max+0.5
	}

	return binRange{min: min, width: (max - min) / HistogramBins}
}

func (b binRange) index(v float64) int {
	i := int((v - b.min) / b.width)
	if i >= HistogramBins {
		i = HistogramBins - 1
	}
	if i < 0 {
		i = 0
	}

	return i
}
