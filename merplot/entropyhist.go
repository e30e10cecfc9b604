package merplot

import (
	"fmt"

	hist "github.com/grd/histogram"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

// EntropyHistBins is the bin count of the per-set entropy histogram.
const EntropyHistBins = 5

// EntropyHistogram bins a set's per-realisation entropies and writes them as
// a frequency bar chart.
func EntropyHistogram(entropies []float64, title, xlabel, outPath string) error {
	if len(entropies) == 0 {
		return fmt.Errorf("no entropies to plot for %s", outPath)
	}

	min, max := floats.Min(entropies), floats.Max(entropies)
	if min == max {
		min, max = min-0.5, max+0.5
	}
	width := (max - min) / EntropyHistBins

	hg, err := hist.NewHistogram(hist.Range(min, uint(EntropyHistBins), width))
	if err != nil {
		return err
	}

	for _, v := range entropies {
		hg.Add(v)
	}

	bars := make([]chart.Value, 0, EntropyHistBins)
	for i := 0; i < EntropyHistBins; i++ {
		bars = append(bars, chart.Value{
			Value: float64(hg.Get(i)),
			Label: fmt.Sprintf("%.2f", min+(float64(i)+0.5)*width),
		})
	}

	// BarChart has no x-axis name, so the bin label rides along in the title.
	graph := chart.BarChart{
		Title:  fmt.Sprintf("%s (%s)", title, xlabel),
		Width:  chartWidth,
		Height: chartHeight,
		YAxis:  chart.YAxis{Name: "frequency"},
		Bars:   bars,
	}

	f, err := createFile(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering %s: %v", outPath, err)
	}

	return nil
}
