package merplot

import (
	"strconv"

	"github.com/carbocation/merentropy/experiment"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DistributionPercentiles plots the per-mer entropy median with dotted
// 5th/95th percentile bands against first-mer number.
func DistributionPercentiles(d *experiment.DistributionPercentiles, title, ylabel, outPath string) error {
	mers := merValues(d.Mers)

	bandStyle := chart.Style{
		StrokeColor:     drawing.ColorRed,
		StrokeDashArray: []float64{2.0, 2.0},
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "number of first mer"},
		YAxis:  chart.YAxis{Name: ylabel},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "median",
				XValues: mers,
				YValues: d.Median,
				Style: chart.Style{
					StrokeColor:     drawing.ColorRed,
					StrokeDashArray: []float64{5.0, 3.0},
					DotColor:        drawing.ColorRed,
					DotWidth:        3,
				},
			},
			chart.ContinuousSeries{
				Name:    "5 and 95 perc.",
				XValues: mers,
				YValues: d.Perc5,
				Style:   bandStyle,
			},
			chart.ContinuousSeries{
				XValues: mers,
				YValues: d.Perc95,
				Style:   bandStyle,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return writeChart(&graph, outPath)
}

// DistributionRealisations overlays one line per realisation against
// first-mer number, on a grey ramp with later realisations darker.
func DistributionRealisations(d *experiment.DistributionRealisations, title, ylabel, outPath string) error {
	mers := merValues(d.Mers)

	noStruct := 0
	if len(d.Entropies) > 0 {
		noStruct = len(d.Entropies[0])
	}

	series := make([]chart.Series, 0, noStruct)
	for j := 0; j < noStruct; j++ {
		trajectory := make([]float64, len(d.Entropies))
		for mer := range d.Entropies {
			trajectory[mer] = d.Entropies[mer][j]
		}

		grey := uint8(212 * (1 - float64(j)/float64(noStruct)))
		series = append(series, chart.ContinuousSeries{
			Name:    strconv.Itoa(j + 1),
			XValues: mers,
			YValues: trajectory,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: grey, G: grey, B: grey, A: 255},
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "number of first mer"},
		YAxis:  chart.YAxis{Name: ylabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return writeChart(&graph, outPath)
}
