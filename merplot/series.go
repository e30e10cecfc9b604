package merplot

import (
	"fmt"

	"github.com/carbocation/merentropy/experiment"
	"github.com/wcharczuk/go-chart/v2"
)

// Series plots one column against time (column 0) and writes the chart as a
// PNG named {prefix}series_{chain}_{ycol}.png. The y series passes through
// sign correction, which leaves well-behaved energy columns untouched.
func Series(e *experiment.Experiment, ycol int, prefix string) error {
	const xcol = 0

	x, err := e.Column(xcol)
	if err != nil {
		return err
	}

	y, err := e.AngleColumn(ycol)
	if err != nil {
		return err
	}

	xm, ym := e.Schema[xcol], e.Schema[ycol]

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s %s vs %s", e.Chain, xm.Description, ym.Description),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: AxisLabel(xm)},
		YAxis:  chart.YAxis{Name: AxisLabel(ym)},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: x, YValues: y},
		},
	}

	return writeChart(&graph, fmt.Sprintf("%sseries_%s_%d.png", prefix, chainSlug(e.Chain), ycol))
}
