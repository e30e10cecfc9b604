// Package merplot renders the outputs of the experiment package to PNG
// files: per-run time series, joint angle histograms, and entropy
// distributions across mer positions. It consumes plain values and labels;
// all computation happens upstream.
package merplot

import (
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/merentropy/experiment"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 640
	chartHeight = 400
)

// AxisLabel formats a column for axis labeling, e.g. "Time [ps]".
func AxisLabel(c experiment.ColumnMeaning) string {
	return fmt.Sprintf("%s [%s]", c.Description, c.Unit)
}

func chainSlug(c experiment.Chain) string {
	return strings.ReplaceAll(c.String(), " ", "")
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

func writeChart(graph *chart.Chart, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return pfx.Err(fmt.Errorf("rendering %s: %v", path, err))
	}

	return nil
}

func merValues(mers []int) []float64 {
	out := make([]float64, len(mers))
	for i, m := range mers {
		out[i] = float64(m)
	}

	return out
}
