package experiment

import (
	"fmt"
	"strings"
	"testing"
)

// buildTab synthesizes the content of one run file: header, rows of
// semicolon-delimited float cells, and the 2-line footer.
func buildTab(t *testing.T, chain Chain, rows int, fill func(row, col int) float64) string {
	t.Helper()

	schema, err := Columns(chain)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	for i := range schema {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "col%d", i)
	}
	b.WriteByte('\n')

	for r := 0; r < rows; r++ {
		for c := range schema {
			if c > 0 {
				b.WriteByte(';')
			}
			fmt.Fprintf(&b, "%g", fill(r, c))
		}
		b.WriteByte('\n')
	}

	b.WriteString("# end of run\n")
	b.WriteString("# generated for tests\n")

	return b.String()
}

func testExperiment(t *testing.T, chain Chain, rows int, fill func(row, col int) float64) *Experiment {
	t.Helper()

	exp, err := New(strings.NewReader(buildTab(t, chain, rows, fill)), chain, "synthetic.tab")
	if err != nil {
		t.Fatal(err)
	}

	return exp
}
