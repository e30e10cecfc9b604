package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// The recording software terminates each run file with a 2-line footer that
// carries no observations.
const footerLines = 2

// Table holds the numeric observations of one run, column-major: an ordered
// list of columns, each a homogeneous float64 series of equal length.
type Table struct {
	cols [][]float64
	rows int
}

// Rows is the number of observations currently held.
func (t *Table) Rows() int { return t.rows }

// Cols is the number of columns.
func (t *Table) Cols() int { return len(t.cols) }

// Column returns the backing series for one column. Callers must treat it as
// read-only; CorrectSigns already copies before modifying.
func (t *Table) Column(i int) []float64 { return t.cols[i] }

func (t *Table) dropFirstRow() {
	if t.rows == 0 {
		return
	}

	for i := range t.cols {
		t.cols[i] = t.cols[i][1:]
	}
	t.rows--
}

// ReadTable parses one semicolon-delimited run file: a header row, then one
// row of float64 cells per observation, then the footer. Every data row must
// have exactly wantCols cells and every cell must parse as a number;
// anything else fails with the row and column identified rather than loading
// a partial table.
func ReadTable(r io.Reader, wantCols int, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%w: %s: %v", ErrMalformedInput, name, err))
	}

	// One header row plus the footer is the minimum a well-formed file holds.
	if len(records) < 1+footerLines {
		return nil, fmt.Errorf("%w: %s holds %d lines, too few for a header and %d footer lines", ErrMalformedInput, name, len(records), footerLines)
	}
	records = records[1 : len(records)-footerLines]

	cols := make([][]float64, wantCols)
	for i := range cols {
		cols[i] = make([]float64, 0, len(records))
	}

	for ri, record := range records {
		if len(record) != wantCols {
			return nil, fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrMalformedInput, name, ri+1, len(record), wantCols)
		}

		for ci, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s row %d column %d: %q is not numeric", ErrMalformedInput, name, ri+1, ci, cell)
			}
			cols[ci] = append(cols[ci], v)
		}
	}

	return &Table{cols: cols, rows: len(records)}, nil
}
