package experiment

import (
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// Experiment is a single realisation: the full table of one run file along
// with the schema describing its columns.
type Experiment struct {
	Path   string
	Chain  Chain
	Schema Schema

	table   *Table
	trimmed bool
}

// Open loads the run file at path, classifying the chain from the file name.
func Open(path string) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return New(f, ChainFromPath(path), path)
}

// New loads one run from r under the given chain classification. The name is
// only used to identify the run in diagnostics.
func New(r io.Reader, chain Chain, name string) (*Experiment, error) {
	schema, err := Columns(chain)
	if err != nil {
		return nil, err
	}

	table, err := ReadTable(r, len(schema), name)
	if err != nil {
		return nil, err
	}

	return &Experiment{Path: name, Chain: chain, Schema: schema, table: table}, nil
}

// DropFirstObservations removes the warm-up observation recorded before the
// simulation stabilises. It is a one-time preprocessing step: repeated calls
// are a no-op, so the table can be shared freely afterwards.
func (e *Experiment) DropFirstObservations() {
	if e.trimmed {
		return
	}

	e.table.dropFirstRow()
	e.trimmed = true
}

// Rows is the number of usable observations.
func (e *Experiment) Rows() int { return e.table.Rows() }

// Column returns the raw values of one column.
func (e *Experiment) Column(col int) ([]float64, error) {
	if col < 0 || col >= len(e.Schema) {
		return nil, fmt.Errorf("%w: column %d of %s (%d columns)", ErrColumnRange, col, e.Path, len(e.Schema))
	}

	return e.table.Column(col), nil
}

// AngleColumn returns one column with the artificial sign flips removed.
func (e *Experiment) AngleColumn(col int) ([]float64, error) {
	raw, err := e.Column(col)
	if err != nil {
		return nil, err
	}

	return CorrectSignsDefault(raw), nil
}
