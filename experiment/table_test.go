package experiment

import (
	"errors"
	"strings"
	"testing"
)

func TestReadTable(t *testing.T) {
	content := "a;b;c\n1;2;3\n4;5.5;-6\n# footer one\n# footer two\n"

	table, err := ReadTable(strings.NewReader(content), 3, "test.tab")
	if err != nil {
		t.Fatal(err)
	}

	if table.Rows() != 2 || table.Cols() != 3 {
		t.Fatalf("got %d rows × %d cols, want 2 × 3", table.Rows(), table.Cols())
	}

	if col := table.Column(1); col[0] != 2 || col[1] != 5.5 {
		t.Errorf("column 1: got %v", col)
	}
}

func TestReadTableMalformed(t *testing.T) {
	for _, v := range []struct {
		name    string
		content string
	}{
		{"non-numeric cell", "a;b;c\n1;x;3\nf\nf\n"},
		{"short row", "a;b;c\n1;2\nf\nf\n"},
		{"long row", "a;b;c\n1;2;3;4\nf\nf\n"},
		{"header only", "a;b;c\n"},
		{"empty", ""},
	} {
		_, err := ReadTable(strings.NewReader(v.content), 3, v.name+".tab")
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: got %v, want ErrMalformedInput", v.name, err)
		}

		if err != nil && !strings.Contains(err.Error(), v.name+".tab") {
			t.Errorf("%s: error does not identify the file: %v", v.name, err)
		}
	}
}

// A file holding only the header and footer loads as a zero-row table;
// preprocessing it must be harmless.
func TestReadTableNoObservations(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a;b;c\n# footer one\n# footer two\n"), 3, "bare.tab")
	if err != nil {
		t.Fatal(err)
	}

	if table.Rows() != 0 {
		t.Fatalf("got %d rows, want 0", table.Rows())
	}

	table.dropFirstRow()
	if table.Rows() != 0 {
		t.Errorf("dropping from an empty table changed the row count: %d", table.Rows())
	}
}

func TestDropFirstObservationsIsOneTime(t *testing.T) {
	exp := testExperiment(t, SideChain, 5, func(row, col int) float64 { return float64(row) })

	exp.DropFirstObservations()
	if exp.Rows() != 4 {
		t.Fatalf("got %d rows after first drop, want 4", exp.Rows())
	}

	exp.DropFirstObservations()
	if exp.Rows() != 4 {
		t.Errorf("repeated drop removed more rows: %d", exp.Rows())
	}

	col, err := exp.Column(0)
	if err != nil {
		t.Fatal(err)
	}
	if col[0] != 1 {
		t.Errorf("warm-up row not removed: first value %v", col[0])
	}
}
