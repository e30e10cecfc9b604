package experiment

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSet(t *testing.T, dir, prefix, ion string, chainType ChainType, n int, fill func(realisation, row, col int) float64) {
	t.Helper()

	chain := MainChain
	if chainType == Sidechain {
		chain = SideChain
	}

	for i := 1; i <= n; i++ {
		i := i
		content := buildTab(t, chain, 12, func(row, col int) float64 { return fill(i, row, col) })
		path := filepath.Join(dir, fmt.Sprintf("%s_%d_%s_%s.tab", prefix, i, chainType, ion))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func varyingFill(realisation, row, col int) float64 {
	return float64(((row + 2) * (col + 3) * (realisation + 5)) % 19)
}

func TestNewSetOfExperiments(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "Complex", "Na", Sidechain, 3, varyingFill)

	set, err := NewSetOfExperiments(dir, "Complex", "Na", Sidechain, 3)
	if err != nil {
		t.Fatal(err)
	}

	if len(set.Experiments) != 3 {
		t.Fatalf("got %d experiments, want 3", len(set.Experiments))
	}

	for i, exp := range set.Experiments {
		// Warm-up preprocessing is applied once at load.
		if exp.Rows() != 11 {
			t.Errorf("realisation %d: got %d rows, want 11", i+1, exp.Rows())
		}

		if len(exp.Schema) != len(set.Schema()) {
			t.Errorf("realisation %d: schema length %d differs from the set's %d", i+1, len(exp.Schema), len(set.Schema()))
		}
	}
}

func TestSetEntropiesOrder(t *testing.T) {
	dir := t.TempDir()

	// Realisation 1 holds constant data, so its entropy is exactly zero;
	// the others hold varied data with positive entropy.
	writeSet(t, dir, "Complex", "Ca", Sidechain, 3, func(realisation, row, col int) float64 {
		if realisation == 1 {
			return 4.2
		}
		return varyingFill(realisation, row, col)
	})

	set, err := NewSetOfExperiments(dir, "Complex", "Ca", Sidechain, 3)
	if err != nil {
		t.Fatal(err)
	}

	entropies, err := set.Entropies(gammaCol, omegaCol)
	if err != nil {
		t.Fatal(err)
	}

	if len(entropies) != 3 {
		t.Fatalf("got %d entropies, want 3", len(entropies))
	}

	if math.Abs(entropies[0]) > 1e-12 {
		t.Errorf("constant realisation 1 should have zero entropy, got %v", entropies[0])
	}

	for i, v := range entropies[1:] {
		if v <= 0 || math.IsNaN(v) {
			t.Errorf("realisation %d: got entropy %v, want > 0", i+2, v)
		}
	}
}

func TestSetFailsOnMalformedMember(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "Complex", "Mg", Sidechain, 3, varyingFill)

	// Corrupt a data cell in the second realisation. The replacement must
	// skip the header line, whose column names also contain digits.
	path := filepath.Join(dir, "Complex_2_sidechain_Mg.tab")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	header, data, ok := strings.Cut(string(content), "\n")
	if !ok {
		t.Fatalf("file %s has no header line", path)
	}
	corrupted := header + "\n" + strings.Replace(data, "4", "oops", 1)
	if err := os.WriteFile(path, []byte(corrupted), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = NewSetOfExperiments(dir, "Complex", "Mg", Sidechain, 3)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("got %v, want ErrMalformedInput", err)
	}

	if !strings.Contains(err.Error(), "realisation 2") {
		t.Errorf("error does not identify the failing realisation: %v", err)
	}
}

func TestSetFailsOnMissingMember(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "Complex", "Mg", Sidechain, 2, varyingFill)

	if _, err := NewSetOfExperiments(dir, "Complex", "Mg", Sidechain, 3); err == nil {
		t.Error("expected an error for the missing third realisation")
	}
}

func TestSetRequiresRealisations(t *testing.T) {
	if _, err := NewSetOfExperiments(t.TempDir(), "Complex", "Na", Sidechain, 0); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("got %v, want ErrEmptyDataset", err)
	}
}
