// Package experiment models a set of molecular dynamics runs: tabular
// recordings of energies and dihedral angles over time, one file per
// realisation. It computes the Shannon entropy of angle pairs from their
// joint histogram and aggregates the entropy distribution across
// realisations and across mer positions along the polymer chain.
package experiment

import (
	"fmt"
	"strings"
)

// ColumnMeaning identifies the semantic role of one column: what the value
// is and the physical unit it is recorded in. Position within the schema
// defines the physical column index.
type ColumnMeaning struct {
	Description string
	Unit        string
}

// Chain is the physical chain whose angles a run file records.
type Chain int

const (
	MainChain Chain = iota
	SideChain
)

func (c Chain) String() string {
	switch c {
	case MainChain:
		return "main chain"
	case SideChain:
		return "side chain"
	}

	return fmt.Sprintf("Chain(%d)", int(c))
}

// ChainFromPath infers the chain classification from a file path. The
// recording software embeds "sidechain" in side chain file names; everything
// else is a main chain recording. This inference belongs at the file
// boundary only - core constructors take the Chain value explicitly.
func ChainFromPath(path string) Chain {
	if strings.Contains(path, "sidechain") {
		return SideChain
	}

	return MainChain
}

// NoMers is the number of mer positions recorded per chain in both file
// conventions.
const NoMers = 23

var (
	mainChainAngles = []string{"ϕ₁₄", "ψ₁₄", "ϕ₁₃", "ψ₁₃"}
	sideChainAngles = []string{"γ", "ω", "δ"}
)

// Schema is the ordered column layout of one run file.
type Schema []ColumnMeaning

// AngleDescription is the column description under which the recording
// software stores the given angle role for the mer pair (mer, mer+1).
func AngleDescription(angle string, mer int) string {
	return fmt.Sprintf("%s mers %d, %d", angle, mer, mer+1)
}

// Columns builds the column schema for one chain classification. The first 8
// columns are fixed time and energy terms. The remaining columns are angle
// recordings whose nesting differs by chain: main chain files keep the 4
// angle roles of one mer contiguous, side chain files keep all 23 mers of
// one role contiguous. An unknown chain is an error, never a default.
func Columns(chain Chain) (Schema, error) {
	cols := Schema{
		{"Time", "ps"},
		{"Total energy of the system", "kJ/mol"},
		{"Total bond energy", "kJ/mol"},
		{"Total angle energy", "kJ/mol"},
		{"Total dihedral energy", "kJ/mol"},
		{"Total planar energy", "kJ/mol"},
		{"Total Coulomb energy", "kJ/mol"},
		{"Total Van der Waals energy", "kJ/mol"},
	}

	switch chain {
	case MainChain:
		for mer := 1; mer <= NoMers; mer++ {
			for _, angle := range mainChainAngles {
				cols = append(cols, ColumnMeaning{AngleDescription(angle, mer), "deg"})
			}
		}
	case SideChain:
		for _, angle := range sideChainAngles {
			for mer := 1; mer <= NoMers; mer++ {
				cols = append(cols, ColumnMeaning{AngleDescription(angle, mer), "deg"})
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownChain, chain)
	}

	return cols, nil
}

// Find returns the physical index of the column with the given description.
func (s Schema) Find(description string) (int, error) {
	for i, col := range s {
		if col.Description == description {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: no column described as %q", ErrColumnRange, description)
}
