package experiment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// ChainType names the two conventions under which runs are recorded on disk.
// It is a file-discovery vocabulary, distinct from the physical Chain: the
// "analysis" convention holds main chain angles, "sidechain" holds side
// chain angles.
type ChainType string

const (
	Analysis  ChainType = "analysis"
	Sidechain ChainType = "sidechain"
)

// ParseChainType validates a user-supplied chain type.
func ParseChainType(s string) (ChainType, error) {
	switch ChainType(s) {
	case Analysis, Sidechain:
		return ChainType(s), nil
	}

	return "", fmt.Errorf("%w: incorrect chain type %q", ErrUnknownChain, s)
}

// MerOffset is the column-index stride between consecutive mers: the
// analysis convention interleaves 4 angle roles per mer, while the sidechain
// convention stores all mers of one role contiguously, so stepping one mer
// moves 1 column.
func (c ChainType) MerOffset() int {
	if c == Sidechain {
		return 1
	}

	return len(mainChainAngles)
}

// Angles returns the angle role names recorded under this convention.
func (c ChainType) Angles() []string {
	if c == Sidechain {
		return sideChainAngles
	}

	return mainChainAngles
}

func (c ChainType) physicalChain() Chain {
	if c == Sidechain {
		return SideChain
	}

	return MainChain
}

// DefaultRealisations is the number of independent runs recorded per
// (complex, ion, chain type) identity.
const DefaultRealisations = 12

// SetOfExperiments owns every realisation of one (complex, ion, chain type)
// identity, all sharing a single schema.
type SetOfExperiments struct {
	Complex     string
	Ion         string
	Chain       ChainType
	Experiments []*Experiment
}

// NewSetOfExperiments discovers {prefix}_{i}_{chainType}_{ion}.tab under
// dataPath for realisations i = 1..n, loads each one, and applies the
// warm-up preprocessing so that entropy computations are read-only from here
// on. Any unreadable member fails the whole set.
func NewSetOfExperiments(dataPath, prefix, ion string, chainType ChainType, n int) (*SetOfExperiments, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: a set needs at least one realisation, got %d", ErrEmptyDataset, n)
	}

	set := &SetOfExperiments{Complex: prefix, Ion: ion, Chain: chainType}

	for i := 1; i <= n; i++ {
		path := filepath.Join(dataPath, fmt.Sprintf("%s_%d_%s_%s.tab", prefix, i, chainType, ion))

		exp, err := openAs(path, chainType.physicalChain())
		if err != nil {
			return nil, fmt.Errorf("realisation %d: %w", i, err)
		}
		exp.DropFirstObservations()

		set.Experiments = append(set.Experiments, exp)
	}

	return set, nil
}

func openAs(path string, chain Chain) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return New(f, chain, path)
}

// Schema is the column layout shared by every member.
func (s *SetOfExperiments) Schema() Schema {
	return s.Experiments[0].Schema
}

// Entropies computes the entropy of the same column pair across every
// realisation, ordered by realisation index. A failing member aborts the
// whole aggregation; there are no partial results.
func (s *SetOfExperiments) Entropies(xcol, ycol int) ([]float64, error) {
	out := make([]float64, 0, len(s.Experiments))

	for i, exp := range s.Experiments {
		v, err := exp.Entropy(xcol, ycol)
		if err != nil {
			return nil, fmt.Errorf("realisation %d: %w", i+1, err)
		}

		out = append(out, v)
	}

	return out, nil
}
