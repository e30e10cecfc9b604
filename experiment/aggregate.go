package experiment

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// DistributionPercentiles summarizes the entropy distribution at each mer
// position with its median and 5th/95th percentile bands.
type DistributionPercentiles struct {
	Mers   []int // number of the first mer of each angle pair
	Median []float64
	Perc5  []float64
	Perc95 []float64
}

// DistributionRealisations keeps the full per-realisation entropy at each
// mer position, for overlay plotting of individual trajectories.
type DistributionRealisations struct {
	Mers      []int
	Entropies [][]float64 // [mer][realisation]
}

// scanMers slides the base column pair along the chain one mer at a time and
// collects the entropy of every realisation at every position. Both
// distribution views consume this one traversal.
func (s *SetOfExperiments) scanMers(xcol, ycol, noMers int) ([][]float64, error) {
	offset := s.Chain.MerOffset()

	grid := make([][]float64, noMers)
	for mer := 0; mer < noMers; mer++ {
		entropies, err := s.Entropies(xcol+offset*mer, ycol+offset*mer)
		if err != nil {
			return nil, fmt.Errorf("mer %d: %w", mer+1, err)
		}

		grid[mer] = entropies
	}

	return grid, nil
}

// EntropyDistributionPercentiles reduces the entropy distribution at each of
// the first noMers mer positions to its median and 5th/95th percentiles,
// starting from the base column pair (xcol, ycol) at mer 0.
func (s *SetOfExperiments) EntropyDistributionPercentiles(xcol, ycol, noMers int) (*DistributionPercentiles, error) {
	grid, err := s.scanMers(xcol, ycol, noMers)
	if err != nil {
		return nil, err
	}

	out := &DistributionPercentiles{
		Mers:   firstMers(noMers),
		Median: make([]float64, 0, noMers),
		Perc5:  make([]float64, 0, noMers),
		Perc95: make([]float64, 0, noMers),
	}

	for mer, entropies := range grid {
		median, err := stats.Median(entropies)
		if err != nil {
			return nil, fmt.Errorf("mer %d: %v", mer+1, err)
		}

		out.Median = append(out.Median, median)
		out.Perc5 = append(out.Perc5, percentile(entropies, 5))
		out.Perc95 = append(out.Perc95, percentile(entropies, 95))
	}

	return out, nil
}

// EntropyDistributionRealisations keeps the raw mer × realisation entropy
// grid instead of reducing it.
func (s *SetOfExperiments) EntropyDistributionRealisations(xcol, ycol, noMers int) (*DistributionRealisations, error) {
	grid, err := s.scanMers(xcol, ycol, noMers)
	if err != nil {
		return nil, err
	}

	return &DistributionRealisations{Mers: firstMers(noMers), Entropies: grid}, nil
}

func firstMers(noMers int) []int {
	out := make([]int, noMers)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
