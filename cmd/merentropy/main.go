// merentropy reads tabular molecular dynamics runs, estimates the Shannon
// entropy of dihedral angle pairs from their joint histograms, and writes
// time series, 2D histogram, and entropy distribution plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	_ "github.com/carbocation/merentropy/compileinfoprint"
	"github.com/carbocation/merentropy/experiment"
	"github.com/carbocation/merentropy/merplot"
)

func main() {
	var dataFolder, plotDir, ions, modes, complexName string
	var realisations, seriesRuns int

	flag.StringVar(&dataFolder, "datafolder", "data", "Directory holding the realisation .tab files")
	flag.StringVar(&plotDir, "plotdir", "pics", "Directory where plots are saved")
	flag.StringVar(&ions, "ions", "Ca,Mg,Na", "Comma-delimited ions to be considered")
	flag.StringVar(&modes, "modes", "analysis,sidechain", "Comma-delimited chain types ('analysis' and 'sidechain' allowed)")
	flag.StringVar(&complexName, "complex", "Albumin+HA", "Complex chosen")
	flag.IntVar(&realisations, "realisations", experiment.DefaultRealisations, "Number of realisations per set")
	flag.IntVar(&seriesRuns, "seriesruns", 2, "Number of realisations that get per-run series and 2D histogram plots")
	flag.Parse()

	if dataFolder == "" || plotDir == "" || complexName == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(dataFolder, plotDir, complexName, splitList(ions), splitList(modes), realisations, seriesRuns); err != nil {
		log.Fatalln(err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

func run(dataFolder, plotDir, complexName string, ions, modes []string, realisations, seriesRuns int) error {
	chainTypes := make([]experiment.ChainType, 0, len(modes))
	for _, mode := range modes {
		ct, err := experiment.ParseChainType(mode)
		if err != nil {
			return err
		}
		chainTypes = append(chainTypes, ct)
	}

	log.Println("Complex:", complexName)
	log.Println("Ions:", ions)
	log.Println("Modes:", modes)

	// Per-run plots for the first few realisations: the artificial energy
	// series over time and the joint histogram of the mode's first angle
	// pair.
	for _, mode := range chainTypes {
		for _, ion := range ions {
			for i := 1; i <= seriesRuns; i++ {
				if err := plotOneRun(dataFolder, plotDir, complexName, ion, mode, i); err != nil {
					return err
				}
			}
		}
	}

	// Per-set aggregation: entropy distributions across mer positions for
	// every pairwise combination of the mode's angle roles, plus entropy
	// histograms for the named starting pairs.
	for _, mode := range chainTypes {
		for _, ion := range ions {
			if err := plotOneSet(dataFolder, plotDir, complexName, ion, mode, realisations); err != nil {
				return err
			}
		}
	}

	return nil
}

// artificialEnergyColumn is the first angle column; its series plot makes the
// warm-up artifact and any residual sign flips visible.
const artificialEnergyColumn = 8

func plotOneRun(dataFolder, plotDir, complexName, ion string, mode experiment.ChainType, i int) error {
	path := filepath.Join(dataFolder, fmt.Sprintf("%s_%d_%s_%s.tab", complexName, i, mode, ion))

	exp, err := experiment.Open(path)
	if err != nil {
		return err
	}
	exp.DropFirstObservations()

	prefix := filepath.Join(plotDir, fmt.Sprintf("realisation%d_%s_", i, ion))

	if err := merplot.Series(exp, artificialEnergyColumn, prefix); err != nil {
		return err
	}

	pairs, err := startingPairs(mode, exp.Schema)
	if err != nil {
		return err
	}

	return merplot.Hist2D(exp, pairs[0][0], pairs[0][1], prefix)
}

func plotOneSet(dataFolder, plotDir, complexName, ion string, mode experiment.ChainType, realisations int) error {
	set, err := experiment.NewSetOfExperiments(dataFolder, complexName, ion, mode, realisations)
	if err != nil {
		return err
	}

	schema := set.Schema()
	title := fmt.Sprintf("%s, ion %s", mode, ion)

	baseCols, err := angleBaseColumns(mode, schema)
	if err != nil {
		return err
	}

	for ai := 0; ai < len(baseCols); ai++ {
		for bi := ai + 1; bi < len(baseCols); bi++ {
			a, b := baseCols[ai], baseCols[bi]
			xdesc, ydesc := schema[a].Description, schema[b].Description
			log.Printf("entropy distribution: %q vs %q\n", xdesc, ydesc)

			ylabel := fmt.Sprintf("entropy %s vs. %s", xdesc, ydesc)

			dp, err := set.EntropyDistributionPercentiles(a, b, experiment.NoMers)
			if err != nil {
				return err
			}
			out := filepath.Join(plotDir, fmt.Sprintf("entropy_%s_%s_%s_%s.png", mode, ion, xdesc, ydesc))
			if err := merplot.DistributionPercentiles(dp, title, ylabel, out); err != nil {
				return err
			}

			dr, err := set.EntropyDistributionRealisations(a, b, experiment.NoMers)
			if err != nil {
				return err
			}
			out = filepath.Join(plotDir, fmt.Sprintf("entropy_reals_%s_%s_%s_%s.png", mode, ion, xdesc, ydesc))
			if err := merplot.DistributionRealisations(dr, title, ylabel, out); err != nil {
				return err
			}
		}
	}

	pairs, err := startingPairs(mode, schema)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		entropies, err := set.Entropies(pair[0], pair[1])
		if err != nil {
			return err
		}

		xdesc, ydesc := schema[pair[0]].Description, schema[pair[1]].Description
		xlabel := fmt.Sprintf("entropy %s vs. %s", xdesc, ydesc)
		out := filepath.Join(plotDir, fmt.Sprintf("hist%s_%s.png", xdesc, ydesc))
		if err := merplot.EntropyHistogram(entropies, title, xlabel, out); err != nil {
			return err
		}

		// Quick terminal look at the same distribution.
		fmt.Printf("%s: %s\n", title, xlabel)
		if err := histogram.Fprint(os.Stdout, histogram.Hist(merplot.EntropyHistBins, entropies), histogram.Linear(40)); err != nil {
			return err
		}
	}

	return nil
}

// angleBaseColumns resolves each of the mode's angle roles to the physical
// column holding its mers 1, 2 recording.
func angleBaseColumns(mode experiment.ChainType, schema experiment.Schema) ([]int, error) {
	angles := mode.Angles()

	out := make([]int, 0, len(angles))
	for _, angle := range angles {
		col, err := schema.Find(experiment.AngleDescription(angle, 1))
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}

	return out, nil
}

// startingPairs lists the angle pairs whose joint distributions get
// standalone histogram plots, anchored at mers 1, 2.
func startingPairs(mode experiment.ChainType, schema experiment.Schema) ([][2]int, error) {
	var names [][2]string
	if mode == experiment.Sidechain {
		names = [][2]string{{"γ", "ω"}, {"γ", "δ"}, {"ω", "δ"}}
	} else {
		names = [][2]string{{"ϕ₁₄", "ψ₁₄"}, {"ϕ₁₃", "ψ₁₃"}, {"ϕ₁₄", "ϕ₁₃"}}
	}

	out := make([][2]int, 0, len(names))
	for _, pair := range names {
		a, err := schema.Find(experiment.AngleDescription(pair[0], 1))
		if err != nil {
			return nil, err
		}

		b, err := schema.Find(experiment.AngleDescription(pair[1], 1))
		if err != nil {
			return nil, err
		}

		out = append(out, [2]int{a, b})
	}

	return out, nil
}
