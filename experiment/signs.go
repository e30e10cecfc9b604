package experiment

import "math"

// DefaultSignThreshold is the relative closeness at which two adjacent angle
// values are considered negatives of each other rather than merely similar.
const DefaultSignThreshold = 0.5

// CorrectSigns removes the artificial sign reversals the recording software
// introduces into angle series. Whenever two adjacent values are much closer
// to being negatives of each other than to being equal, the remainder of the
// series is negated; flips can compound, each affecting only the remaining
// suffix. The input is left untouched and a corrected copy is returned.
func CorrectSigns(series []float64, thres float64) []float64 {
	corrected := make([]float64, len(series))
	copy(corrected, series)

	for i := 0; i+1 < len(corrected); i++ {
		if math.Abs(corrected[i]+corrected[i+1]) < thres*math.Abs(corrected[i+1]) {
			for j := i + 1; j < len(corrected); j++ {
				corrected[j] = -corrected[j]
			}
		}
	}

	return corrected
}

// CorrectSignsDefault applies CorrectSigns at the default threshold.
func CorrectSignsDefault(series []float64) []float64 {
	return CorrectSigns(series, DefaultSignThreshold)
}
