package merplot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/carbocation/merentropy/experiment"
	"github.com/carbocation/pfx"
)

const cellPx = 48

// Hist2D renders the joint 10×10 histogram of two sign-corrected angle
// columns as a red-intensity heatmap PNG named
// {prefix}hist2D_{chain}_{xcol}_{ycol}.png. X runs left to right, Y bottom
// to top; denser bins are darker red.
func Hist2D(e *experiment.Experiment, xcol, ycol int, prefix string) error {
	x, err := e.AngleColumn(xcol)
	if err != nil {
		return err
	}

	y, err := e.AngleColumn(ycol)
	if err != nil {
		return err
	}

	grid, err := experiment.JointHistogram(x, y)
	if err != nil {
		return fmt.Errorf("%s columns %d, %d: %w", e.Path, xcol, ycol, err)
	}

	maxCount := 0.0
	for _, row := range grid {
		for _, c := range row {
			if c > maxCount {
				maxCount = c
			}
		}
	}

	bins := len(grid)
	img := image.NewNRGBA(image.Rect(0, 0, bins*cellPx, bins*cellPx))

	for ix, row := range grid {
		for iy, count := range row {
			ratio := 0.0
			if maxCount > 0 {
				ratio = count / maxCount
			}

			// White at zero density through to dark red at the densest bin.
			fade := uint8(235 * (1 - ratio))
			cellColor := color.NRGBA{R: 215 + uint8(40*(1-ratio)), G: fade, B: fade, A: 255}

			for px := 0; px < cellPx; px++ {
				for py := 0; py < cellPx; py++ {
					img.Set(ix*cellPx+px, (bins-1-iy)*cellPx+py, cellColor)
				}
			}
		}
	}

	f, err := createFile(fmt.Sprintf("%shist2D_%s_%d_%d.png", prefix, chainSlug(e.Chain), xcol, ycol))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return pfx.Err(err)
	}

	return nil
}
