package cave

import "cavemap/internal/core"

// Smooth applies one synchronous smoothing pass to the grid: every output
// cell is computed from the input generation only. The pass allocates its
// own scratch buffer; the world reuses one across iterations instead.
func Smooth(g *core.Grid, radius int, threshold float64) {
	scratch := make([]core.Cell, len(g.Cells()))
	smoothInto(scratch, g.Cells(), g.W, g.H, radius, threshold)
	copy(g.Cells(), scratch)
}

// smoothInto writes the smoothed generation of src into dst. The neighbor
// sum covers the in-bounds part of the (2R+1)x(2R+1) window centered on
// the cell, center included, but the ratio denominator is always the full
// window area. Border cells therefore trend toward CellOpen; that skew is
// part of the rule, not an artifact to correct.
func smoothInto(dst, src []core.Cell, w, h, radius int, threshold float64) {
	window := (2*radius + 1) * (2*radius + 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -radius; dy <= radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					sum += int(src[ny*w+nx])
				}
			}
			ratio := float64(sum) / float64(window)
			if ratio > threshold {
				dst[y*w+x] = core.CellBlocked
			} else {
				dst[y*w+x] = core.CellOpen
			}
		}
	}
}
