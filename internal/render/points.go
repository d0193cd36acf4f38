package render

import (
	"image/color"

	"github.com/mikeburf/cells/internal/core"
)

// fillPointsRGBA clears buf to the off color and writes the on color at every
// live point. buf holds w*h RGBA pixels in row-major order; points outside
// the buffer are skipped.
func fillPointsRGBA(buf []byte, pts []core.Point, w, h int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()

	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	for _, p := range pts {
		x, y := int(p.X), int(p.Y)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		base := (y*w + x) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
