//go:build ebiten

package render

import (
	"image/color"

	"github.com/mikeburf/cells/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointPainter presents a live-point list as an image, one pixel per cell.
// The image is uploaded only when the point list changes and blitted scaled
// every frame.
type PointPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPointPainter allocates a painter for a grid of size w*h.
func NewPointPainter(w, h int) *PointPainter {
	pp := &PointPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	pp.img = ebiten.NewImage(w, h)
	return pp
}

// Upload refreshes the painter image from the provided live points.
func (pp *PointPainter) Upload(pts []core.Point, on, off color.Color) {
	fillPointsRGBA(pp.buf, pts, pp.w, pp.h, on, off)
	pp.img.WritePixels(pp.buf)
}

// Draw blits the painter image onto dst at the given pixel scale.
func (pp *PointPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(pp.img, op)
}

// Size returns the dimensions of the underlying image.
func (pp *PointPainter) Size() (int, int) { return pp.w, pp.h }
