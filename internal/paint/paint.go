package paint

// Canvas is the surface a stroke activates cells on. TryActivate reports
// whether the coordinate was inside the canvas; it never deactivates.
type Canvas interface {
	TryActivate(x, y int) bool
}

// Engine turns once-per-frame pointer samples into cell activations,
// rasterizing a line between consecutive samples so a fast drag leaves no
// gaps. It remembers the previous frame's cell and whether a stroke was in
// progress.
type Engine struct {
	canvas Canvas
	scale  int

	lastX, lastY int
	painting     bool
}

// New constructs an Engine painting onto canvas. Pointer positions are in
// window space and divided by scale to reach cell coordinates.
func New(canvas Canvas, scale int) *Engine {
	if scale <= 0 {
		scale = 1
	}
	return &Engine{canvas: canvas, scale: scale}
}

// ProcessFrame consumes one frame's pointer sample. While the pointer is
// down, the first sample activates a single cell and every following sample
// draws a line from the previous frame's cell, bridging the gap left by
// frame-limited sampling. Releasing the pointer ends the stroke.
func (e *Engine) ProcessFrame(down bool, x, y float64) {
	if down {
		cx := int(x / float64(e.scale))
		cy := int(y / float64(e.scale))

		if e.painting {
			e.Line(e.lastX, e.lastY, cx, cy)
		} else {
			e.canvas.TryActivate(cx, cy)
		}

		e.lastX, e.lastY = cx, cy
	}
	e.painting = down
}

// Line activates every cell on the Bresenham rasterization of the segment
// from (x0, y0) to (x1, y1), endpoints included. The path is 8-connected.
func (e *Engine) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	// Each branch steps along one axis in increasing order, so endpoints are
	// reordered to put the smaller coordinate first on that axis.
	if dy <= dx {
		if x0 <= x1 {
			e.lineShallow(x0, y0, x1, y1, dx, dy)
		} else {
			e.lineShallow(x1, y1, x0, y0, dx, dy)
		}
	} else {
		if y0 <= y1 {
			e.lineSteep(x0, y0, x1, y1, dx, dy)
		} else {
			e.lineSteep(x1, y1, x0, y0, dx, dy)
		}
	}
}

// lineShallow rasterizes slopes in [-1, 1]. Assumes x0 <= x1, dx = |x1-x0|,
// dy = |y1-y0|.
func (e *Engine) lineShallow(x0, y0, x1, y1, dx, dy int) {
	step := 1
	if y1 < y0 {
		step = -1
	}
	errAcc := 2*dy - dx

	y := y0
	for x := x0; x <= x1; x++ {
		e.canvas.TryActivate(x, y)

		if errAcc > 0 {
			y += step
			errAcc -= 2 * dx
		}
		errAcc += 2 * dy
	}
}

// lineSteep rasterizes slopes outside [-1, 1]. Assumes y0 <= y1, dx = |x1-x0|,
// dy = |y1-y0|.
func (e *Engine) lineSteep(x0, y0, x1, y1, dx, dy int) {
	step := 1
	if x1 < x0 {
		step = -1
	}
	errAcc := 2*dx - dy

	x := x0
	for y := y0; y <= y1; y++ {
		e.canvas.TryActivate(x, y)

		if errAcc > 0 {
			x += step
			errAcc -= 2 * dy
		}
		errAcc += 2 * dx
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
