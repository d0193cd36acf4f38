package life

import (
	"github.com/mikeburf/cells/internal/core"
)

// Grid implements Conway's Game of Life on a torus with double buffering.
// The current buffer is authoritative between steps; the next buffer is
// scratch space that is fully overwritten by each step before the two swap
// roles. Alongside the cell state the grid maintains the list of live-cell
// coordinates handed to the renderer, plus a flag telling the host that the
// list changed since it last drew.
type Grid struct {
	w, h int
	cur  []bool
	nxt  []bool

	pts   []core.Point
	dirty bool
}

// New allocates an all-dead grid with the given dimensions. The grid starts
// redraw-pending so the host presents the cleared field on its first frame.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]bool, w*h)
	return &Grid{
		w:     w,
		h:     h,
		cur:   cells,
		nxt:   make([]bool, len(cells)),
		pts:   make([]core.Point, 0, len(cells)),
		dirty: true,
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Alive reports whether the cell at (x, y) is alive. Out-of-range
// coordinates read as dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return g.cur[y*g.w+x]
}

// Points returns the live-cell coordinate list for the renderer. The slice is
// rebuilt whenever the grid changes; callers must not retain it across steps.
func (g *Grid) Points() []core.Point { return g.pts }

// NeedsRedraw reports whether the live-point list changed since ClearRedraw.
func (g *Grid) NeedsRedraw() bool { return g.dirty }

// ClearRedraw marks the current live-point list as presented.
func (g *Grid) ClearRedraw() { g.dirty = false }

// TryActivate brings the cell at (x, y) to life, appending it to the
// live-point list if it was dead. Activating an already-live cell is a no-op.
// The return value reports whether the coordinate was inside the grid, so a
// rasterizer can tell when a stroke left the field; painting never kills
// cells.
func (g *Grid) TryActivate(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	idx := y*g.w + x
	if !g.cur[idx] {
		g.cur[idx] = true
		g.pts = append(g.pts, core.Point{X: float32(x), Y: float32(y)})
		g.dirty = true
	}
	return true
}

// Step advances the simulation by one generation and rebuilds the live-point
// list. Every next-buffer cell is written explicitly because the buffer still
// holds the generation before last.
func (g *Grid) Step() {
	w, h := g.w, g.h
	g.pts = g.pts[:0]

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 {
					ny = h - 1
				} else if ny == h {
					ny = 0
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 {
						nx = w - 1
					} else if nx == w {
						nx = 0
					}
					if g.cur[ny*w+nx] {
						neighbors++
					}
					// The rule never distinguishes counts above 3.
					if neighbors > 3 {
						break
					}
				}
			}

			idx := y*w + x
			if g.cur[idx] {
				if neighbors < 2 || neighbors > 3 {
					g.nxt[idx] = false
				} else {
					g.nxt[idx] = true
					g.pts = append(g.pts, core.Point{X: float32(x), Y: float32(y)})
				}
			} else {
				if neighbors == 3 {
					g.nxt[idx] = true
					g.pts = append(g.pts, core.Point{X: float32(x), Y: float32(y)})
				} else {
					g.nxt[idx] = false
				}
			}
		}
	}

	g.cur, g.nxt = g.nxt, g.cur
	g.dirty = true
}

// Clear kills every cell and empties the live-point list.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
	g.pts = g.pts[:0]
	g.dirty = true
}

// Randomize fills the board with a deterministic soup for the given seed and
// rebuilds the live-point list.
func (g *Grid) Randomize(seed int64) {
	core.NewRNG(seed).FillBool(g.cur)
	g.pts = g.pts[:0]
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cur[y*g.w+x] {
				g.pts = append(g.pts, core.Point{X: float32(x), Y: float32(y)})
			}
		}
	}
	g.dirty = true
}
