package life

import (
	"testing"

	"github.com/mikeburf/cells/internal/core"
)

func liveSet(g *Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.Alive(x, y) {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func expectCells(t *testing.T, g *Grid, expects map[[2]int]bool) {
	t.Helper()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := g.Alive(x, y)
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	grid := New(5, 5)
	grid.TryActivate(2, 1)
	grid.TryActivate(2, 2)
	grid.TryActivate(2, 3)

	grid.Step()
	expectCells(t, grid, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	grid.Step()
	expectCells(t, grid, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockStability(t *testing.T) {
	grid := New(6, 6)
	block := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	for c := range block {
		grid.TryActivate(c[0], c[1])
	}

	for i := 0; i < 5; i++ {
		grid.Step()
		expectCells(t, grid, block)
	}
}

func TestHorizontalWraparound(t *testing.T) {
	grid := New(8, 5)
	w := grid.Size().W

	// Blinker straddling the vertical seam: its arms sit on opposite edges.
	grid.TryActivate(w-1, 2)
	grid.TryActivate(0, 2)
	grid.TryActivate(1, 2)

	grid.Step()
	expectCells(t, grid, map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{0, 3}: true,
	})
}

func TestVerticalWraparound(t *testing.T) {
	grid := New(5, 8)
	h := grid.Size().H

	grid.TryActivate(2, h-1)
	grid.TryActivate(2, 0)
	grid.TryActivate(2, 1)

	grid.Step()
	expectCells(t, grid, map[[2]int]bool{
		{1, 0}: true,
		{2, 0}: true,
		{3, 0}: true,
	})
}

func TestCornerBlockStability(t *testing.T) {
	grid := New(8, 6)
	w, h := grid.Size().W, grid.Size().H

	// A 2x2 block split across all four corners of the torus.
	corners := map[[2]int]bool{
		{0, 0}:         true,
		{w - 1, 0}:     true,
		{0, h - 1}:     true,
		{w - 1, h - 1}: true,
	}
	for c := range corners {
		grid.TryActivate(c[0], c[1])
	}

	for i := 0; i < 3; i++ {
		grid.Step()
		expectCells(t, grid, corners)
	}
}

func TestTryActivateBounds(t *testing.T) {
	grid := New(8, 6)
	w := grid.Size().W

	for _, c := range [][2]int{{-1, 0}, {w, 0}, {0, -1}, {0, grid.Size().H}} {
		if grid.TryActivate(c[0], c[1]) {
			t.Fatalf("TryActivate(%d,%d) reported in-bounds", c[0], c[1])
		}
	}
	if len(grid.Points()) != 0 {
		t.Fatalf("out-of-bounds activation added %d points", len(grid.Points()))
	}
	if len(liveSet(grid)) != 0 {
		t.Fatal("out-of-bounds activation modified the grid")
	}
}

func TestActivateIsMonotonicAndDeduplicated(t *testing.T) {
	grid := New(8, 6)
	grid.TryActivate(1, 1)
	grid.TryActivate(2, 2)

	// Re-activating live cells must neither kill them nor duplicate points.
	grid.TryActivate(1, 1)
	grid.TryActivate(2, 2)
	grid.TryActivate(3, 3)

	if !grid.Alive(1, 1) || !grid.Alive(2, 2) || !grid.Alive(3, 3) {
		t.Fatal("painting deactivated a previously live cell")
	}
	if got := len(grid.Points()); got != 3 {
		t.Fatalf("live-point list has %d entries, expected 3", got)
	}
}

func TestPointsMatchGrid(t *testing.T) {
	grid := New(10, 10)
	grid.Randomize(7)

	verify := func() {
		t.Helper()
		set := liveSet(grid)
		pts := grid.Points()
		if len(pts) != len(set) {
			t.Fatalf("live-point list has %d entries, grid has %d live cells", len(pts), len(set))
		}
		seen := map[[2]int]bool{}
		for _, p := range pts {
			c := [2]int{int(p.X), int(p.Y)}
			if seen[c] {
				t.Fatalf("duplicate point (%d,%d)", c[0], c[1])
			}
			seen[c] = true
			if !set[c] {
				t.Fatalf("point (%d,%d) is not alive in the grid", c[0], c[1])
			}
		}
	}

	verify()
	grid.TryActivate(0, 0)
	verify()
	grid.Step()
	verify()
	grid.Step()
	verify()
}

func TestStepFlagsRedraw(t *testing.T) {
	grid := New(5, 5)
	if !grid.NeedsRedraw() {
		t.Fatal("fresh grid must request an initial draw")
	}
	grid.ClearRedraw()

	// A lone cell dies; the board goes fully dark and must still redraw.
	grid.TryActivate(2, 2)
	grid.ClearRedraw()
	grid.Step()

	if !grid.NeedsRedraw() {
		t.Fatal("step did not flag a redraw")
	}
	if len(grid.Points()) != 0 {
		t.Fatalf("lone cell survived: %d points", len(grid.Points()))
	}
}

func TestClear(t *testing.T) {
	grid := New(6, 6)
	grid.Randomize(3)
	grid.ClearRedraw()

	grid.Clear()
	if len(grid.Points()) != 0 || len(liveSet(grid)) != 0 {
		t.Fatal("Clear left live cells behind")
	}
	if !grid.NeedsRedraw() {
		t.Fatal("Clear did not flag a redraw")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(12, 9)
	b := New(12, 9)
	a.Randomize(99)
	b.Randomize(99)

	size := a.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if a.Alive(x, y) != b.Alive(x, y) {
				t.Fatalf("seeded boards diverge at (%d,%d)", x, y)
			}
		}
	}
}

func TestPointCoordinates(t *testing.T) {
	grid := New(5, 5)
	grid.TryActivate(3, 4)
	pts := grid.Points()
	if len(pts) != 1 {
		t.Fatalf("expected 1 point, got %d", len(pts))
	}
	if pts[0] != (core.Point{X: 3, Y: 4}) {
		t.Fatalf("point is %+v, expected (3,4)", pts[0])
	}
}
