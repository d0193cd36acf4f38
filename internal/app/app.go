//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/mikeburf/cells/internal/core"
	"github.com/mikeburf/cells/internal/life"
	"github.com/mikeburf/cells/internal/paint"
	"github.com/mikeburf/cells/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation to the ebiten.Game interface. Each Update
// samples the pointer for painting, adjusts the step rate from the wheel, and
// advances at most one generation; Draw re-uploads pixels only when the grid
// reports a pending redraw.
type Game struct {
	grid    *life.Grid
	brush   *paint.Engine
	painter *render.PointPainter
	clock   *core.StepClock

	onColor  color.Color
	offColor color.Color

	scale    int
	tickOnce bool
}

// New constructs a Game around the provided grid.
func New(grid *life.Grid, scale int) *Game {
	size := grid.Size()
	return &Game{
		grid:     grid,
		brush:    paint.New(grid, scale),
		painter:  render.NewPointPainter(size.W, size.H),
		clock:    core.NewStepClock(MaxStepsPerSecond),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input, painting, and simulation stepping.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.grid.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.clock.AdjustRate(wheelY)
	}

	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.brush.ProcessFrame(down, float64(mx), float64(my))

	if g.clock.ShouldStep(time.Now()) || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current live cells.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.grid.NeedsRedraw() {
		g.painter.Upload(g.grid.Points(), g.onColor, g.offColor)
		g.grid.ClearRedraw()
	}
	g.painter.Draw(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.grid.Size()
	return size.W * g.scale, size.H * g.scale
}
