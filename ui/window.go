//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/agelife/model"
	"github.com/sheikhrachel/agelife/utils"
)

var (
	background = color.RGBA{A: 255}
	hudColor   = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	grid    *model.Grid
	stepper *model.Stepper
	timer   *utils.FixedStep
	pool    *model.FramePool
	stats   *utils.Stats

	cam  model.Camera
	drag model.Drag

	width, height int
	rgba          []byte

	generation int
	paused     bool
	tickOnce   bool
}

// New constructs a Game starting from generation 0.
func New(config utils.Config, grid *model.Grid, stepper *model.Stepper) *Game {
	g := &Game{
		grid:    grid,
		stepper: stepper,
		timer:   utils.NewFixedStep(config.TPS),
		stats:   utils.NewStats(),
		cam:     model.NewCamera(int32(config.CenterX), int32(config.CenterY), config.Zoom),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
	}
	if config.UseFramePool {
		g.pool = model.NewFramePool(background)
	}
	return g
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		notches := 1
		if wy < 0 {
			notches = -1
		}
		g.cam.ZoomBy(notches)
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drag.Press(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.drag.Release()
	default:
		g.drag.Move(&g.cam, x, y)
	}

	stepDue := g.timer.ShouldStep()
	if (!g.paused && stepDue) || g.tickOnce {
		next, err := g.grid.NextGeneration(g.stepper)
		if err != nil {
			return errors.Wrapf(err, "[Update] generation %d", g.generation)
		}
		g.grid = next
		g.generation++
		g.tickOnce = false
		g.stats.Update(g.generation, next.CountLivingCells(), next.CountFresh(), 0)
	}
	return nil
}

// Draw rasterizes the current generation and uploads it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := model.RenderFrame(g.grid, g.pool, g.width, g.height, g.cam)
	defer model.FrameToPool(frame, g.pool)

	if n := frame.W * frame.H * 4; cap(g.rgba) < n {
		g.rgba = make([]byte, n)
	} else {
		g.rgba = g.rgba[:n]
	}
	frame.FillRGBA(g.rgba)
	screen.WritePixels(g.rgba)

	hud := fmt.Sprintf("gen %d  cells %d  fresh %d  zoom %.2f  %.0f fps",
		g.generation, g.grid.CountLivingCells(), g.stats.FreshCells, g.cam.Zoom, ebiten.ActualFPS())
	if g.paused {
		hud += "  [paused]"
	}
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, hudColor)
}

// Layout follows the window size so the frame is rebuilt on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(config utils.Config, grid *model.Grid, stepper *model.Stepper) error {
	game := New(config, grid, stepper)

	ebiten.SetWindowTitle("agelife")
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window loop failed")
	}
	return nil
}
