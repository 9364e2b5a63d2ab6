package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// StartLabel is the clickable button shown while stopped.
const StartLabel = "[ Start Game ]"

// Viewport maps field units onto a cell grid. The bottom screen row is
// reserved for the ground line.
type Viewport struct {
	Cols, Rows int
	sx, sy     float64
}

// NewViewport fits the field into a screenW x screenH cell grid.
func NewViewport(f config.FieldConfig, screenW, screenH int) Viewport {
	rows := core.Clamp(screenH-1, 1, screenH)
	return Viewport{
		Cols: screenW,
		Rows: rows,
		sx:   float64(screenW) / f.Width,
		sy:   float64(rows) / f.Height,
	}
}

// Col converts a field x-coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x * v.sx))
}

// Row converts a field y-coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws a snapshot into dst. It never touches the simulation.
func Render(snap Snapshot, cfg config.FlappyConfig, dst *core.Screen) {
	dst.Clear()
	vp := NewViewport(cfg.Field, dst.Width(), dst.Height())

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGround)

	for _, p := range snap.Pipes {
		drawPipe(dst, vp, p, cfg)
	}
	drawBird(dst, vp, snap.BirdY, cfg.Bird)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorText)

	if !snap.Running {
		drawOverlay(dst, snap)
	}
}

// drawPipe renders the top and bottom obstacle of one pipe.
func drawPipe(dst *core.Screen, vp Viewport, p Pipe, cfg config.FlappyConfig) {
	x0 := vp.Col(p.X)
	x1 := max(vp.Col(p.X+cfg.Obstacles.PipeWidth), x0+1)
	w := x1 - x0

	topRows := vp.Row(p.TopHeight)
	dst.DrawRect(core.NewRect(x0, 0, w, topRows), PipeChar, core.ColorPipe)
	if topRows > 0 {
		dst.DrawHLine(x0, topRows-1, w, PipeCapTop, core.ColorPipeCap)
	}

	bottomStart := vp.Row(cfg.Field.Height - p.BottomHeight)
	dst.DrawRect(core.NewRect(x0, bottomStart, w, vp.Rows-bottomStart), PipeChar, core.ColorPipe)
	if bottomStart < vp.Rows {
		dst.DrawHLine(x0, bottomStart, w, PipeCapBottom, core.ColorPipeCap)
	}
}

// drawBird renders the bird's hitbox, at least one cell in each direction.
func drawBird(dst *core.Screen, vp Viewport, birdY float64, b config.BirdConfig) {
	x0 := vp.Col(b.X)
	y0 := vp.Row(birdY)
	w := max(vp.Col(b.X+b.Size)-x0, 1)
	h := max(vp.Row(birdY+b.Size)-y0, 1)

	dst.DrawRect(core.NewRect(x0, y0, w, h), BirdChar, core.ColorBird)
	dst.SetColored(x0+w-1, y0, BirdBeakChar, core.ColorBird)
}

// OverlayLayout returns the end-of-attempt box and the start button inside
// it for a screen of the given size.
func OverlayLayout(screenW, screenH int) (box, button core.Rect) {
	labelW := utf8.RuneCountInString(StartLabel)
	boxW := labelW + 6
	boxH := 7
	box = core.NewRect((screenW-boxW)/2, (screenH-boxH)/2, boxW, boxH)
	button = core.NewRect(box.X+(boxW-labelW)/2, box.Y+5, labelW, 1)
	return box, button
}

// drawOverlay draws the title/game-over box with the start button.
func drawOverlay(dst *core.Screen, snap Snapshot) {
	box, button := OverlayLayout(dst.Width(), dst.Height())

	title, subtitle := "FLAPPY BIRD", "SPACE to flap"
	if snap.Attempts > 0 {
		title, subtitle = "GAME OVER", fmt.Sprintf("Score: %d", snap.Score)
	}

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	drawCentered(dst, box, box.Y+1, title, core.ColorText)
	drawCentered(dst, box, box.Y+3, subtitle, core.ColorText)
	dst.DrawText(button.X, button.Y, StartLabel, core.ColorOverlay)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawText(x, y, text, c)
}
