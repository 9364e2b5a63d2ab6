// Package gui provides an Ebiten window frontend for the flappy simulation.
// The logical screen is the play field itself, so field units are pixels.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/tick"
)

var (
	skyColor     = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor    = color.RGBA{R: 83, G: 173, B: 60, A: 255}
	pipeCapColor = color.RGBA{R: 58, G: 130, B: 40, A: 255}
	birdColor    = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	groundColor  = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	shadeColor   = color.RGBA{A: 128}
	buttonColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	groundStrip = 12 // Decorative ground height drawn inside the field, in pixels
	pipeCap     = 16 // Height of the darker lip at each pipe opening
)

// Options configures the window.
type Options struct {
	Config config.FlappyConfig
	Scale  float64     // Window pixels per field unit
	Logger *log.Logger // nil discards
}

// Game implements ebiten.Game on top of an engine.Runner. Both tick
// sources are Stepped and pumped with the frame duration in Update, which
// keeps every mutation on Ebiten's update goroutine.
type Game struct {
	runner *engine.Runner
	title  string
	pump   *tick.Pump
	cfg    config.FlappyConfig
	frame  time.Duration
}

// New creates the game with the simulation stopped behind the start overlay.
func New(opts Options) *Game {
	f := tick.NewSteppedFactory()
	sim := flappy.New(opts.Config, nil)
	runner := engine.NewRunner(sim, f.Build, opts.Logger)

	return &Game{
		runner: runner,
		title:  sim.Title(),
		pump:   tick.NewPump(f.Sources[engine.SourcePhysics], f.Sources[engine.SourcePipes]),
		cfg:    opts.Config,
		frame:  engine.FrameInterval(opts.Config),
	}
}

// startButton is the clickable area of the stopped overlay, in field units.
func (g *Game) startButton() core.RectF {
	w, h := 140.0, 36.0
	return core.NewRectF((g.cfg.Field.Width-w)/2, g.cfg.Field.Height/2+20, w, h)
}

// Update handles input and pumps the tick sources by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.runner.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.Jump()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.runner.Start()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case g.runner.Running():
			g.runner.Jump()
		case g.startButton().Contains(float64(x), float64(y)):
			g.runner.Start()
		}
	}

	g.pump.Advance(g.frame)
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.runner.Snapshot()
	f := g.cfg.Field
	pw := float32(g.cfg.Obstacles.PipeWidth)

	screen.Fill(skyColor)

	for _, p := range snap.Pipes {
		x := float32(p.X)
		top := float32(p.TopHeight)
		bottomY := float32(f.Height - p.BottomHeight)

		vector.DrawFilledRect(screen, x, 0, pw, top, pipeColor, false)
		vector.DrawFilledRect(screen, x-2, top-pipeCap, pw+4, pipeCap, pipeCapColor, false)
		vector.DrawFilledRect(screen, x, bottomY, pw, float32(p.BottomHeight), pipeColor, false)
		vector.DrawFilledRect(screen, x-2, bottomY, pw+4, pipeCap, pipeCapColor, false)
	}

	vector.DrawFilledRect(screen, 0, float32(f.Height-groundStrip), float32(f.Width), groundStrip, groundColor, false)

	b := g.cfg.Bird
	vector.DrawFilledRect(screen, float32(b.X), float32(snap.BirdY), float32(b.Size), float32(b.Size), birdColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Best: %d", snap.Score, g.runner.Best()), 8, 8)

	if !snap.Running {
		g.drawOverlay(screen, snap)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap flappy.Snapshot) {
	f := g.cfg.Field
	vector.DrawFilledRect(screen, 0, 0, float32(f.Width), float32(f.Height), shadeColor, false)

	title := g.title
	if snap.Attempts > 0 {
		title = fmt.Sprintf("Game Over - Score: %d", snap.Score)
	}
	// DebugPrint glyphs are 6x16
	ebitenutil.DebugPrintAt(screen, title, int(f.Width)/2-len(title)*3, int(f.Height)/2-30)
	hint := "Click or press SPACE to jump"
	ebitenutil.DebugPrintAt(screen, hint, int(f.Width)/2-len(hint)*3, int(f.Height)/2-10)

	btn := g.startButton()
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), buttonColor, false)
	label := "Start Game"
	ebitenutil.DebugPrintAt(screen, label, int(btn.X+btn.W/2)-len(label)*3, int(btn.Y+btn.H/2)-8)
}

// Layout returns the field size; Ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Field.Width), int(g.cfg.Field.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := New(opts)

	ebiten.SetWindowSize(int(opts.Config.Field.Width*opts.Scale), int(opts.Config.Field.Height*opts.Scale))
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(int(time.Second / g.frame))

	err := ebiten.RunGame(g)
	g.runner.Close()
	return err
}
