// Package render is the thin ebiten wrapper around the simulation core:
// it steps the world once per tick, draws every boid as an oriented
// sprite, and exposes the tuning panel. No flocking logic lives here.
package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/ui"
)

var backgroundColor = color.RGBA{R: 0, G: 0, B: 64, A: 255}

// Game implements ebiten.Game on top of a flock.World.
type Game struct {
	world *flock.World
	cfg   flock.Config

	panel            *ui.Panel
	sliderViewRadius *ui.Slider
	sliderMaxSpeed   *ui.Slider
	sliderAlign      *ui.Slider
	sliderCohesion   *ui.Slider
	sliderSeparation *ui.Slider
	sliderAlpha      *ui.Slider
	sliderJitter     *ui.Slider
	checkShowRadius  *ui.Checkbox

	// Rolling exponential averages of frame phase timings, in ms.
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64
	drawAvg            float64
}

// NewGame wires a world to the window, building the tuning panel from the
// world's current parameters.
func NewGame(world *flock.World) *Game {
	cfg := world.Config()

	panel := ui.NewPanel(10, 10, 230, "Flocking parameters")
	g := &Game{
		world:            world,
		cfg:              cfg,
		panel:            panel,
		sliderViewRadius: panel.AddSlider("View radius", 10, 300, cfg.ViewRadius),
		sliderMaxSpeed:   panel.AddSlider("Max speed", 1, 20, cfg.MaxSpeed),
		sliderAlign:      panel.AddSlider("Alignment", 0, 2, cfg.AlignWeight),
		sliderCohesion:   panel.AddSlider("Cohesion", 0, 2, cfg.CohesionWeight),
		sliderSeparation: panel.AddSlider("Separation", 0, 2, cfg.SeparationWeight),
		sliderAlpha:      panel.AddSlider("Smoothing", 0, 1, cfg.SmoothingAlpha),
		sliderJitter:     panel.AddSlider("Jitter", 0, 0.5, cfg.JitterBound),
		checkShowRadius:  panel.AddCheckbox("Show view radius", false),
	}
	return g
}

// Update advances the simulation by one frame: push the slider values into
// the world, then step it.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	g.world.Tune(flock.Tuning{
		ViewRadius:       g.sliderViewRadius.Value,
		MaxSpeed:         g.sliderMaxSpeed.Value,
		AlignWeight:      g.sliderAlign.Value,
		CohesionWeight:   g.sliderCohesion.Value,
		SeparationWeight: g.sliderSeparation.Value,
		SmoothingAlpha:   g.sliderAlpha.Value,
		JitterBound:      g.sliderJitter.Value,
	})
	g.world.Step()
	return nil
}

// Draw renders every boid at its committed position, rotated to its
// heading, plus the panel and a performance overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	showRadius := g.checkShowRadius.Value
	viewRadius := float32(g.sliderViewRadius.Value)

	for _, b := range g.world.Boids() {
		cx := b.Pos.X + g.cfg.SpriteWidth/2
		cy := b.Pos.Y + g.cfg.SpriteHeight/2

		if showRadius {
			vector.StrokeCircle(screen, float32(cx), float32(cy), viewRadius,
				1, color.RGBA{R: 60, G: 60, B: 140, A: 120}, true)
		}

		op := &ebiten.DrawImageOptions{}
		w, h := boidSprite.Bounds().Dx(), boidSprite.Bounds().Dy()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		// The sprite faces up; Heading is degrees clockwise from up, which
		// is exactly ebiten's positive rotation in screen coordinates.
		op.GeoM.Rotate(b.Heading() * math.Pi / 180)
		op.GeoM.Translate(cx, cy)
		screen.DrawImage(boidSprite, op)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrame: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.Frame(), g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-110, 10)
}

// Layout fixes the logical screen size to the world dimensions.
func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
