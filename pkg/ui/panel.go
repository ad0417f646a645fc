package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel stacks widgets vertically inside a translucent background box.
type Panel struct {
	X, Y   float64
	Width  float64
	Title  string
	nextY  float64
	height float64

	sliders    []*Slider
	checkboxes []*Checkbox
}

// NewPanel creates an empty panel anchored at the given position.
func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:     x,
		Y:     y,
		Width: width,
		Title: title,
		nextY: y + 24,
	}
}

// AddSlider appends a labeled slider and returns it so the caller can read
// Value every frame.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, p.nextY+16, p.Width-20, label, min, max, value)
	p.sliders = append(p.sliders, s)
	p.nextY += 36
	p.height = p.nextY - p.Y + 10
	return s
}

// AddCheckbox appends a labeled checkbox and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.nextY+4, label, value)
	p.checkboxes = append(p.checkboxes, c)
	p.nextY += 26
	p.height = p.nextY - p.Y + 10
	return c
}

// Update forwards input handling to every widget.
func (p *Panel) Update() {
	for _, s := range p.sliders {
		s.Update()
	}
	for _, c := range p.checkboxes {
		c.Update()
	}
}

// Draw renders the background, title, and every widget with its label.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.height),
		color.RGBA{R: 35, G: 35, B: 42, A: 215}, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.height),
		1, color.RGBA{R: 95, G: 95, B: 105, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for _, s := range p.sliders {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s: %.2f", s.Label, s.Value), int(s.X), int(s.Y-16))
		s.Draw(screen)
	}
	for _, c := range p.checkboxes {
		ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+6), int(c.Y))
		c.Draw(screen)
	}
}
