package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// The boid sprite is a small arrow drawn facing up the screen, matching
// heading 0. Generated once at startup from an ASCII design, the way all
// sprites in this project are made.
var boidSprite *ebiten.Image

func init() {
	// Legend:
	// . = transparent
	// W = white hull
	// C = cyan tip
	// D = dim tail
	design := []string{
		"....CC....",
		"....CC....",
		"...WWWW...",
		"...WWWW...",
		"..WWWWWW..",
		"..WWWWWW..",
		".WWW..WWW.",
		".WWW..WWW.",
		"WWW....WWW",
		"WW......WW",
		"W..D..D..W",
		"...DDDD...",
		"...DDDD...",
		"....DD....",
		"....DD....",
	}

	palette := map[rune]color.RGBA{
		'W': {R: 255, G: 255, B: 255, A: 255},
		'C': {R: 120, G: 230, B: 255, A: 255},
		'D': {R: 150, G: 150, B: 170, A: 255},
	}

	boidSprite = generateSprite(design, palette)
}

// generateSprite converts an ASCII grid into an Ebiten image.
func generateSprite(design []string, palette map[rune]color.RGBA) *ebiten.Image {
	h := len(design)
	w := len(design[0])
	img := ebiten.NewImage(w, h)

	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}
