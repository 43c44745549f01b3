package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gravitor/vmath"
)

// Base colors
var (
	RgbBackground   = rgb(26, 27, 38) // Tokyo Night background
	RgbPlanet       = rgb(224, 175, 104)
	RgbPlanetField  = rgb(70, 60, 45)
	RgbWellOpen     = rgb(125, 207, 255)
	RgbWellFading   = rgb(40, 52, 90)
	RgbAsteroidSlow = rgb(122, 162, 247)
	RgbAsteroidFast = rgb(255, 110, 80)
	RgbScore        = rgb(255, 255, 255)
	RgbStatus       = rgb(180, 180, 180)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Palette converts blended colors into tcell colors for the active color mode
type Palette struct {
	trueColor bool
	xterm     []tcell.Color
}

// NewPalette returns a palette; without truecolor every color is fitted to the xterm 256 set
func NewPalette(trueColor bool) *Palette {
	p := &Palette{trueColor: trueColor}
	if !trueColor {
		p.xterm = make([]tcell.Color, 0, 240)
		// Skip the 16 terminal-themed colors, their RGB values are not reliable
		for i := 16; i < 256; i++ {
			p.xterm = append(p.xterm, tcell.PaletteColor(i))
		}
	}
	return p
}

// Color maps a blended color to the screen
func (p *Palette) Color(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	tc := tcell.NewRGBColor(int32(r), int32(g), int32(b))
	if p.trueColor {
		return tc
	}
	return tcell.FindColor(tc, p.xterm)
}

// Style returns a style with the given foreground on the background
func (p *Palette) Style(fg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(p.Color(fg)).Background(p.Color(RgbBackground))
}

// Well fades from the open color toward the background as its lifetime runs out
func (p *Palette) Well(open bool, lifeFraction float64) tcell.Style {
	if open {
		return p.Style(RgbWellOpen).Bold(true)
	}
	t := vmath.Clamp(lifeFraction, 0, 1)
	return p.Style(RgbWellFading.BlendLab(RgbWellOpen, t))
}

// Asteroid heats from cool to hot as speed approaches maxSpeed
func (p *Palette) Asteroid(speed, maxSpeed float64) tcell.Style {
	t := 0.0
	if maxSpeed > 0 {
		t = vmath.Clamp(speed/maxSpeed, 0, 1)
	}
	return p.Style(RgbAsteroidSlow.BlendHcl(RgbAsteroidFast, t).Clamped())
}
