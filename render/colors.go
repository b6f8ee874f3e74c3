package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed palette
var (
	RgbVoid        = color.NRGBA{12, 12, 18, 255}    // Outside the world
	RgbText        = color.NRGBA{235, 235, 240, 255} // Overlay text
	RgbTextDim     = color.NRGBA{160, 160, 175, 255} // Secondary overlay text
	RgbPanelBg     = color.NRGBA{20, 22, 30, 220}    // Panel and popup backdrop
	RgbSelection   = color.NRGBA{255, 255, 255, 200} // Item selection ring
	RgbHubRing     = color.NRGBA{255, 230, 150, 180} // Hub boundary
	RgbGateLabel   = color.NRGBA{255, 255, 255, 255} // Gate letter
	RgbAvatarSkin  = color.NRGBA{240, 200, 160, 255}
	RgbAvatarHair  = color.NRGBA{70, 45, 30, 255}
	RgbAvatarShirt = color.NRGBA{60, 110, 200, 255}
	RgbAvatarShoes = color.NRGBA{40, 40, 40, 255}
	RgbFacing      = color.NRGBA{255, 80, 80, 255} // Facing indicator
)

// HSL converts hue in degrees and saturation, lightness in [0,1]
func HSL(h, s, l float64, a uint8) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ThemeBackground is the fill color for a zone hue
func ThemeBackground(hue float64) color.NRGBA {
	return HSL(hue, 0.35, 0.16, 255)
}

// ThemePattern is the decorative stroke color for a zone hue
func ThemePattern(hue float64) color.NRGBA {
	return HSL(hue, 0.45, 0.28, 255)
}

// ThemeAccent is a saturated color for gates and items of a zone hue
func ThemeAccent(hue float64) color.NRGBA {
	return HSL(hue, 0.75, 0.58, 255)
}

// WithAlpha scales the alpha channel by f in [0,1]
func WithAlpha(c color.NRGBA, f float64) color.NRGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.A = uint8(float64(c.A)*f + 0.5)
	return c
}

// Blend composites src over dst using src alpha, in linear RGB
// The result is opaque.
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return color.NRGBA{dst.R, dst.G, dst.B, 255}
	}
	d := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	s := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := d.BlendLinearRgb(s, float64(src.A)/255).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
