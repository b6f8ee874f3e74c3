// Package window renders the game in an Ebitengine window
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface draws logical units onto an ebiten image scaled by the device
// scale factor
type Surface struct {
	dst   *ebiten.Image
	scale float64
	w, h  float64
	face  text.Face
}

// NewSurface creates a surface using the built-in bitmap font
func NewSurface() *Surface {
	return &Surface{
		scale: 1,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Begin targets dst for one frame
func (s *Surface) Begin(dst *ebiten.Image, logicalW, logicalH, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.w, s.h = logicalW, logicalH
	s.scale = scale
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) px(v float64) float32 {
	return float32(v * s.scale)
}

func (s *Surface) Clear(c color.NRGBA) {
	if s.dst == nil {
		return
	}
	s.dst.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, s.px(x), s.px(y), s.px(w), s.px(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, s.px(cx), s.px(cy), s.px(r), c, true)
}

func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, s.px(x1), s.px(y1), s.px(x2), s.px(y2), s.px(width), c, true)
}

func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	if s.dst == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(x*s.scale, y*s.scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}
