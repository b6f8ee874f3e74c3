// Package rendertest provides a Surface that records draw calls
package rendertest

import (
	"fmt"
	"image/color"
)

// Op names a recorded draw call
type Op string

const (
	OpClear      Op = "clear"
	OpFillRect   Op = "rect"
	OpFillCircle Op = "circle"
	OpLine       Op = "line"
	OpText       Op = "text"
)

// Call is one recorded draw call in surface coordinates
type Call struct {
	Op    Op
	X, Y  float64
	X2    float64 // line end x, rect width
	Y2    float64 // line end y, rect height
	R     float64 // circle radius, line width
	Text  string
	Color color.NRGBA
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f %.1f,%.1f r=%.1f %q #%02x%02x%02x%02x)",
		c.Op, c.X, c.Y, c.X2, c.Y2, c.R, c.Text, c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

// Recorder is an in-memory Surface
type Recorder struct {
	W, H  float64
	Calls []Call
}

// NewRecorder creates a recorder with the given logical size
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, R: width, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, Text: s, Color: c})
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Filter returns calls of the given op
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns all drawn strings in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// FindText returns the first text call whose string is s
func (r *Recorder) FindText(s string) (Call, bool) {
	for _, c := range r.Calls {
		if c.Op == OpText && c.Text == s {
			return c, true
		}
	}
	return Call{}, false
}
