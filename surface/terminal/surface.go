// Package terminal renders the game onto a tcell screen
// Logical units map onto character cells, CellWidth by CellHeight units each.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilefolio/constants"
	"github.com/lixenwraith/tilefolio/render"
)

type cell struct {
	bg color.NRGBA
	fg color.NRGBA
	ch rune
}

// Surface is a cell back-buffer implementing render.Surface
// Shapes blend into cell backgrounds, lines and text set the cell glyph.
// Flush copies the buffer to the screen.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	cols, rows   int
	cells        []cell
}

// NewSurface creates a surface sized to the screen
// Non-positive cell sizes fall back to the defaults.
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = constants.CellWidth
	}
	if cellH <= 0 {
		cellH = constants.CellHeight
	}
	s := &Surface{screen: screen, cellW: cellW, cellH: cellH}
	s.Resize()
	return s
}

// Resize reallocates the buffer to the current screen size
func (s *Surface) Resize() {
	cols, rows := s.screen.Size()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	if cap(s.cells) >= cols*rows {
		s.cells = s.cells[:cols*rows]
	} else {
		s.cells = make([]cell, cols*rows)
	}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// CellAt maps a logical point to its cell
func (s *Surface) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// CellCenter returns the logical center of a cell
func (s *Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *Surface) Clear(c color.NRGBA) {
	c.A = 255
	for i := range s.cells {
		s.cells[i] = cell{bg: c, fg: c, ch: ' '}
	}
}

// paint blends c into a cell background; an opaque fill erases the glyph
func (s *Surface) paint(col, row int, c color.NRGBA) {
	p := s.at(col, row)
	if p == nil {
		return
	}
	p.bg = render.Blend(p.bg, c)
	if c.A == 255 {
		p.ch = ' '
	}
}

// mark sets a cell glyph blended over its background
func (s *Surface) mark(col, row int, ch rune, c color.NRGBA) {
	p := s.at(col, row)
	if p == nil {
		return
	}
	p.ch = ch
	p.fg = render.Blend(p.bg, c)
}

// FillRect paints cells whose centers lie inside the rectangle
// A rectangle smaller than a cell paints the cell containing its center.
func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	c0 := int(math.Ceil(x/s.cellW - 0.5))
	c1 := int(math.Ceil((x+w)/s.cellW-0.5)) - 1
	r0 := int(math.Ceil(y/s.cellH - 0.5))
	r1 := int(math.Ceil((y+h)/s.cellH-0.5)) - 1
	if c1 < c0 || r1 < r0 {
		col, row := s.CellAt(x+w/2, y+h/2)
		s.paint(col, row, c)
		return
	}
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			s.paint(col, row, c)
		}
	}
}

// FillCircle paints cells whose centers lie inside the circle
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	minCol, minRow := s.CellAt(cx-r, cy-r)
	maxCol, maxRow := s.CellAt(cx+r, cy+r)
	hit := false
	for row := max(minRow, 0); row <= min(maxRow, s.rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, s.cols-1); col++ {
			px, py := s.CellCenter(col, row)
			if math.Hypot(px-cx, py-cy) < r {
				s.paint(col, row, c)
				hit = true
			}
		}
	}
	if !hit {
		col, row := s.CellAt(cx, cy)
		s.paint(col, row, c)
	}
}

// Line marks each cell the segment passes through with a box-drawing glyph
func (s *Surface) Line(x1, y1, x2, y2, _ float64, c color.NRGBA) {
	dx, dy := x2-x1, y2-y1
	ch := lineRune(dx, dy)
	step := math.Min(s.cellW, s.cellH) / 2
	n := int(math.Ceil(math.Hypot(dx, dy) / step))
	lastCol, lastRow := math.MinInt, math.MinInt
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		col, row := s.CellAt(x1+dx*t, y1+dy*t)
		if col == lastCol && row == lastRow {
			continue
		}
		lastCol, lastRow = col, row
		s.mark(col, row, ch, c)
	}
}

func lineRune(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax*0.25:
		return '─'
	case ax <= ay*0.25:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Text writes s starting at the cell nearest to (x, y)
func (s *Surface) Text(x, y float64, str string, c color.NRGBA) {
	col := int(math.Floor(x/s.cellW + 0.5))
	row := int(math.Floor(y/s.cellH + 0.5))
	for _, r := range str {
		s.mark(col, row, r, c)
		col++
	}
}

// Flush copies the buffer to the screen and shows it
func (s *Surface) Flush() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			p := &s.cells[row*s.cols+col]
			style := tcell.StyleDefault.Background(tcellColor(p.bg)).Foreground(tcellColor(p.fg))
			ch := p.ch
			if ch == 0 {
				ch = ' '
			}
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
	s.screen.Show()
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
