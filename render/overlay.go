package render

import (
	"strings"

	"github.com/lixenwraith/tilefolio/constants"
)

const (
	overlayPad   = 8.0
	popupWidth   = 400.0
	popupMaxRows = 12
)

// OverlayLayer draws the presentation chrome over the scene: zone hint,
// panel summary, item popup and status line
type OverlayLayer struct {
	Visible bool
}

func (o *OverlayLayer) IsVisible() bool {
	return o.Visible
}

func (o *OverlayLayer) Render(ctx Context, c *Canvas) {
	o.drawHint(ctx, c)
	o.drawPanel(ctx, c)
	o.drawPopup(ctx, c)
	o.drawStatus(ctx, c)
}

func (o *OverlayLayer) drawHint(ctx Context, c *Canvas) {
	if ctx.Content == nil {
		return
	}
	zd, ok := ctx.Content.Zone(ctx.Zone)
	if !ok {
		return
	}
	line := zd.Label
	if zd.Hint != "" {
		line += ": " + zd.Hint
	}
	c.FillRect(0, 0, ctx.Width, constants.TextLineHeight, RgbPanelBg)
	c.Text(overlayPad, 0, clip(line, charsFor(ctx.Width-2*overlayPad)), RgbText)
}

func (o *OverlayLayer) drawPanel(ctx Context, c *Canvas) {
	if ctx.Panel == nil {
		return
	}
	w := constants.PanelWidth
	if w > ctx.Width/2 {
		w = ctx.Width / 2
	}
	maxChars := charsFor(w - 2*overlayPad)
	if maxChars < 4 {
		return
	}

	lines := ctx.Panel.Lines()
	// Leave room for the hint and status lines
	maxRows := int((ctx.Height-2*constants.TextLineHeight)/constants.TextLineHeight) - 2
	if maxRows < 1 {
		return
	}
	if len(lines) > maxRows {
		lines = lines[:maxRows]
	}

	x := ctx.Width - w
	y := constants.TextLineHeight * 2
	h := float64(len(lines)+1) * constants.TextLineHeight
	c.FillRect(x, y, w, h+overlayPad, RgbPanelBg)
	c.Text(x+overlayPad, y, clip(ctx.Panel.Title(), maxChars), RgbText)
	for i, l := range lines {
		c.Text(x+overlayPad, y+float64(i+1)*constants.TextLineHeight, clip(l, maxChars), RgbTextDim)
	}
}

func (o *OverlayLayer) drawPopup(ctx Context, c *Canvas) {
	if !ctx.PopupOpen {
		return
	}
	w := popupWidth
	if w > ctx.Width-2*overlayPad {
		w = ctx.Width - 2*overlayPad
	}
	maxChars := charsFor(w - 2*overlayPad)
	if maxChars < 4 {
		return
	}

	rows := []string{ctx.Popup.Name}
	rows = append(rows, wrap(ctx.Popup.Blurb, maxChars)...)
	if ctx.Popup.Link != "" {
		rows = append(rows, clip(ctx.Popup.Link, maxChars))
	}
	if len(rows) > popupMaxRows {
		rows = rows[:popupMaxRows]
	}
	rows = append(rows, "[Esc] close")

	h := float64(len(rows))*constants.TextLineHeight + overlayPad
	x := (ctx.Width - w) / 2
	y := (ctx.Height - h) / 2
	c.FillRect(x, y, w, h, RgbPanelBg)
	c.StrokeRect(x, y, w, h, 1, RgbSelection)
	for i, r := range rows {
		col := RgbTextDim
		if i == 0 {
			col = RgbText
		}
		c.Text(x+overlayPad, y+overlayPad/2+float64(i)*constants.TextLineHeight, clip(r, maxChars), col)
	}
}

func (o *OverlayLayer) drawStatus(ctx Context, c *Canvas) {
	var line string
	if ctx.HasAnnouncement && ctx.Now.Sub(ctx.Announcement.At) < constants.AnnouncementTimeout {
		line = ctx.Announcement.Text
	}
	if ctx.Paused {
		line = strings.TrimSpace("[paused] " + line)
	}
	if line == "" {
		return
	}
	y := ctx.Height - constants.TextLineHeight
	c.FillRect(0, y, ctx.Width, constants.TextLineHeight, RgbPanelBg)
	c.Text(overlayPad, y, clip(line, charsFor(ctx.Width-2*overlayPad)), RgbText)
}

func charsFor(w float64) int {
	if w <= 0 {
		return 0
	}
	return int(w / constants.CellWidth)
}

// clip truncates s to n runes
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// wrap splits s into lines of at most n runes on word boundaries
func wrap(s string, n int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		wr := []rune(word)
		switch {
		case len(cur) == 0:
			cur = wr
		case len(cur)+1+len(wr) <= n:
			cur = append(append(cur, ' '), wr...)
		default:
			lines = append(lines, string(cur))
			cur = wr
		}
		for len(cur) > n {
			lines = append(lines, string(cur[:n]))
			cur = cur[n:]
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
