package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/tilefolio/input"
)

// Sampler reads device input once per Update
// Click positions are in layout (device) pixels.
type Sampler interface {
	Pressed(k input.Key) bool
	Clicks() [][2]float64
	Escape() bool
	Quit() bool
	Focused() bool
}

var keyBindings = [...][]ebiten.Key{
	input.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// ebitenSampler polls the running Ebitengine loop
type ebitenSampler struct {
	touches []ebiten.TouchID
}

func (ebitenSampler) Pressed(k input.Key) bool {
	if int(k) >= len(keyBindings) {
		return false
	}
	for _, ek := range keyBindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (s *ebitenSampler) Clicks() [][2]float64 {
	var out [][2]float64
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, [2]float64{float64(x), float64(y)})
	}
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		out = append(out, [2]float64{float64(x), float64(y)})
	}
	return out
}

func (ebitenSampler) Escape() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (ebitenSampler) Quit() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	return ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func (ebitenSampler) Focused() bool {
	return ebiten.IsFocused()
}
