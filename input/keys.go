package input

import "strings"

// Key is one of the four movement directions a key can map to
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

// Keys lists every movement key
var Keys = [keyCount]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

var keyNames = [keyCount]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
}

func (k Key) String() string {
	if k >= keyCount {
		return "none"
	}
	return keyNames[k]
}

// KeyForRune maps the WASD letters, either case, to movement keys
func KeyForRune(r rune) (Key, bool) {
	switch r {
	case 'w', 'W':
		return KeyUp, true
	case 's', 'S':
		return KeyDown, true
	case 'a', 'A':
		return KeyLeft, true
	case 'd', 'D':
		return KeyRight, true
	}
	return 0, false
}

// KeyForName maps browser-style key names ("ArrowUp", "w") to movement keys
func KeyForName(name string) (Key, bool) {
	switch strings.ToLower(name) {
	case "arrowup", "up":
		return KeyUp, true
	case "arrowdown", "down":
		return KeyDown, true
	case "arrowleft", "left":
		return KeyLeft, true
	case "arrowright", "right":
		return KeyRight, true
	}
	if len(name) == 1 {
		return KeyForRune(rune(name[0]))
	}
	return 0, false
}
