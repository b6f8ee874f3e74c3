package constants

import "time"

// Terminal Backend Constants
const (
	// CellWidth and CellHeight are the logical units covered by one terminal cell
	CellWidth  = 8.0
	CellHeight = 16.0

	// KeyHoldWindow is how long a repeated terminal key counts as held without another repeat
	KeyHoldWindow = 150 * time.Millisecond

	// KeyRepeatDelay holds a fresh key press until auto-repeat starts
	// Common terminal repeat delays run 250 to 600 ms.
	KeyRepeatDelay = 500 * time.Millisecond
)

// Window Backend Constants
const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "tilefolio"
)

// Presentation Constants
const (
	// AnnouncementHistory is the number of announcements retained for display
	AnnouncementHistory = 8

	// AnnouncementTimeout is how long the latest announcement stays on the status line
	AnnouncementTimeout = 4 * time.Second

	// PanelWidth is the logical width of the zone panel and item popup
	PanelWidth = 320.0

	// TextLineHeight is the logical height of one overlay text line
	TextLineHeight = 16.0
)
