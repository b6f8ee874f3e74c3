// Package panel provides the zone overlay panels as a closed set of variants.
// Each variant carries only the data its zone needs; For switches over every
// zone and panics on an undefined one.
package panel

import (
	"fmt"

	"github.com/lixenwraith/tilefolio/world"
)

// Panel is the overlay shown for the active zone
type Panel interface {
	Zone() world.Zone
	Title() string
	// Lines returns the panel body, one entry per display line
	Lines() []string

	sealed()
}

// Guestbook is the center zone panel
type Guestbook struct {
	Entries []world.GuestEntry
}

// Archive is the north zone panel
type Archive struct {
	ResumeURL string
	Entries   []string
	// ResumeFound gates the resume link on collecting the resume item
	ResumeFound bool
}

// Snippets is the east zone panel
type Snippets struct {
	Snippets []world.Snippet
}

// SkillTree is the west zone panel
type SkillTree struct {
	Skills   []world.Skill
	Unlocked []bool
}

// Gallery is the south zone panel
type Gallery struct {
	Frames []world.Frame
}

func (Guestbook) Zone() world.Zone { return world.ZoneCenter }
func (Archive) Zone() world.Zone { return world.ZoneNorth }
func (Snippets) Zone() world.Zone { return world.ZoneEast }
func (SkillTree) Zone() world.Zone { return world.ZoneWest }
func (Gallery) Zone() world.Zone { return world.ZoneSouth }

func (Guestbook) sealed() {}
func (Archive) sealed() {}
func (Snippets) sealed() {}
func (SkillTree) sealed() {}
func (Gallery) sealed() {}

func (Guestbook) Title() string { return "Guestbook" }
func (Archive) Title() string { return "Archive" }
func (Snippets) Title() string { return "Code Snippets" }
func (SkillTree) Title() string { return "Skill Tree" }
func (Gallery) Title() string { return "Gallery" }

func (p Guestbook) Lines() []string {
	lines := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Name, e.Message))
	}
	return lines
}

func (p Archive) Lines() []string {
	lines := make([]string, 0, len(p.Entries)+1)
	lines = append(lines, p.Entries...)
	if p.ResumeFound && p.ResumeURL != "" {
		lines = append(lines, "Resume: "+p.ResumeURL)
	} else {
		lines = append(lines, "Resume: find the scroll to unlock")
	}
	return lines
}

func (p Snippets) Lines() []string {
	lines := make([]string, 0, len(p.Snippets)*2)
	for _, s := range p.Snippets {
		lines = append(lines, fmt.Sprintf("[%s] %s", s.Lang, s.Title), "  "+s.Code)
	}
	return lines
}

func (p SkillTree) Lines() []string {
	lines := make([]string, 0, len(p.Skills))
	for i, s := range p.Skills {
		if i < len(p.Unlocked) && p.Unlocked[i] {
			lines = append(lines, fmt.Sprintf("%-20s %s", s.Name, stars(s.Level)))
		} else {
			lines = append(lines, fmt.Sprintf("%-20s locked", s.Name))
		}
	}
	return lines
}

func (p Gallery) Lines() []string {
	lines := make([]string, 0, len(p.Frames))
	for _, f := range p.Frames {
		lines = append(lines, fmt.Sprintf("%s - %s", f.Title, f.Caption))
	}
	return lines
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	b := make([]byte, 5)
	for i := range b {
		if i < n {
			b[i] = '*'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

// For builds the panel of zone z from static panel data and collection state
func For(z world.Zone, data world.PanelData, collected func(id string) bool) Panel {
	if collected == nil {
		collected = func(string) bool { return false }
	}
	switch z {
	case world.ZoneCenter:
		return Guestbook{Entries: data.Guestbook}
	case world.ZoneNorth:
		return Archive{
			ResumeURL:   data.Archive.ResumeURL,
			Entries:     data.Archive.Entries,
			ResumeFound: collected("resume"),
		}
	case world.ZoneEast:
		return Snippets{Snippets: data.Snippets}
	case world.ZoneWest:
		unlocked := make([]bool, len(data.Skills))
		for i, s := range data.Skills {
			unlocked[i] = s.Unlock == "" || collected(s.Unlock)
		}
		return SkillTree{Skills: data.Skills, Unlocked: unlocked}
	case world.ZoneSouth:
		return Gallery{Frames: data.Gallery}
	default:
		panic(fmt.Sprintf("panel: no panel for %s", z))
	}
}
