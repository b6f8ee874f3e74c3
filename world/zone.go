package world

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownZone is returned when a zone or pattern name does not resolve
var ErrUnknownZone = errors.New("unknown zone")

// Zone identifies one of the five thematic regions of the world
type Zone uint8

const (
	ZoneCenter Zone = iota
	ZoneNorth
	ZoneEast
	ZoneWest
	ZoneSouth

	// ZoneCount is the number of zones, usable as array length
	ZoneCount
)

var zoneNames = [ZoneCount]string{
	ZoneCenter: "center",
	ZoneNorth:  "north",
	ZoneEast:   "east",
	ZoneWest:   "west",
	ZoneSouth:  "south",
}

// Zones lists every zone in declaration order
var Zones = [ZoneCount]Zone{ZoneCenter, ZoneNorth, ZoneEast, ZoneWest, ZoneSouth}

func (z Zone) String() string {
	if z >= ZoneCount {
		return fmt.Sprintf("zone(%d)", uint8(z))
	}
	return zoneNames[z]
}

// Valid reports whether z is one of the five defined zones
func (z Zone) Valid() bool {
	return z < ZoneCount
}

// ParseZone resolves a zone name, case-insensitive
func ParseZone(s string) (Zone, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range zoneNames {
		if n == name {
			return Zone(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownZone, s)
}

func (z Zone) MarshalText() ([]byte, error) {
	if !z.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownZone, uint8(z))
	}
	return []byte(zoneNames[z]), nil
}

func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

func (z *Zone) UnmarshalYAML(node *yaml.Node) error {
	return z.UnmarshalText([]byte(node.Value))
}

// Pattern selects the decorative background drawn for a zone
type Pattern uint8

const (
	PatternDottedRects Pattern = iota
	PatternArcs
	PatternGrid
	PatternDots
	patternCount
)

var patternNames = [patternCount]string{
	PatternDottedRects: "rects",
	PatternArcs:        "arcs",
	PatternGrid:        "grid",
	PatternDots:        "dots",
}

func (p Pattern) String() string {
	if p >= patternCount {
		return fmt.Sprintf("pattern(%d)", uint8(p))
	}
	return patternNames[p]
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range patternNames {
		if n == name {
			*p = Pattern(i)
			return nil
		}
	}
	return fmt.Errorf("unknown pattern %q", string(text))
}

func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	return p.UnmarshalText([]byte(node.Value))
}

// Theme is the visual identity of a zone
type Theme struct {
	Hue     float64 `yaml:"hue" json:"hue"`
	Pattern Pattern `yaml:"pattern" json:"pattern"`
}

// ZoneDescriptor is the immutable metadata of a zone
type ZoneDescriptor struct {
	Zone  Zone   `yaml:"-" json:"zone"`
	Label string `yaml:"label" json:"label"`
	Theme Theme  `yaml:",inline" json:"theme"`
	Hint  string `yaml:"hint" json:"hint"`
}
