package world

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilefolio/constants"
)

var (
	// ErrDuplicateItem is returned when two items share an id
	ErrDuplicateItem = errors.New("duplicate item id")
	// ErrNoContent is returned when a content document defines no world
	ErrNoContent = errors.New("content defines no world")
	// ErrBadTileSize rejects a tile size that is negative or below the floor
	ErrBadTileSize = errors.New("tile size too small")
)

//go:embed content.yaml
var defaultContent []byte

// Gate is a circular click target that teleports the avatar into a zone
type Gate struct {
	Zone   Zone    `yaml:"zone" json:"zone"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Radius float64 `yaml:"radius" json:"radius"`
}

// Pos returns the gate anchor
func (g Gate) Pos() Point { return Point{X: g.X, Y: g.Y} }

// Item is a collectible world object revealing portfolio content
type Item struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Glyph rune    `yaml:"-" json:"glyph"`
	Zone  Zone    `yaml:"zone" json:"zone"`
	Blurb string  `yaml:"blurb" json:"blurb"`
	Link  string  `yaml:"link,omitempty" json:"link,omitempty"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
}

// Spawn returns the item's world coordinate
func (it Item) Spawn() Point { return Point{X: it.X, Y: it.Y} }

// Content is the complete immutable world definition
type Content struct {
	World  Config
	Zones  [ZoneCount]ZoneDescriptor
	Gates  []Gate
	Items  []Item
	Panels PanelData

	itemIndex map[string]int
}

// Zone returns the descriptor for z
func (c *Content) Zone(z Zone) (ZoneDescriptor, bool) {
	if !z.Valid() || c.Zones[z].Label == "" {
		return ZoneDescriptor{}, false
	}
	return c.Zones[z], true
}

// Item looks up an item by id
func (c *Content) Item(id string) (Item, bool) {
	i, ok := c.itemIndex[id]
	if !ok {
		return Item{}, false
	}
	return c.Items[i], true
}

// ItemsIn returns the items whose home zone is z
func (c *Content) ItemsIn(z Zone) []Item {
	var out []Item
	for _, it := range c.Items {
		if it.Zone == z {
			out = append(out, it)
		}
	}
	return out
}

// contentDoc is the on-disk shape of a content document
type contentDoc struct {
	World  *Config                   `yaml:"world"`
	Zones  map[string]ZoneDescriptor `yaml:"zones"`
	Gates  []Gate                    `yaml:"gates"`
	Items  []itemDoc                 `yaml:"items"`
	Panels PanelData                 `yaml:"panels"`
}

type itemDoc struct {
	Item  `yaml:",inline"`
	Glyph string `yaml:"glyph"`
}

// Default returns the embedded content
// Panics if the embedded document is invalid, which is a build defect
func Default() *Content {
	c, err := Load(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return c
}

// LoadFile reads a content document from disk
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Load parses and validates a YAML content document
func Load(data []byte) (*Content, error) {
	var doc contentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if doc.World == nil {
		return nil, ErrNoContent
	}
	if doc.World.Width <= 0 || doc.World.Height <= 0 {
		return nil, fmt.Errorf("world size %.0fx%.0f must be positive", doc.World.Width, doc.World.Height)
	}
	if ts := doc.World.TileSize; ts < 0 || (ts > 0 && ts < constants.MinTileSize) {
		return nil, fmt.Errorf("%w: %g, minimum %g", ErrBadTileSize, ts, constants.MinTileSize)
	}

	c := &Content{
		World:     *doc.World,
		Panels:    doc.Panels,
		itemIndex: make(map[string]int, len(doc.Items)),
	}

	for name, zd := range doc.Zones {
		z, err := ParseZone(name)
		if err != nil {
			return nil, fmt.Errorf("zones: %w", err)
		}
		zd.Zone = z
		c.Zones[z] = zd
	}

	for i, g := range doc.Gates {
		if g.Radius <= 0 {
			return nil, fmt.Errorf("gate %d (%s): radius must be positive", i, g.Zone)
		}
		if !c.World.Reachable(g.Pos()) {
			return nil, fmt.Errorf("gate %d (%s): anchor (%.0f,%.0f) outside walkable area", i, g.Zone, g.X, g.Y)
		}
		c.Gates = append(c.Gates, g)
	}

	for _, d := range doc.Items {
		it := d.Item
		if it.ID == "" {
			return nil, fmt.Errorf("item %q: missing id", it.Name)
		}
		if _, dup := c.itemIndex[it.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		if r, size := utf8.DecodeRuneInString(d.Glyph); size > 0 && r != utf8.RuneError {
			it.Glyph = r
		} else {
			it.Glyph = '?'
		}
		c.itemIndex[it.ID] = len(c.Items)
		c.Items = append(c.Items, it)
	}

	return c, nil
}

// Unreachable lists items whose spawn lies outside the avatar clamp area
func (c *Content) Unreachable() []Item {
	var out []Item
	for _, it := range c.Items {
		if !c.World.Reachable(it.Spawn()) {
			out = append(out, it)
		}
	}
	return out
}
