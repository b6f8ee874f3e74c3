package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c := Default()

	assert.Equal(t, Point{X: 1200, Y: 1200}, c.World.Hub)
	for _, z := range Zones {
		zd, ok := c.Zone(z)
		require.True(t, ok, "zone %s missing", z)
		assert.Equal(t, z, zd.Zone)
		assert.NotEmpty(t, zd.Label)
	}

	assert.Empty(t, c.Unreachable())
	assert.Len(t, c.Gates, 4)

	// Every item sits in its declared home zone
	for _, it := range c.Items {
		assert.Equal(t, it.Zone, Classify(it.Spawn(), c.World.Hub), "item %s", it.ID)
	}
	// Every gate anchor classifies into the zone it leads to
	for _, g := range c.Gates {
		assert.Equal(t, g.Zone, Classify(g.Pos(), c.World.Hub), "gate %s", g.Zone)
	}

	resume, ok := c.Item("resume")
	require.True(t, ok)
	assert.Equal(t, 'R', resume.Glyph)
	assert.Equal(t, ZoneNorth, resume.Zone)
	assert.Len(t, c.ItemsIn(ZoneWest), 2)
}

func TestLoadRejectsBadContent(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "No world",
			doc:     "zones: {}",
			wantErr: ErrNoContent,
		},
		{
			name:    "Unknown zone",
			doc:     "world: {width: 100, height: 100}\nzones:\n  attic: {label: Attic}",
			wantErr: ErrUnknownZone,
		},
		{
			name:    "Duplicate item",
			doc:     "world: {width: 100, height: 100}\nitems:\n  - {id: a, zone: center}\n  - {id: a, zone: north}",
			wantErr: ErrDuplicateItem,
		},
		{
			name:    "Item with unknown zone",
			doc:     "world: {width: 100, height: 100}\nitems:\n  - {id: a, zone: up}",
			wantErr: ErrUnknownZone,
		},
		{
			name:    "Tiny tile size",
			doc:     "world: {width: 100, height: 100, tile_size: 0.01}",
			wantErr: ErrBadTileSize,
		},
		{
			name:    "Negative tile size",
			doc:     "world: {width: 100, height: 100, tile_size: -40}",
			wantErr: ErrBadTileSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadTileSizeFloor(t *testing.T) {
	c, err := Load([]byte("world: {width: 100, height: 100, tile_size: 4}"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.World.TileSize)

	c, err = Load([]byte("world: {width: 100, height: 100}"))
	require.NoError(t, err, "omitted tile size selects the default spacing")
	assert.Zero(t, c.World.TileSize)
}

func TestLoadRejectsNonPositiveGateRadius(t *testing.T) {
	_, err := Load([]byte("world: {width: 100, height: 100}\ngates:\n  - {zone: east, x: 60, y: 60, radius: 0}"))
	require.Error(t, err)
}

func TestLoadRejectsUnreachableGate(t *testing.T) {
	_, err := Load([]byte("world: {width: 400, height: 400}\ngates:\n  - {zone: east, x: 390, y: 200, radius: 20}"))
	require.Error(t, err)
}

func TestLoadGlyphFallback(t *testing.T) {
	c, err := Load([]byte("world: {width: 100, height: 100}\nitems:\n  - {id: a, zone: center}\n  - {id: b, zone: center, glyph: \"★\"}"))
	require.NoError(t, err)

	a, _ := c.Item("a")
	b, _ := c.Item("b")
	assert.Equal(t, '?', a.Glyph)
	assert.Equal(t, '★', b.Glyph)

	_, ok := c.Zone(ZoneNorth)
	assert.False(t, ok, "undeclared zone must report missing")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, defaultContent, 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Items, len(Default().Items))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone(" North ")
	require.NoError(t, err)
	assert.Equal(t, ZoneNorth, z)

	_, err = ParseZone("northeast")
	assert.ErrorIs(t, err, ErrUnknownZone)

	text, err := ZoneSouth.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "south", string(text))
	assert.Equal(t, "zone(9)", Zone(9).String())
}
