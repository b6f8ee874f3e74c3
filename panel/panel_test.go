package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilefolio/world"
)

func TestForCoversEveryZone(t *testing.T) {
	data := world.Default().Panels
	for _, z := range world.Zones {
		p := For(z, data, nil)
		require.NotNil(t, p, "zone %s", z)
		assert.Equal(t, z, p.Zone())
		assert.NotEmpty(t, p.Title())
	}
}

func TestForVariants(t *testing.T) {
	data := world.Default().Panels

	_, ok := For(world.ZoneCenter, data, nil).(Guestbook)
	assert.True(t, ok)
	_, ok = For(world.ZoneNorth, data, nil).(Archive)
	assert.True(t, ok)
	_, ok = For(world.ZoneEast, data, nil).(Snippets)
	assert.True(t, ok)
	_, ok = For(world.ZoneWest, data, nil).(SkillTree)
	assert.True(t, ok)
	_, ok = For(world.ZoneSouth, data, nil).(Gallery)
	assert.True(t, ok)
}

func TestForUnknownZonePanics(t *testing.T) {
	assert.Panics(t, func() { For(world.ZoneCount, world.PanelData{}, nil) })
}

func TestArchiveResumeGate(t *testing.T) {
	data := world.PanelData{Archive: world.ArchiveData{ResumeURL: "https://r.example"}}

	locked := For(world.ZoneNorth, data, nil).Lines()
	assert.Contains(t, locked[len(locked)-1], "find the scroll")

	found := For(world.ZoneNorth, data, func(id string) bool { return id == "resume" }).Lines()
	assert.Equal(t, "Resume: https://r.example", found[len(found)-1])
}

func TestSkillTreeUnlocks(t *testing.T) {
	data := world.PanelData{Skills: []world.Skill{
		{Name: "Go", Level: 5, Unlock: "seed-go"},
		{Name: "Always", Level: 2},
	}}

	p := For(world.ZoneWest, data, func(string) bool { return false }).(SkillTree)
	assert.Equal(t, []bool{false, true}, p.Unlocked)
	assert.Contains(t, p.Lines()[0], "locked")
	assert.Contains(t, p.Lines()[1], "**...")

	p = For(world.ZoneWest, data, func(id string) bool { return id == "seed-go" }).(SkillTree)
	assert.Contains(t, p.Lines()[0], "*****")
}
