package systems

import (
	"testing"

	"github.com/automoto/coyote/components"
	cfg "github.com/automoto/coyote/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveScreen_LastRequestWins(t *testing.T) {
	e, _ := newTestECS()
	changer := &fakeChanger{}
	resolve := NewResolveScreen(changer)

	RequestScreen(e.World, cfg.ScreenLoading)
	RequestScreen(e.World, cfg.ScreenNone)
	RequestScreen(e.World, cfg.ScreenTitle)
	resolve(e)

	assert.Equal(t, []cfg.ScreenID{cfg.ScreenTitle}, changer.screens)

	entry, _ := components.ScreenRequests.First(e.World)
	assert.Empty(t, components.ScreenRequests.Get(entry).Pending)

	resolve(e)
	assert.Len(t, changer.screens, 1, "an empty queue changes nothing")
}

func TestResolveScreen_NoQueue(t *testing.T) {
	e, _ := newTestECS()
	changer := &fakeChanger{}

	NewResolveScreen(changer)(e)

	assert.Empty(t, changer.screens)
}
