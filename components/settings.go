package components

import (
	"github.com/automoto/doomerang-movement/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the playground's global state: raw action buttons for
// edge detection plus the persisted toggles.
type SettingsData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	Debug      bool
	Fullscreen bool
	LevelName  string
	SpawnIndex int
}

// JustPressed reports a released-to-held transition this frame.
func (s *SettingsData) JustPressed(id config.ActionID) bool {
	return s.Current[id] && !s.Previous[id]
}

var Settings = donburi.NewComponentType[SettingsData]()
