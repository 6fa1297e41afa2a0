package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the playground settings stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	Fullscreen bool   `json:"fullscreen"`
	LevelName  string `json:"levelName"`
	SpawnIndex int    `json:"spawnIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang_movement",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// GetOrCreateSettings returns the singleton Settings component.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowProbes,
		})
		if cfg.Debug.ShowProbes {
			showProbes(true)
		}
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted toggles into the settings component.
func ApplySavedSettings(ecs *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(ecs)
	settings.Debug = saved.Debug
	settings.Fullscreen = saved.Fullscreen
	settings.LevelName = saved.LevelName
	settings.SpawnIndex = saved.SpawnIndex
	showProbes(saved.Debug)
	ebiten.SetFullscreen(saved.Fullscreen)
}

// UpdateSettings handles the debug toggle and persists changes.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if !settings.JustPressed(cfg.ActionToggleDebug) {
		return
	}
	settings.Debug = !settings.Debug
	showProbes(settings.Debug)
	_ = SaveSettings(savedFrom(settings))
}

// showProbes switches every probe recording flag. A later config reload
// replaces them with the file's values.
func showProbes(on bool) {
	d := &cfg.Movement.Debug
	d.ShowGroundBox = on
	d.ShowHeadBox = on
	d.ShowWallBox = on
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		LevelName:  s.LevelName,
		SpawnIndex: s.SpawnIndex,
	}
}
