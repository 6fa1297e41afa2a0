package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/leveldata"
	"github.com/automoto/doomerang-movement/systems"
	"github.com/automoto/doomerang-movement/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlaygroundScene runs one level with a keyboard or gamepad driven
// character and the probe overlay.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	spawnIndex   int
	saved        *systems.SavedSettings
	watcher      *cfg.Watcher
	once         sync.Once
}

func NewPlaygroundScene(sc SceneChanger, level *leveldata.Level, spawnIndex int) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc, level: level, spawnIndex: spawnIndex}
}

// WithSavedSettings applies persisted toggles when the scene is built.
func (ps *PlaygroundScene) WithSavedSettings(saved *systems.SavedSettings) *PlaygroundScene {
	ps.saved = saved
	return ps
}

// WithWatcher applies movement file reloads between frames.
func (ps *PlaygroundScene) WithWatcher(w *cfg.Watcher) *PlaygroundScene {
	ps.watcher = w
	return ps
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	if ps.watcher != nil {
		ps.watcher.Apply()
	}
	ps.ecs.Update()

	if systems.GetOrCreateSettings(ps.ecs).JustPressed(cfg.ActionReset) {
		ps.sceneChanger.ChangeScene(
			NewPlaygroundScene(ps.sceneChanger, ps.level, ps.spawnIndex).
				WithSavedSettings(ps.currentSettings()).
				WithWatcher(ps.watcher),
		)
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlaygroundScene) currentSettings() *systems.SavedSettings {
	s := systems.GetOrCreateSettings(ps.ecs)
	return &systems.SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		LevelName:  ps.level.Name,
		SpawnIndex: ps.spawnIndex,
	}
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMotionIntent)
	ecs.AddSystem(systems.UpdateMotionPhysics)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.DebugLayer, systems.DrawDebug)

	ps.ecs = ecs

	settings := systems.GetOrCreateSettings(ecs)
	systems.ApplySavedSettings(ecs, ps.saved)
	settings.LevelName = ps.level.Name
	settings.SpawnIndex = ps.spawnIndex

	if _, err := factory.CreateLevel(ecs, ps.level, ps.spawnIndex); err != nil {
		log.Fatalf("Failed to build level %s: %v", ps.level.Name, err)
	}
}
