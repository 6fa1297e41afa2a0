package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-movement/assets"
	"github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/scenes"
	"github.com/automoto/doomerang-movement/shared/leveldata"
	"github.com/automoto/doomerang-movement/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level *leveldata.Level, spawnIndex int, saved *systems.SavedSettings, watcher *config.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlaygroundScene(g, level, spawnIndex).
		WithSavedSettings(saved).
		WithWatcher(watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelFlag := flag.String("level", "", "Level name from the embedded set, or a path to a .tmx file")
	spawnFlag := flag.Int("spawn", -1, "Spawn point index (default: last used)")
	configPath := flag.String("config", "", "Movement tuning file (.yaml or .toml)")
	watch := flag.Bool("watch", false, "Reload the movement file when it changes")
	debug := flag.Bool("debug", false, "Start with the probe overlay on")
	flag.Parse()

	config.Debug.ShowProbes = *debug

	if *configPath != "" {
		m, err := config.LoadMovement(*configPath)
		if err != nil {
			log.Fatalf("Failed to load movement config: %v", err)
		}
		config.ApplyMovement(m)
	}

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatalf("-watch needs -config")
		}
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configPath, err)
		}
		defer w.Close()
		watcher = w
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	if saved != nil && *debug {
		saved.Debug = true
	}

	level, spawnIndex, err := pickLevel(*levelFlag, *spawnFlag, saved)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Doomerang Movement - " + level.Name)
	ebiten.SetTPS(config.Simulation.TickRate)

	if err := ebiten.RunGame(NewGame(level, spawnIndex, saved, watcher)); err != nil {
		log.Fatal(err)
	}
}

// pickLevel resolves the level from the flag, then the saved settings, then
// the first embedded level.
func pickLevel(name string, spawn int, saved *systems.SavedSettings) (*leveldata.Level, int, error) {
	if spawn < 0 {
		spawn = 0
		if saved != nil {
			spawn = saved.SpawnIndex
		}
	}

	if filepath.Ext(name) == ".tmx" {
		level, err := leveldata.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		return level, spawn, err
	}

	levels, names := assets.MustLoadLevels()
	if name == "" && saved != nil {
		name = saved.LevelName
	}
	if level, ok := levels[name]; ok {
		return level, spawn, nil
	}
	if name != "" {
		log.Printf("Warning: unknown level %q, using %q", name, names[0])
	}
	return levels[names[0]], spawn, nil
}
