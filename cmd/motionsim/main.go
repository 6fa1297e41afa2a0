package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/doomerang-movement/assets"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/shared/leveldata"
	"github.com/automoto/doomerang-movement/sim"
)

func main() {
	scenarioPath := flag.String("scenario", "jump_dash", "Scenario file, or the name of an embedded scenario")
	levelPath := flag.String("level", "", "TMX level file (default: the level the scenario names)")
	configPath := flag.String("config", "", "Movement tuning file (.yaml or .toml)")
	watch := flag.Bool("watch", false, "Reload the movement file when it changes")
	realtime := flag.Bool("realtime", false, "Step at the tick rate instead of as fast as possible")
	outPath := flag.String("out", "", "Write the tick trace as yaml (- for stdout)")
	flag.Parse()

	if *configPath != "" {
		m, err := cfg.LoadMovement(*configPath)
		if err != nil {
			log.Fatalf("Failed to load movement config: %v", err)
		}
		cfg.ApplyMovement(m)
	}

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	level, err := loadLevel(*levelPath, scenario.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	world, err := sim.NewWorld(level, scenario.Spawn)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	loop := sim.NewGameLoop(world, sim.ScenarioInput(scenario), sim.TickRate())

	if *watch {
		if *configPath == "" {
			log.Fatalf("-watch needs -config")
		}
		watcher, err := cfg.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *configPath, err)
		}
		defer watcher.Close()
		loop.WatchConfig(watcher)
	}

	log.Printf("Running scenario %q on level %q (%d ticks at %d/s)",
		scenario.Name, level.Name, scenario.Ticks, sim.TickRate())

	if *realtime {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Println("Stopping...")
			loop.Stop()
		}()
		loop.Run()
	} else {
		loop.RunFor(scenario.Ticks)
	}

	trace := loop.Trace()
	trace.Scenario = scenario.Name
	log.Printf("Done: %s", trace.Summary())

	if *outPath == "" {
		return
	}
	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create trace file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := trace.WriteYAML(out); err != nil {
		log.Fatalf("Failed to write trace: %v", err)
	}
}

func loadScenario(path string) (*sim.Scenario, error) {
	if _, err := os.Stat(path); err == nil {
		return sim.LoadScenario(path)
	}
	return sim.LoadScenarioFS(assets.FS, assets.ScenariosDir+"/"+path+".yaml")
}

func loadLevel(path, name string) (*leveldata.Level, error) {
	if path != "" {
		return leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	return leveldata.Load(assets.FS, assets.LevelsDir+"/"+name+".tmx")
}
