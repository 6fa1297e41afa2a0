package sim

import (
	"log"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/doomerang-movement/config"
)

// InputSource yields the input for a tick. Returning false ends the run.
type InputSource func(tick int) (Input, bool)

// GameLoop steps a World in real time at the configured tick rate.
type GameLoop struct {
	world    *World
	input    InputSource
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	watcher  *cfg.Watcher
	trace    *Trace
}

func NewGameLoop(world *World, input InputSource, tickRate int) *GameLoop {
	return &GameLoop{
		world:    world,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		trace:    &Trace{},
	}
}

// WatchConfig applies movement reloads from w between ticks.
func (g *GameLoop) WatchConfig(w *cfg.Watcher) {
	g.watcher = w
}

// Trace is every record stepped so far.
func (g *GameLoop) Trace() *Trace { return g.trace }

func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				g.running.Store(false)
				log.Printf("Game loop finished after %d ticks", g.world.Tick())
				return
			}
		}
	}
}

// RunFor steps n ticks as fast as possible. Config reloads are still
// applied between ticks.
func (g *GameLoop) RunFor(n int) {
	for i := 0; i < n; i++ {
		if !g.tick() {
			return
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// Running is safe to call from any goroutine.
func (g *GameLoop) Running() bool { return g.running.Load() }

func (g *GameLoop) tick() bool {
	g.drainWatcher()

	in, ok := g.input(g.world.Tick())
	if !ok {
		return false
	}
	g.trace.Add(g.world.Step(in))
	return true
}

func (g *GameLoop) drainWatcher() {
	if g.watcher != nil {
		g.watcher.Apply()
	}
}

// ScenarioInput feeds s to a loop and stops after its last tick.
func ScenarioInput(s *Scenario) InputSource {
	return func(tick int) (Input, bool) {
		if tick >= s.Ticks {
			return Input{}, false
		}
		return s.InputAt(tick), true
	}
}
