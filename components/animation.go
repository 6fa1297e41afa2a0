package components

import (
	"github.com/automoto/doomerang-movement/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the behavior sink for a character. Requests for the
// behavior already playing are ignored so a held state does not restart
// its clip every tick.
type AnimationData struct {
	Current  config.Behavior
	Previous config.Behavior
	Frame    int
	Ticks    int
	Changes  int
}

// Play switches to b unless it is already playing.
func (a *AnimationData) Play(b config.Behavior) {
	if a.Current == b {
		return
	}
	a.Previous = a.Current
	a.Current = b
	a.Ticks = 0
	a.Changes++
	if def, ok := config.CharacterAnimations[b]; ok {
		a.Frame = def.First
	}
}

// Advance steps the frame counter of the current clip.
func (a *AnimationData) Advance() {
	def, ok := config.CharacterAnimations[a.Current]
	if !ok || def.Speed <= 0 {
		return
	}
	a.Ticks++
	if float32(a.Ticks) < def.Speed {
		return
	}
	a.Ticks = 0
	a.Frame += def.Step
	if a.Frame > def.Last {
		a.Frame = def.First
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
