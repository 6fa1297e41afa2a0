package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/doomerang-movement/components"
	cfg "github.com/automoto/doomerang-movement/config"
	"github.com/automoto/doomerang-movement/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the character body and every probe of the last fixed
// tick, and prints the controller state in the corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	space, ok := spaceOf(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, cfg.Debug.Body, false)

		debug := components.MotionDebug.Get(e)
		for _, box := range debug.Boxes {
			c := cfg.Debug.Miss
			if box.Hit {
				c = cfg.Debug.Hit
			}
			x, y, w, h := space.ToSpace(box.Area)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
		}

		ebitenutil.DebugPrint(screen, debugText(e, debug))
	})
}

func debugText(e *donburi.Entry, debug *components.MotionDebugData) string {
	motion := components.Motion.Get(e)
	v := components.Physics.Get(e).Velocity

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f\n", ebiten.ActualTPS())
	fmt.Fprintf(&b, "vel (%.2f, %.2f)\n", v.X, v.Y)
	fmt.Fprintf(&b, "driver %s  writes %d\n", debug.Driver, debug.VerticalWrites)
	fmt.Fprintf(&b, "jump %s  wall %s  dash %s\n", motion.Jump.Phase, motion.Wall.Phase, motion.Dash.Phase)
	fmt.Fprintf(&b, "jumps %d  dashes %d  grounded %t\n", motion.JumpsUsed, motion.DashesUsed, motion.Grounded)
	fmt.Fprintf(&b, "anim %s", components.Animation.Get(e).Current)
	return b.String()
}
