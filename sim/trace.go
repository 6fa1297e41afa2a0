package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/automoto/doomerang-movement/components"
	"github.com/automoto/doomerang-movement/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// TickRecord is the observable result of one step.
type TickRecord struct {
	Tick      int                    `yaml:"tick"`
	Position  gamemath.Vec2          `yaml:"position"`
	Velocity  gamemath.Vec2          `yaml:"velocity"`
	Grounded  bool                   `yaml:"grounded"`
	Driver    string                 `yaml:"driver"`
	Writes    int                    `yaml:"writes"`
	Jumps     int                    `yaml:"jumps"`
	Dashes    int                    `yaml:"dashes"`
	Animation string                 `yaml:"animation"`
	Flags     components.MotionFlags `yaml:"flags,omitempty"`
}

func (w *World) record() TickRecord {
	motion := w.Motion()
	debug := components.MotionDebug.Get(w.player)
	return TickRecord{
		Tick:      w.tick,
		Position:  w.Position(),
		Velocity:  components.Physics.Get(w.player).Velocity,
		Grounded:  motion.Grounded,
		Driver:    debug.Driver,
		Writes:    debug.VerticalWrites,
		Jumps:     motion.JumpsUsed,
		Dashes:    motion.DashesUsed,
		Animation: components.Animation.Get(w.player).Current.String(),
		Flags:     motion.Flags(),
	}
}

// Trace is the record of a scenario run.
type Trace struct {
	Scenario string       `yaml:"scenario"`
	Records  []TickRecord `yaml:"records"`
}

func (t *Trace) Add(r TickRecord) {
	t.Records = append(t.Records, r)
}

// WriteYAML writes the full trace.
func (t *Trace) WriteYAML(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return enc.Close()
}

// Summary is a digest of a trace.
type Summary struct {
	Ticks      int
	Landings   int
	MaxHeight  float64
	MaxWrites  int
	FinalPos   gamemath.Vec2
	FinalState string
}

func (t *Trace) Summary() Summary {
	s := Summary{MaxHeight: math.Inf(-1)}
	wasGrounded := true
	for i, r := range t.Records {
		if r.Grounded && !wasGrounded && i > 0 {
			s.Landings++
		}
		wasGrounded = r.Grounded
		s.MaxHeight = math.Max(s.MaxHeight, r.Position.Y)
		if r.Writes > s.MaxWrites {
			s.MaxWrites = r.Writes
		}
	}
	s.Ticks = len(t.Records)
	if s.Ticks > 0 {
		last := t.Records[s.Ticks-1]
		s.FinalPos = last.Position
		s.FinalState = last.Animation
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d ticks, %d landings, max height %.2f, max vertical writes %d, final %s at (%.2f, %.2f)",
		s.Ticks, s.Landings, s.MaxHeight, s.MaxWrites, s.FinalState, s.FinalPos.X, s.FinalPos.Y)
}
