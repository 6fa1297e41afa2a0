package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/doomerang-movement/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted input run over a level.
type Scenario struct {
	Name   string      `yaml:"name"`
	Level  string      `yaml:"level"`
	Spawn  int         `yaml:"spawn"`
	Ticks  int         `yaml:"ticks"`
	Inputs []InputSpan `yaml:"inputs"`
}

// InputSpan holds an input over the ticks [From, To).
type InputSpan struct {
	From int        `yaml:"from"`
	To   int        `yaml:"to"`
	Move [2]float64 `yaml:"move"`
	Hold []string   `yaml:"hold"`
}

var ErrNoTicks = errors.New("scenario has no ticks")

// LoadScenario reads a scenario from disk.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// LoadScenarioFS reads a scenario from fsys.
func LoadScenarioFS(fsys fs.FS, path string) (*Scenario, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario. Unknown keys are errors.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Ticks <= 0 {
		return ErrNoTicks
	}
	for i, span := range s.Inputs {
		if span.From < 0 || span.To <= span.From {
			return fmt.Errorf("input %d: bad range [%d, %d)", i, span.From, span.To)
		}
		for _, h := range span.Hold {
			switch h {
			case "jump", "dash", "run":
			default:
				return fmt.Errorf("input %d: unknown button %q", i, h)
			}
		}
	}
	return nil
}

// InputAt merges every span covering tick. Later spans override the stick.
func (s *Scenario) InputAt(tick int) Input {
	var in Input
	for _, span := range s.Inputs {
		if tick < span.From || tick >= span.To {
			continue
		}
		in.Move = gamemath.Vec2{X: span.Move[0], Y: span.Move[1]}
		for _, h := range span.Hold {
			switch h {
			case "jump":
				in.Jump = true
			case "dash":
				in.Dash = true
			case "run":
				in.Run = true
			}
		}
	}
	return in
}

// Run steps w through the whole scenario.
func (s *Scenario) Run(w *World) *Trace {
	trace := &Trace{Scenario: s.Name}
	for tick := 0; tick < s.Ticks; tick++ {
		trace.Add(w.Step(s.InputAt(tick)))
	}
	return trace
}
