// Package script loads declarative typeline scripts from YAML files and
// replays them onto an engine through the builder API.
//
// A script looks like:
//
//	title: demo
//	loop: true
//	type_delay: natural
//	delete_delay: 55
//	steps:
//	  - type: "Hello <b>world</b>"
//	  - pause: 1200
//	  - delete: 5
//	  - type: "there"
//	  - delete_all: true
package script

import (
	"fmt"
	"io"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/typeline"
	"github.com/aretw0/typeline/pkg/playback"
)

// Script is a parsed script file.
type Script struct {
	Title       string
	Loop        bool
	TypeDelay   *playback.Delay
	DeleteDelay *playback.Delay
	Steps       []Step
}

// Step is one script action. Exactly one field is set per step.
type Step struct {
	Type        string `mapstructure:"type"`
	Pause       int    `mapstructure:"pause"` // milliseconds
	Delete      int    `mapstructure:"delete"`
	DeleteAll   bool   `mapstructure:"delete_all"`
	Delay       any    `mapstructure:"delay"`        // "natural" or milliseconds
	DeleteSpeed any    `mapstructure:"delete_speed"` // "natural" or milliseconds
}

type rawScript struct {
	Title       string           `yaml:"title"`
	Loop        bool             `yaml:"loop"`
	TypeDelay   *playback.Delay  `yaml:"type_delay"`
	DeleteDelay *playback.Delay  `yaml:"delete_delay"`
	Steps       []map[string]any `yaml:"steps"`
}

// Load parses a script from r.
func Load(r io.Reader) (*Script, error) {
	var raw rawScript
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(raw.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}

	s := &Script{
		Title:       raw.Title,
		Loop:        raw.Loop,
		TypeDelay:   raw.TypeDelay,
		DeleteDelay: raw.DeleteDelay,
	}
	for i, m := range raw.Steps {
		step, err := decodeStep(m)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

// decodeStep binds a loose YAML mapping onto the Step struct, rejecting
// unknown keys and steps that set more or less than one action.
func decodeStep(m map[string]any) (Step, error) {
	var step Step
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &step,
		ErrorUnused: true,
	})
	if err != nil {
		return Step{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Step{}, fmt.Errorf("invalid step: %w", err)
	}

	set := 0
	if step.Type != "" {
		set++
	}
	if step.Pause != 0 {
		set++
	}
	if step.Delete != 0 {
		set++
	}
	if step.DeleteAll {
		set++
	}
	if step.Delay != nil {
		set++
	}
	if step.DeleteSpeed != nil {
		set++
	}
	if set != 1 {
		return Step{}, fmt.Errorf("invalid step: want exactly one action, got %d", set)
	}
	return step, nil
}

// Options translates the script header into engine options.
func (s *Script) Options() []typeline.Option {
	opts := []typeline.Option{typeline.WithLoop(s.Loop)}
	if s.TypeDelay != nil {
		opts = append(opts, typeline.WithTypeDelay(*s.TypeDelay))
	}
	if s.DeleteDelay != nil {
		opts = append(opts, typeline.WithDeleteDelay(*s.DeleteDelay))
	}
	return opts
}

// Apply enqueues every step onto eng in order.
func (s *Script) Apply(eng *typeline.Engine) error {
	for i, step := range s.Steps {
		if err := applyStep(eng, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func applyStep(eng *typeline.Engine, step Step) error {
	switch {
	case step.Type != "":
		return eng.TypeString(step.Type)
	case step.Pause != 0:
		return eng.PauseFor(time.Duration(step.Pause) * time.Millisecond)
	case step.Delete != 0:
		return eng.DeleteChars(step.Delete)
	case step.DeleteAll:
		return eng.DeleteAll()
	case step.Delay != nil:
		d, err := parseDelay(step.Delay)
		if err != nil {
			return err
		}
		return eng.ChangeDelay(d)
	case step.DeleteSpeed != nil:
		d, err := parseDelay(step.DeleteSpeed)
		if err != nil {
			return err
		}
		return eng.ChangeDeleteSpeed(d)
	}
	return nil
}

func parseDelay(v any) (playback.Delay, error) {
	switch t := v.(type) {
	case string:
		if t == "natural" {
			return playback.Natural(), nil
		}
		return playback.Delay{}, fmt.Errorf("invalid delay %q", t)
	case int:
		if t <= 0 {
			return playback.Delay{}, fmt.Errorf("invalid delay %d", t)
		}
		return playback.Fixed(time.Duration(t) * time.Millisecond), nil
	default:
		return playback.Delay{}, fmt.Errorf("invalid delay type %T", v)
	}
}
