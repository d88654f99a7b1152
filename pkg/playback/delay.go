package playback

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Delay is a command pacing setting: either a fixed duration or the
// "natural" sentinel, which draws a randomized human-feeling duration each
// time a pending command is evaluated.
type Delay struct {
	natural bool
	value   time.Duration
}

// Natural returns the randomized-delay sentinel.
func Natural() Delay {
	return Delay{natural: true}
}

// Fixed returns a delay pinned to d.
func Fixed(d time.Duration) Delay {
	return Delay{value: d}
}

// IsNatural reports whether the delay is randomized.
func (d Delay) IsNatural() bool { return d.natural }

// Duration returns the fixed duration. Zero when IsNatural.
func (d Delay) Duration() time.Duration { return d.value }

func (d Delay) String() string {
	if d.natural {
		return "natural"
	}
	return d.value.String()
}

// UnmarshalYAML accepts the script-file forms: the string "natural" or a
// positive integer of milliseconds.
func (d *Delay) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		if s == "natural" {
			*d = Natural()
			return nil
		}
		return fmt.Errorf("invalid delay %q (want \"natural\" or milliseconds)", s)
	}

	var ms int
	if err := node.Decode(&ms); err != nil {
		return fmt.Errorf("invalid delay: %w", err)
	}
	if ms <= 0 {
		return fmt.Errorf("invalid delay %d: must be positive", ms)
	}
	*d = Fixed(time.Duration(ms) * time.Millisecond)
	return nil
}

// Config is the engine configuration consumed by the core. It is
// snapshotted at construction and restored verbatim at the start of every
// loop cycle, so mid-script speed changes do not leak into the next
// repetition.
type Config struct {
	// TypeDelay paces every command that is not a deletion.
	TypeDelay Delay

	// DeleteDelay paces single-character deletes and the removals expanded
	// from RemoveAll.
	DeleteDelay Delay

	// Loop replays the whole script from the played log on exhaustion.
	Loop bool
}

// DefaultConfig returns the natural-speed, non-looping configuration.
func DefaultConfig() Config {
	return Config{
		TypeDelay:   Natural(),
		DeleteDelay: Natural(),
	}
}
