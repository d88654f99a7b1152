package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/typeline/pkg/playback"
)

func TestEffectiveDelayClasses(t *testing.T) {
	var gotMin, gotMax int
	spy := func(min, max int) int {
		gotMin, gotMax = min, max
		return min
	}
	cfg := playback.Config{TypeDelay: playback.Natural(), DeleteDelay: playback.Natural()}

	tests := []struct {
		name     string
		kind     playback.CommandKind
		min, max int
	}{
		{"type character", playback.TypeCharacter, 120, 160},
		{"pause", playback.PauseFor, 120, 160},
		{"add element", playback.AddMarkupElement, 120, 160},
		{"remove character", playback.RemoveCharacter, 40, 80},
		{"remove last node", playback.RemoveLastVisibleNode, 40, 80},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := effectiveDelay(playback.Command{Kind: tc.kind}, cfg, spy)
			assert.Equal(t, tc.min, gotMin)
			assert.Equal(t, tc.max, gotMax)
			assert.Equal(t, time.Duration(tc.min)*time.Millisecond, d)
		})
	}
}

func TestEffectiveDelayFixed(t *testing.T) {
	cfg := playback.Config{
		TypeDelay:   playback.Fixed(75 * time.Millisecond),
		DeleteDelay: playback.Fixed(30 * time.Millisecond),
	}
	panicRand := func(min, max int) int {
		t.Fatal("fixed delays must not consult the random source")
		return 0
	}

	assert.Equal(t, 75*time.Millisecond,
		effectiveDelay(playback.Command{Kind: playback.TypeCharacter}, cfg, panicRand))
	assert.Equal(t, 30*time.Millisecond,
		effectiveDelay(playback.Command{Kind: playback.RemoveCharacter}, cfg, panicRand))
}

// Natural delays are redrawn every time a pending command is evaluated,
// not fixed once per command.
func TestNaturalDelayRedrawnPerEvaluation(t *testing.T) {
	calls := 0
	counting := func(min, max int) int {
		calls++
		return min
	}
	cfg := playback.Config{TypeDelay: playback.Natural(), DeleteDelay: playback.Natural()}
	cmd := playback.Command{Kind: playback.TypeCharacter}

	effectiveDelay(cmd, cfg, counting)
	effectiveDelay(cmd, cfg, counting)
	assert.Equal(t, 2, calls)
}
