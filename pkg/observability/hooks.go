package observability

import "github.com/aretw0/typeline/pkg/playback"

// Combine fans an engine's lifecycle events out to several hook sets
// (e.g. metrics plus an application listener).
func Combine(hooks ...playback.LifecycleHooks) playback.LifecycleHooks {
	return playback.LifecycleHooks{
		OnCommand: func(kind playback.CommandKind) {
			for _, h := range hooks {
				if h.OnCommand != nil {
					h.OnCommand(kind)
				}
			}
		},
		OnLoop: func(cycle int) {
			for _, h := range hooks {
				if h.OnLoop != nil {
					h.OnLoop(cycle)
				}
			}
		},
		OnCallbackError: func(err error) {
			for _, h := range hooks {
				if h.OnCallbackError != nil {
					h.OnCallbackError(err)
				}
			}
		},
	}
}
