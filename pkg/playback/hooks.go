package playback

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and run synchronously inside the tick; keep them cheap.
type LifecycleHooks struct {
	// OnCommand fires after a command executed, with its original kind.
	OnCommand func(kind CommandKind)

	// OnLoop fires when the loop replay controller rebuilds the queue.
	// cycle counts completed passes, starting at 1.
	OnLoop func(cycle int)

	// OnCallbackError fires when a CallFunction callback fails, just
	// before the failure stops playback.
	OnCallbackError func(err error)
}
