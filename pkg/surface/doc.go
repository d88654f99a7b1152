/*
Package surface defines the driven ports between the typeline engine and its
host container.

These interfaces decouple the playback core from presentation, allowing the
engine to type into a terminal, an HTTP event stream, or an in-memory tree
used by tests.

# Key Interfaces

  - Surface: creates and exposes visual nodes (root output, caret).
  - Node: an opaque handle with attach/detach/set-text capabilities.
  - FrameSource: the host timing primitive driving one tick per frame.
*/
package surface
