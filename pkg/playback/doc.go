/*
Package playback defines the shared domain types of the typeline engine: the
command vocabulary exchanged between the builder API and the core, delay and
configuration settings, lifecycle hooks, and the sentinel errors of the
public surface.
*/
package playback
