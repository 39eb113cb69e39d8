// Package ptyhost spawns the child shell under a pseudo-terminal and
// shuttles bytes between it and the event loop, grounded on the PTY
// spawn/resize pattern used for attached container shells elsewhere in the
// example corpus: pty.StartWithSize plus one output pump goroutine run in
// an errgroup and stopped by Close; bytes for the child are written to the
// PTY directly.
package ptyhost
