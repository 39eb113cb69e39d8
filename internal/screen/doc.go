// Package screen maintains the virtual terminal grid that the rest of
// Lector reads from: a dual-buffer (primary + alternate) grid of Cells fed
// by an incremental VT byte-stream parser, with immutable Snapshots taken
// on demand for the live reader, review navigator, and table engine to
// consume.
//
// # Cells and graphemes
//
// Unlike a classic terminal emulator, a Cell here holds a full grapheme
// cluster rather than a single rune, so that combining marks, ZWJ emoji
// sequences, and other multi-codepoint clusters are treated as one speakable
// unit. Width-2 clusters occupy two columns: the second is a
// FlagWideSpacer placeholder that is never itself a grapheme start.
//
// # Generations
//
// Every applied byte batch bumps the Screen's generation counter and the
// caller is expected to take a Snapshot immediately after. Snapshots never
// change once taken; diffing two of them is how the live reader decides
// what to speak.
package screen
