// Package act reads, edits, and writes ACT image files, the
// multi-frame paletted raster format used for backdrop and explosion
// artwork in a family of mid-1990s LucasArts space-combat games.
//
// An ACT file holds one or more rectangular frames, each with its own
// palette and its own origin offset relative to a shared center point.
// Pixel rows are stored with a small run-length opcode language. The
// same byte layout appears embedded in LFD archives as an "XACT"
// payload; Decode accepts either form.
package act
