// Package draw defines the drawing surface widgets render into.
//
// Widgets emit high-level primitives — a filled rectangle, a line, a text
// label — each carried with its style and a clip rectangle. Commands are
// typed structs rather than an opaque byte stream so recordings can be
// inspected, compared, and replayed to any Surface implementation.
//
// The Recorder captures a render pass as an ordered command slice; the
// registry lets hosts construct surfaces by name following the
// database/sql driver pattern.
package draw
