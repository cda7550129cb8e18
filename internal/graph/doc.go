// Package graph holds the read-overlap (string) graph as an immutable arena.
//
// Vertices and edges live in flat slices and are addressed by index; edges
// store indices, never pointers. A Graph is produced once by a Builder and is
// read-only afterwards, so any number of searches may share it.
//
// This package never imports search, resolve, pipeline, writers, cli or app.
package graph
