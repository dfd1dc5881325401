// Package table holds the immutable table value at the center of the
// pipeline. A Table wraps a read-only data frame and accumulates
// presentation state through non-destructive transformation calls: headers,
// spanners, styles, footnotes, summaries, and options. Each call returns a
// new value; the append-only Decorations store preserves call order so
// rendering is deterministic.
package table
