// Package render defines the composition stage between a table value and its
// output formats. Compose flattens a table into a Document: columns, spanner
// bands, group blocks, summary rows, merged per-cell styles, and footnote
// marks assigned in reading order. Renderers consume Documents through the
// Renderer interface and are looked up by name in a Registry.
package render
