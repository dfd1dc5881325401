// Package tabular holds the read-only data source the presentation pipeline
// consumes: ordered columns, ordered rows, and optional row grouping. Frames
// are built once and never mutated by table transformations; predicates and
// summary aggregators only read from them.
package tabular
