package table

import (
	"fmt"

	"github.com/goliatone/go-tablegen/pkg/tabular"
)

// SummaryDef is one computed summary row: per-group (or grand) aggregate
// values keyed by column. Values are computed eagerly at the call that adds
// the summary, so aggregation failures surface at the call site.
type SummaryDef struct {
	Label  string
	Grand  bool
	Groups []string
	// Values maps group name ("" for grand summaries) to column values.
	// Columns the aggregator skipped are absent.
	Values map[string]map[string]any
}

// SummaryRows appends an aggregate row under each named row group (every
// group when none are named). The frame must be grouped.
func (t *Table) SummaryRows(label string, agg tabular.Aggregator, groups ...string) (*Table, error) {
	if agg == nil {
		return nil, fmt.Errorf("table: summary rows: aggregator is required")
	}
	if !t.frame.Grouped() {
		return nil, ErrNoRowGroups
	}

	known := t.frame.Groups()
	target := groups
	if len(target) == 0 {
		target = known
	} else {
		index := make(map[string]struct{}, len(known))
		for _, group := range known {
			index[group] = struct{}{}
		}
		for _, group := range target {
			if _, ok := index[group]; !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
			}
		}
	}

	def := SummaryDef{
		Label:  label,
		Groups: append([]string(nil), target...),
		Values: make(map[string]map[string]any, len(target)),
	}

	shape := t.Shape()
	for _, group := range target {
		values, err := t.aggregateGroup(group, shape.Columns, agg)
		if err != nil {
			return nil, fmt.Errorf("table: summary rows for group %q: %w", group, err)
		}
		def.Values[group] = values
	}

	out := t.clone()
	out.summaries = append(out.summaries, def)
	return out, nil
}

// GrandSummaryRows appends an aggregate row spanning every data row.
func (t *Table) GrandSummaryRows(label string, agg tabular.Aggregator) (*Table, error) {
	if agg == nil {
		return nil, fmt.Errorf("table: grand summary rows: aggregator is required")
	}

	def := SummaryDef{
		Label:  label,
		Grand:  true,
		Values: make(map[string]map[string]any, 1),
	}

	shape := t.Shape()
	values, err := t.aggregateGroup("", shape.Columns, agg)
	if err != nil {
		return nil, fmt.Errorf("table: grand summary rows: %w", err)
	}
	def.Values[""] = values

	out := t.clone()
	out.summaries = append(out.summaries, def)
	return out, nil
}

// SummaryDefs returns the recorded summary definitions in insertion order.
func (t *Table) SummaryDefs() []SummaryDef {
	return append([]SummaryDef(nil), t.summaries...)
}

// aggregateGroup folds every presentation column over the rows of one group
// (all rows when group is "" and the frame is ungrouped, or for grand
// summaries).
func (t *Table) aggregateGroup(group string, columns []string, agg tabular.Aggregator) (map[string]any, error) {
	out := make(map[string]any, len(columns))
	for _, column := range columns {
		var values []any
		for i := 0; i < t.frame.NumRows(); i++ {
			if group != "" && t.frame.RowGroup(i) != group {
				continue
			}
			v, err := t.frame.Value(i, column)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}

		folded, ok, err := agg(values)
		if err != nil {
			return nil, fmt.Errorf("aggregate column %q: %w", column, err)
		}
		if ok {
			out[column] = folded
		}
	}
	return out, nil
}
