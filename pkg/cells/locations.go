package cells

import "fmt"

// Location is a declarative target over one table region. Resolve turns it
// into concrete coordinates against a snapshot; for a fixed snapshot the
// result set and its order are stable. Targeting a region the snapshot does
// not have yields an empty set, not an error.
type Location interface {
	Region() Region
	Resolve(snap Snapshot) ([]Coordinate, error)
}

// --- Heading regions ---

type titleLocation struct{}

// Title targets the table title.
func Title() Location { return titleLocation{} }

func (titleLocation) Region() Region { return RegionTitle }

func (titleLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	if !snap.Shape.HasTitle {
		return nil, nil
	}
	return []Coordinate{{Region: RegionTitle, Row: NoRow}}, nil
}

type subtitleLocation struct{}

// Subtitle targets the table subtitle.
func Subtitle() Location { return subtitleLocation{} }

func (subtitleLocation) Region() Region { return RegionSubtitle }

func (subtitleLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	if !snap.Shape.HasSubtitle {
		return nil, nil
	}
	return []Coordinate{{Region: RegionSubtitle, Row: NoRow}}, nil
}

type stubheadLocation struct{}

// Stubhead targets the label cell above the stub.
func Stubhead() Location { return stubheadLocation{} }

func (stubheadLocation) Region() Region { return RegionStubhead }

func (stubheadLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	if !snap.Shape.HasStubhead {
		return nil, nil
	}
	return []Coordinate{{Region: RegionStubhead, Row: NoRow}}, nil
}

// --- Column header regions ---

type spannerLocation struct {
	ids []string
}

// ColumnSpanners targets spanner labels by id. With no ids, every spanner is
// targeted; unknown ids match nothing.
func ColumnSpanners(ids ...string) Location {
	return spannerLocation{ids: append([]string(nil), ids...)}
}

func (spannerLocation) Region() Region { return RegionColumnSpanner }

func (l spannerLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	wanted := make(map[string]struct{}, len(l.ids))
	for _, id := range l.ids {
		wanted[id] = struct{}{}
	}

	var out []Coordinate
	for _, spanner := range snap.Shape.Spanners {
		if len(wanted) > 0 {
			if _, ok := wanted[spanner.ID]; !ok {
				continue
			}
		}
		out = append(out, Coordinate{Region: RegionColumnSpanner, Spanner: spanner.ID, Row: NoRow})
	}
	return out, nil
}

type columnLabelLocation struct {
	columns ColumnSelector
}

// ColumnLabels targets column label cells. A nil selector targets all of
// them.
func ColumnLabels(columns ColumnSelector) Location {
	return columnLabelLocation{columns: columns}
}

func (columnLabelLocation) Region() Region { return RegionColumnLabel }

func (l columnLabelLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	names, err := selectColumns(l.columns, snap.Shape.Columns)
	if err != nil {
		return nil, err
	}
	out := make([]Coordinate, 0, len(names))
	for _, name := range names {
		out = append(out, Coordinate{Region: RegionColumnLabel, Column: name, Row: NoRow})
	}
	return out, nil
}

// --- Stub-side regions ---

type rowGroupLocation struct {
	names []string
}

// RowGroups targets row-group label cells by group name. With no names,
// every group is targeted. Ungrouped tables resolve to nothing.
func RowGroups(names ...string) Location {
	return rowGroupLocation{names: append([]string(nil), names...)}
}

func (rowGroupLocation) Region() Region { return RegionRowGroupLabel }

func (l rowGroupLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	wanted := make(map[string]struct{}, len(l.names))
	for _, name := range l.names {
		wanted[name] = struct{}{}
	}

	var out []Coordinate
	for _, group := range snap.Shape.Groups {
		if len(wanted) > 0 {
			if _, ok := wanted[group]; !ok {
				continue
			}
		}
		out = append(out, Coordinate{Region: RegionRowGroupLabel, Group: group, Row: NoRow})
	}
	return out, nil
}

type stubLocation struct {
	rows RowSelector
}

// Stub targets row-label cells in the stub. A nil selector targets every
// row. Tables without a stub resolve to nothing.
func Stub(rows RowSelector) Location {
	return stubLocation{rows: rows}
}

func (stubLocation) Region() Region { return RegionStub }

func (l stubLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	if !snap.Shape.HasStub() {
		return nil, nil
	}
	indices, err := selectRows(l.rows, snap)
	if err != nil {
		return nil, err
	}
	out := make([]Coordinate, 0, len(indices))
	for _, i := range indices {
		out = append(out, Coordinate{Region: RegionStub, Row: i, Group: groupOf(snap.Shape, i)})
	}
	return out, nil
}

// --- Body ---

type bodyLocation struct {
	columns ColumnSelector
	rows    RowSelector
}

// Body targets data cells at the intersection of the column and row
// selections. Nil selectors mean "all"; coordinates come back row-major.
func Body(columns ColumnSelector, rows RowSelector) Location {
	return bodyLocation{columns: columns, rows: rows}
}

func (bodyLocation) Region() Region { return RegionBody }

func (l bodyLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	names, err := selectColumns(l.columns, snap.Shape.Columns)
	if err != nil {
		return nil, err
	}
	indices, err := selectRows(l.rows, snap)
	if err != nil {
		return nil, err
	}

	out := make([]Coordinate, 0, len(names)*len(indices))
	for _, i := range indices {
		for _, name := range names {
			out = append(out, Coordinate{Region: RegionBody, Column: name, Row: i, Group: groupOf(snap.Shape, i)})
		}
	}
	return out, nil
}

// --- Summary regions ---

type summaryLocation struct {
	groups  []string
	columns ColumnSelector
}

// Summary targets group summary cells. With no group names, every group
// that carries summary rows is targeted; tables without summaries resolve to
// nothing.
func Summary(columns ColumnSelector, groups ...string) Location {
	return summaryLocation{groups: append([]string(nil), groups...), columns: columns}
}

func (summaryLocation) Region() Region { return RegionSummary }

func (l summaryLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	names, err := selectColumns(l.columns, snap.Shape.Columns)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(l.groups))
	for _, group := range l.groups {
		wanted[group] = struct{}{}
	}

	var out []Coordinate
	for _, group := range snap.Shape.SummaryGroups {
		if len(wanted) > 0 {
			if _, ok := wanted[group]; !ok {
				continue
			}
		}
		for _, name := range names {
			out = append(out, Coordinate{Region: RegionSummary, Group: group, Column: name, Row: NoRow})
		}
	}
	return out, nil
}

type grandSummaryLocation struct {
	columns ColumnSelector
}

// GrandSummary targets grand-summary cells. Tables without a grand summary
// resolve to nothing.
func GrandSummary(columns ColumnSelector) Location {
	return grandSummaryLocation{columns: columns}
}

func (grandSummaryLocation) Region() Region { return RegionGrandSummary }

func (l grandSummaryLocation) Resolve(snap Snapshot) ([]Coordinate, error) {
	if !snap.Shape.HasGrandSummary {
		return nil, nil
	}
	names, err := selectColumns(l.columns, snap.Shape.Columns)
	if err != nil {
		return nil, err
	}
	out := make([]Coordinate, 0, len(names))
	for _, name := range names {
		out = append(out, Coordinate{Region: RegionGrandSummary, Column: name, Row: NoRow})
	}
	return out, nil
}

// --- helpers ---

func selectColumns(sel ColumnSelector, columns []string) ([]string, error) {
	if sel == nil {
		sel = AllColumns()
	}
	names, err := sel.Select(columns)
	if err != nil {
		return nil, fmt.Errorf("cells: select columns: %w", err)
	}
	return names, nil
}

func selectRows(sel RowSelector, snap Snapshot) ([]int, error) {
	if sel == nil {
		sel = AllRows()
	}
	if snap.Data == nil {
		return nil, nil
	}
	indices, err := sel.Select(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("cells: select rows: %w", err)
	}
	return indices, nil
}

func groupOf(shape Shape, row int) string {
	if row < 0 || row >= len(shape.RowGroups) {
		return ""
	}
	return shape.RowGroups[row]
}
