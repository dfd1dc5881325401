package cells

// Region identifies one of the addressable areas of a presentational table.
type Region string

const (
	RegionTitle         Region = "title"
	RegionSubtitle      Region = "subtitle"
	RegionStubhead      Region = "stubhead"
	RegionColumnSpanner Region = "column-spanner"
	RegionColumnLabel   Region = "column-label"
	RegionRowGroupLabel Region = "row-group-label"
	RegionStub          Region = "stub"
	RegionBody          Region = "body"
	RegionSummary       Region = "summary"
	RegionGrandSummary  Region = "grand-summary"
)

// TraversalOrder is the canonical region walk used when footnote marks are
// assigned: top of the table down to the grand summary, body row-major.
func TraversalOrder() []Region {
	return []Region{
		RegionTitle,
		RegionSubtitle,
		RegionStubhead,
		RegionColumnSpanner,
		RegionColumnLabel,
		RegionRowGroupLabel,
		RegionStub,
		RegionBody,
		RegionSummary,
		RegionGrandSummary,
	}
}

// Coordinate is one concrete resolved cell position. Fields that do not
// apply to the region are left at their zero value; Row is -1 whenever the
// coordinate is not row-scoped.
type Coordinate struct {
	Region  Region `json:"region"`
	Column  string `json:"column,omitempty"`
	Row     int    `json:"row"`
	Group   string `json:"group,omitempty"`
	Spanner string `json:"spanner,omitempty"`
}

// NoRow marks coordinates without a row axis.
const NoRow = -1
