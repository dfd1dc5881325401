package render

import (
	"sort"

	"github.com/goliatone/go-tablegen/pkg/cells"
	"github.com/goliatone/go-tablegen/pkg/options"
	"github.com/goliatone/go-tablegen/pkg/table"
)

// coordRank orders coordinates by the canonical table walk: heading regions
// first, then the column header bands, then stub-side labels, body row-major,
// and summaries last.
type coordRank struct {
	region int
	major  int
	minor  int
}

func rankCoordinate(shape cells.Shape, coord cells.Coordinate) coordRank {
	region := 0
	for i, r := range cells.TraversalOrder() {
		if r == coord.Region {
			region = i
			break
		}
	}

	columns := make(map[string]int, len(shape.Columns))
	for i, name := range shape.Columns {
		columns[name] = i
	}

	rank := coordRank{region: region}
	switch coord.Region {
	case cells.RegionColumnSpanner:
		for i, spanner := range shape.Spanners {
			if spanner.ID == coord.Spanner {
				rank.major = i
				break
			}
		}
	case cells.RegionColumnLabel, cells.RegionGrandSummary:
		rank.major = columns[coord.Column]
	case cells.RegionRowGroupLabel:
		rank.major = groupRank(shape, coord.Group)
	case cells.RegionStub:
		rank.major = coord.Row
	case cells.RegionBody:
		rank.major = coord.Row
		rank.minor = columns[coord.Column]
	case cells.RegionSummary:
		rank.major = groupRank(shape, coord.Group)
		rank.minor = columns[coord.Column]
	}
	return rank
}

func groupRank(shape cells.Shape, group string) int {
	for i, name := range shape.Groups {
		if name == group {
			return i
		}
	}
	return len(shape.Groups)
}

func (r coordRank) less(other coordRank) bool {
	if r.region != other.region {
		return r.region < other.region
	}
	if r.major != other.major {
		return r.major < other.major
	}
	return r.minor < other.minor
}

// assignMarks numbers the footnotes by the first cell each one decorates in
// the canonical walk, builds the per-coordinate mark lists, and returns the
// footnote footer lines in mark order. Footnotes with no coordinates close
// the footnote block, unmarked, in insertion order.
func assignMarks(shape cells.Shape, notes []table.FootnoteEntry, seq options.MarkSequence) (map[cells.Coordinate][]string, []FooterLine) {
	type anchor struct {
		rank  coordRank
		coord cells.Coordinate
		note  int
	}

	var anchors []anchor
	for i, note := range notes {
		for _, coord := range note.Coordinates {
			anchors = append(anchors, anchor{
				rank:  rankCoordinate(shape, coord),
				coord: coord,
				note:  i,
			})
		}
	}

	sort.SliceStable(anchors, func(i, j int) bool {
		if anchors[i].rank != anchors[j].rank {
			return anchors[i].rank.less(anchors[j].rank)
		}
		return anchors[i].note < anchors[j].note
	})

	// One mark per footnote, taken at its first anchor.
	numbers := make(map[int]int, len(notes))
	next := 0
	for _, a := range anchors {
		if _, done := numbers[a.note]; done {
			continue
		}
		numbers[a.note] = next
		next++
	}

	perCoord := make(map[cells.Coordinate]map[int]struct{})
	for _, a := range anchors {
		set, ok := perCoord[a.coord]
		if !ok {
			set = make(map[int]struct{})
			perCoord[a.coord] = set
		}
		set[numbers[a.note]] = struct{}{}
	}
	marks := make(map[cells.Coordinate][]string, len(perCoord))
	for coord, set := range perCoord {
		cellNumbers := make([]int, 0, len(set))
		for n := range set {
			cellNumbers = append(cellNumbers, n)
		}
		sort.Ints(cellNumbers)
		for _, n := range cellNumbers {
			marks[coord] = append(marks[coord], seq.Mark(n))
		}
	}

	footer := make([]FooterLine, 0, len(notes))
	ordered := make([]int, 0, len(numbers))
	for note := range numbers {
		ordered = append(ordered, note)
	}
	sort.Slice(ordered, func(i, j int) bool { return numbers[ordered[i]] < numbers[ordered[j]] })
	for _, note := range ordered {
		footer = append(footer, FooterLine{Mark: seq.Mark(numbers[note]), Text: notes[note].Text})
	}
	for i, note := range notes {
		if _, marked := numbers[i]; marked {
			continue
		}
		footer = append(footer, FooterLine{Text: note.Text})
	}

	return marks, footer
}
