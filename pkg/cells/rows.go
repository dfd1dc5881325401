package cells

import (
	"fmt"

	"github.com/goliatone/go-tablegen/pkg/tabular"
)

// RowSelector picks a subset of data rows, returned as ascending indices.
type RowSelector interface {
	Select(data *tabular.Frame) ([]int, error)
}

type allRows struct{}

func (allRows) Select(data *tabular.Frame) ([]int, error) {
	out := make([]int, data.NumRows())
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// AllRows selects every data row.
func AllRows() RowSelector {
	return allRows{}
}

type rowIndices struct {
	indices []int
}

func (s rowIndices) Select(data *tabular.Frame) ([]int, error) {
	seen := make(map[int]struct{}, len(s.indices))
	for _, i := range s.indices {
		if i < 0 || i >= data.NumRows() {
			continue
		}
		seen[i] = struct{}{}
	}
	var out []int
	for i := 0; i < data.NumRows(); i++ {
		if _, ok := seen[i]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

// RowIndices selects rows by zero-based position. Out-of-range indices match
// nothing; the result is always in row order.
func RowIndices(indices ...int) RowSelector {
	return rowIndices{indices: append([]int(nil), indices...)}
}

type rowPredicate struct {
	pred func(tabular.Row) (bool, error)
}

func (s rowPredicate) Select(data *tabular.Frame) ([]int, error) {
	var out []int
	for i := 0; i < data.NumRows(); i++ {
		row, err := data.Row(i)
		if err != nil {
			return nil, err
		}
		keep, err := s.pred(row)
		if err != nil {
			return nil, fmt.Errorf("cells: row predicate at row %d: %w", i, err)
		}
		if keep {
			out = append(out, i)
		}
	}
	return out, nil
}

// RowsWhere selects rows for which the predicate holds. Predicate failures
// (for example referencing a column the frame does not have) surface as a
// resolution error, never as a silent empty match.
func RowsWhere(pred func(tabular.Row) (bool, error)) RowSelector {
	return rowPredicate{pred: pred}
}
