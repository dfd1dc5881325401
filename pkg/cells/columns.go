package cells

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadPattern wraps regular-expression compile failures inside
// ColumnsMatching selectors.
var ErrBadPattern = errors.New("cells: malformed column pattern")

// ColumnSelector picks a subset of the shape's columns. Select returns the
// matched names in shape column order; names absent from the shape simply do
// not match (targeting is permissive).
type ColumnSelector interface {
	Select(columns []string) ([]string, error)
}

type columnFilter struct {
	match func(string) bool
	err   error
}

func (s columnFilter) Select(columns []string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []string
	for _, name := range columns {
		if s.match(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// Columns selects columns by explicit id. Unknown ids match nothing.
func Columns(ids ...string) ColumnSelector {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	return columnFilter{match: func(name string) bool {
		_, ok := wanted[name]
		return ok
	}}
}

// ColumnsContaining selects columns whose id contains the substring.
func ColumnsContaining(substr string) ColumnSelector {
	return columnFilter{match: func(name string) bool {
		return strings.Contains(name, substr)
	}}
}

// ColumnsMatching selects columns whose id matches the regular expression.
// A malformed pattern fails at the transformation call that uses it.
func ColumnsMatching(pattern string) ColumnSelector {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return columnFilter{err: fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)}
	}
	return columnFilter{match: re.MatchString}
}

// ColumnsWithPrefix selects columns whose id starts with the prefix.
func ColumnsWithPrefix(prefix string) ColumnSelector {
	return columnFilter{match: func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}}
}

// ColumnsWithSuffix selects columns whose id ends with the suffix.
func ColumnsWithSuffix(suffix string) ColumnSelector {
	return columnFilter{match: func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}}
}

// AllColumns selects every column.
func AllColumns() ColumnSelector {
	return columnFilter{match: func(string) bool { return true }}
}

type unionSelector struct {
	selectors []ColumnSelector
}

func (s unionSelector) Select(columns []string) ([]string, error) {
	matched := make(map[string]struct{})
	for _, sel := range s.selectors {
		if sel == nil {
			continue
		}
		names, err := sel.Select(columns)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			matched[name] = struct{}{}
		}
	}

	var out []string
	for _, name := range columns {
		if _, ok := matched[name]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// AnyOf composes selectors by set union. The result stays in shape column
// order regardless of how the sub-selectors ordered their matches.
func AnyOf(selectors ...ColumnSelector) ColumnSelector {
	return unionSelector{selectors: selectors}
}
