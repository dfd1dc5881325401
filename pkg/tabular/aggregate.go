package tabular

import (
	"math"
	"strconv"
)

// Aggregator folds the values of one column slice into a single summary
// value. Returning ok=false skips the column (it renders as an empty summary
// cell) without failing the whole summary row.
type Aggregator func(values []any) (any, bool, error)

// AsFloat coerces common numeric types (and numeric strings) to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func numericValues(values []any) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := AsFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// Sum folds a numeric column into its total. Columns without numeric values
// are skipped.
func Sum(values []any) (any, bool, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return nil, false, nil
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total, true, nil
}

// Mean folds a numeric column into its arithmetic mean.
func Mean(values []any) (any, bool, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return nil, false, nil
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total / float64(len(nums)), true, nil
}

// Min folds a numeric column into its smallest value.
func Min(values []any) (any, bool, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return nil, false, nil
	}
	lowest := math.Inf(1)
	for _, n := range nums {
		if n < lowest {
			lowest = n
		}
	}
	return lowest, true, nil
}

// Max folds a numeric column into its largest value.
func Max(values []any) (any, bool, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return nil, false, nil
	}
	highest := math.Inf(-1)
	for _, n := range nums {
		if n > highest {
			highest = n
		}
	}
	return highest, true, nil
}
