// Package fold holds the reducers used to collapse parsed puzzle values
// into scalar answers.
package fold

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer type a puzzle answer can be built from.
type Number interface {
	constraints.Integer
}

// Sum adds all values. The empty sum is 0.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// SumBy maps every item to a number and adds the results.
func SumBy[S any, T Number](items []S, f func(S) T) T {
	var total T
	for _, it := range items {
		total += f(it)
	}
	return total
}

// Map applies f to every item.
func Map[S, T any](items []S, f func(S) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = f(it)
	}
	return out
}

// Max returns the largest value, or 0 when values is empty.
func Max[T Number](values []T) T {
	var best T
	for i, v := range values {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

// TopKSum returns the sum of the k largest values. When fewer than k values
// exist all of them are summed; k <= 0 gives 0. values is not modified.
func TopKSum[T Number](values []T, k int) T {
	if k <= 0 || len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	// по убыванию
	slices.SortFunc(sorted, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return Sum(sorted[:min(k, len(sorted))])
}

// CountIf counts items for which pred holds.
func CountIf[S any](items []S, pred func(S) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// Windows partitions items into consecutive windows of the given size. Only
// complete windows are returned; a trailing remainder is dropped.
func Windows[S any](items []S, size int) [][]S {
	if size <= 0 {
		return nil
	}
	out := make([][]S, 0, len(items)/size)
	for i := 0; i+size <= len(items); i += size {
		out = append(out, items[i:i+size:i+size])
	}
	return out
}
