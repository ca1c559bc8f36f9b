package record

// GroupBy folds lines into groups using a try-parse policy: the first group
// is open from the start, every line that parses is appended to the current
// group, and every line that does not parse opens a new, empty group.
//
// GroupBy never fails. n lines with k separators always give k+1 groups.
func GroupBy[T any](lines []string, try func(string) (T, bool)) [][]T {
	groups := [][]T{{}}
	for _, line := range lines {
		v, ok := try(line)
		if !ok {
			groups = append(groups, []T{})
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], v)
	}
	return groups
}
