package trace

import (
	"fmt"
	"strings"
)

// nameOf returns names[v], or "unknown" for values outside the table.
func nameOf[T ~uint8](names []string, v T) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return "unknown"
}

// parseName maps a flag value back through names, ignoring case and
// surrounding spaces. aliases cover accepted spellings that are not names.
func parseName[T ~uint8](what, s string, names []string, aliases map[string]T) (T, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if v, ok := aliases[key]; ok {
		return v, nil
	}
	valid := make([]string, 0, len(names))
	for i, n := range names {
		if n == "" {
			continue
		}
		if n == key {
			return T(i), nil
		}
		valid = append(valid, n)
	}
	var zero T
	return zero, fmt.Errorf("invalid trace %s: %q (expected: %s)", what, s, strings.Join(valid, "|"))
}
