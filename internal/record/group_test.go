package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestGroupBy(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  [][]uint32
	}{
		{
			name:  "no lines",
			lines: nil,
			want:  [][]uint32{{}},
		},
		{
			name:  "sample",
			lines: []string{"1000", "2000", "3000", "", "4000", "", "5000", "6000", "", "7000", "8000", "9000", "", "10000"},
			want:  [][]uint32{{1000, 2000, 3000}, {4000}, {5000, 6000}, {7000, 8000, 9000}, {10000}},
		},
		{
			name:  "any non-numeric line separates",
			lines: []string{"1", "x", "2"},
			want:  [][]uint32{{1}, {2}},
		},
		{
			name:  "separators only",
			lines: []string{"", ""},
			want:  [][]uint32{{}, {}, {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupBy(tt.lines, Uint)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func genLines() *rapid.Generator[[]string] {
	return rapid.SliceOf(rapid.OneOf(
		rapid.StringMatching(`[0-9]{1,5}`),
		rapid.Just(""),
		rapid.StringMatching(`[a-z ]{1,3}`),
	))
}

func TestGroupByIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines().Draw(t, "lines")
		first := GroupBy(lines, Uint)
		second := GroupBy(lines, Uint)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("grouping differs between passes:\n%s", diff)
		}
	})
}

func TestGroupByCountsSeparators(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genLines().Draw(t, "lines")
		separators, values := 0, 0
		for _, l := range lines {
			if _, ok := Uint(l); ok {
				values++
			} else {
				separators++
			}
		}
		groups := GroupBy(lines, Uint)
		if len(groups) != separators+1 {
			t.Fatalf("got %d groups for %d separators", len(groups), separators)
		}
		total := 0
		for _, g := range groups {
			total += len(g)
		}
		if total != values {
			t.Fatalf("got %d grouped values, want %d", total, values)
		}
	})
}
