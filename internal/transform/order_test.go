package transform

import (
	"slices"
	"testing"
)

func TestOrderNames(t *testing.T) {
	t.Parallel()

	names := []string{"d", "b", "a", "e", "c"}

	tests := []struct {
		name string
		opts OrderOptions
		want []string
	}{
		{name: "no_options", opts: OrderOptions{}, want: []string{"d", "b", "a", "e", "c"}},
		{name: "first", opts: OrderOptions{First: []string{"c", "a"}}, want: []string{"c", "a", "d", "b", "e"}},
		{name: "last", opts: OrderOptions{Last: []string{"d"}}, want: []string{"b", "a", "e", "c", "d"}},
		{
			name: "first_wins_over_last",
			opts: OrderOptions{First: []string{"b"}, Last: []string{"b", "a"}},
			want: []string{"b", "d", "e", "c", "a"},
		},
		{
			name: "unknown_names_ignored",
			opts: OrderOptions{First: []string{"x", "e"}, Last: []string{"y"}},
			want: []string{"e", "d", "b", "a", "c"},
		},
		{
			name: "duplicates_in_options",
			opts: OrderOptions{First: []string{"a", "a"}},
			want: []string{"a", "d", "b", "e", "c"},
		},
		{name: "sort", opts: OrderOptions{Sort: true}, want: []string{"a", "b", "c", "d", "e"}},
		{
			name: "sort_descending_middle_only",
			opts: OrderOptions{First: []string{"c"}, Last: []string{"a"}, Sort: true, SortDescending: true},
			want: []string{"c", "e", "d", "b", "a"},
		},
		{
			name: "descending_without_sort_is_ignored",
			opts: OrderOptions{SortDescending: true},
			want: []string{"d", "b", "a", "e", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := OrderNames(slices.Clone(names), tt.opts)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("OrderNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderNamesDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	names := []string{"b", "a"}
	OrderNames(names, OrderOptions{Sort: true})
	if !slices.Equal(names, []string{"b", "a"}) {
		t.Fatalf("names = %v, want [b a]", names)
	}
}

func TestOrderOptionsIsZero(t *testing.T) {
	t.Parallel()

	if !(OrderOptions{SortDescending: true}).IsZero() {
		t.Fatal("IsZero() = false for descending without sort")
	}
	if (OrderOptions{Last: []string{"x"}}).IsZero() {
		t.Fatal("IsZero() = true with Last set")
	}
}
