package scan

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSplitTopLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		sep  rune
		want []string
	}{
		{
			name: "plain",
			text: "a,b,c",
			sep:  ',',
			want: []string{"a", "b", "c"},
		},
		{
			name: "nested_groups_and_quotes",
			text: `f(a, b), [1, 2], "x,y", {k: 'v,w'}`,
			sep:  ',',
			want: []string{"f(a, b)", " [1, 2]", ` "x,y"`, " {k: 'v,w'}"},
		},
		{
			name: "trailing_separator",
			text: "a,",
			sep:  ',',
			want: []string{"a", ""},
		},
		{
			name: "empty_text",
			text: "",
			sep:  ',',
			want: []string{""},
		},
		{
			name: "multibyte_separator",
			text: "a→(b→c)→d",
			sep:  '→',
			want: []string{"a", "(b→c)", "d"},
		},
		{
			name: "unterminated_quote_keeps_rest",
			text: `a,"b,c`,
			sep:  ',',
			want: []string{"a", `"b,c`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitTopLevel(tt.text, tt.sep)
			if err != nil {
				t.Fatalf("SplitTopLevel() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("SplitTopLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitTopLevelErrors(t *testing.T) {
	t.Parallel()

	if _, err := SplitTopLevel("a,(b", ','); !errors.Is(err, ErrUnclosedGroups) {
		t.Fatalf("SplitTopLevel() error = %v, want ErrUnclosedGroups", err)
	}
	if _, err := SplitTopLevel("a,b],c", ','); !errors.Is(err, ErrMismatch) {
		t.Fatalf("SplitTopLevel() error = %v, want ErrMismatch", err)
	}
}

func TestSplitTopLevelLenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
	}{
		{text: "a,(b,c", want: []string{"a", "(b,c"}},
		{text: "a,b],c", want: []string{"a", "b],c"}},
		{text: "x,y", want: []string{"x", "y"}},
	}

	for _, tt := range tests {
		if got := SplitTopLevelLenient(tt.text, ','); !slices.Equal(got, tt.want) {
			t.Fatalf("SplitTopLevelLenient(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFindClosing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		open    int
		want    int
		wantErr error
	}{
		{name: "paren", text: "f(a, (b), ')')", open: 1, want: 13},
		{name: "bracket", text: "x[1, [2]]y", open: 1, want: 8},
		{name: "brace_with_string", text: `{"}": 1}`, open: 0, want: 7},
		{name: "unclosed", text: "(a", open: 0, wantErr: ErrUnclosedGroups},
		{name: "mismatch", text: "(a]", open: 0, wantErr: ErrMismatch},
		{name: "not_opening", text: "abc", open: 1, wantErr: ErrNotOpening},
		{name: "out_of_range", text: "()", open: 2, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FindClosing(tt.text, tt.open)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindClosing() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindClosing() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("FindClosing() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindClosingMismatchNamesOpener(t *testing.T) {
	t.Parallel()

	_, err := FindClosing("x{a]", 1)

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("FindClosing() error = %v, want *MismatchError", err)
	}
	if !mismatch.HasExpected || mismatch.Expected != '}' || mismatch.Offset != 3 {
		t.Fatalf("mismatch = %+v, want '}' expected at offset 3", mismatch)
	}
	if msg := err.Error(); !strings.Contains(msg, "expected '}'") {
		t.Fatalf("Error() = %q, want it to name '}'", msg)
	}
}
