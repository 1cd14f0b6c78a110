package exit

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/jacoelho/textkit/internal/config"
	"github.com/jacoelho/textkit/internal/scan"
)

func TestCode(t *testing.T) {
	t.Parallel()

	_, mismatch := scan.SkipPairsUntil("(]", 0, scan.Rune(','))
	_, unclosed := scan.SkipPairsUntil("(", 0, scan.Rune(','))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: CodeSuccess},
		{name: "generic", err: errors.New("boom"), want: CodeFailure},
		{name: "usage", err: Usagef("missing argument %q", "text"), want: CodeUsage},
		{name: "config", err: fmt.Errorf("load: %w", config.ErrInvalidConfig), want: CodeUsage},
		{name: "mismatch", err: mismatch, want: CodeStructure},
		{name: "unclosed", err: fmt.Errorf("split: %w", unclosed), want: CodeStructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Code(tt.err); got != tt.want {
				t.Fatalf("Code(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	ok := FromError(nil)
	if ok.ExitCode != CodeSuccess || ok.Message != "" {
		t.Fatalf("FromError(nil) = %+v", ok)
	}

	failed := FromError(Usagef("bad flag"))
	if failed.ExitCode != CodeUsage || failed.Message != "Error: usage error: bad flag" {
		t.Fatalf("FromError() = %+v", failed)
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	(&Result{Output: &buf, Message: "done"}).Print()
	(&Result{Output: &buf}).Print()

	if buf.String() != "done\n" {
		t.Fatalf("Print() wrote %q, want %q", buf.String(), "done\n")
	}
}
