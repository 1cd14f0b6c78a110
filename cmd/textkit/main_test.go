package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacoelho/textkit/internal/exit"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.Reader = strings.NewReader(stdin)

	err := app.Run(t.Context(), append([]string{"textkit"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "scan",
			args: []string{"scan", "--target", ",", `f(a, "b,c"), d`},
			want: "11\n",
		},
		{
			name:  "scan_stdin",
			stdin: "[1,2];3\n",
			args:  []string{"scan", "--target", ";"},
			want:  "5\n",
		},
		{
			name: "scan_open",
			args: []string{"scan", "--open", "1", "f(a)"},
			want: "3\n",
		},
		{
			name: "split",
			args: []string{"split", "a,{b,c},d"},
			want: "a\n{b,c}\nd\n",
		},
		{
			name: "split_lenient",
			args: []string{"split", "--lenient", "a,(b,c"},
			want: "a\n(b,c\n",
		},
		{
			name: "size_iec",
			args: []string{"size", "--base", "1024", "1023456789"},
			want: "976 MiB\n",
		},
		{
			name: "ip",
			args: []string{"ip", "212.143.78.11"},
			want: "3566161419\n",
		},
		{
			name:  "ip_stdin",
			stdin: "212.143.78.11\n\n-1407844352\n",
			args:  []string{"ip"},
			want:  "3566161419\n172.22.0.0\n",
		},
		{
			name:  "size_stdin",
			stdin: "12345\n",
			args:  []string{"size"},
			want:  "12.35 KB\n",
		},
		{
			name:  "compact_stdin",
			stdin: "1200345\n",
			args:  []string{"compact"},
			want:  "1.2M\n",
		},
		{
			name:  "mac_stdin",
			stdin: "00-11-22-33-44-55\n",
			args:  []string{"mac", "--delimiter", ":"},
			want:  "00:11:22:33:44:55\n",
		},
		{
			name: "mac",
			args: []string{"mac", "--delimiter", ":", "00-11-22-33-44-55"},
			want: "00:11:22:33:44:55\n",
		},
		{
			name:  "ndjson",
			stdin: "{\"a\":{\"b\":1}}\n{\"a\":{\"b\":2}}\n",
			args:  []string{"ndjson", "--path", "$.a.b"},
			want:  "1\n2\n",
		},
		{
			name:  "reorder",
			stdin: `{"name":"x","id":1}`,
			args:  []string{"reorder", "--first", "id"},
			want:  `{"id":1,"name":"x"}` + "\n",
		},
		{
			name:  "prune_defaults_to_empty",
			stdin: `{"a":"","b":false}`,
			args:  []string{"prune"},
			want:  `{"b":false}` + "\n",
		},
		{
			name:  "prune_defaults",
			stdin: `{"a":"","b":false,"c":"x"}`,
			args:  []string{"prune", "--prune", "defaults"},
			want:  `{"c":"x"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runApp(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("run error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "textkit.yaml")
	content := "lenient: true\norder:\n  last: [id]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runApp(t, "", "--config", path, "scan", "(a]")
	if err != nil {
		t.Fatalf("scan error = %v", err)
	}
	if got != "3\n" {
		t.Fatalf("scan output = %q, want %q", got, "3\n")
	}

	got, err = runApp(t, `{"id":1,"name":"x"}`, "--config", path, "reorder")
	if err != nil {
		t.Fatalf("reorder error = %v", err)
	}
	if want := `{"name":"x","id":1}` + "\n"; got != want {
		t.Fatalf("reorder output = %q, want %q", got, want)
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "structural", args: []string{"scan", "(a]"}, want: exit.CodeStructure},
		{name: "missing_config", args: []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "ip", "1"}, want: exit.CodeUsage},
		{name: "invalid_setting", args: []string{"size", "--base", "10", "1"}, want: exit.CodeUsage},
		{name: "no_values_and_empty_stdin", args: []string{"ip"}, want: exit.CodeUsage},
		{name: "bad_value", args: []string{"ip", "not-an-ip"}, want: exit.CodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := runApp(t, "", tt.args...)
			if got := exit.Code(err); got != tt.want {
				t.Fatalf("exit.Code(%v) = %d, want %d", err, got, tt.want)
			}
		})
	}
}
