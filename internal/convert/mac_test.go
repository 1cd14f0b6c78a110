package convert

import (
	"errors"
	"testing"
)

const sampleMAC = 45459793942

func TestFormatMAC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delimiter string
		want      string
	}{
		{delimiter: ":", want: "00:0a:95:9d:68:16"},
		{delimiter: "-", want: "00-0a-95-9d-68-16"},
		{delimiter: "", want: "000a959d6816"},
	}

	for _, tt := range tests {
		if got := FormatMAC(sampleMAC, tt.delimiter); got != tt.want {
			t.Fatalf("FormatMAC(%q) = %q, want %q", tt.delimiter, got, tt.want)
		}
	}
}

func TestReformatMAC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		delimiter string
		want      string
	}{
		{name: "replace_delimiters", input: "00:0a:95:9d:68:16", delimiter: "-", want: "00-0a-95-9d-68-16"},
		{name: "keep_delimiters", input: "00:0a:95:9d:68:16", delimiter: ":", want: "00:0a:95:9d:68:16"},
		{name: "remove_delimiters", input: "00:0a:95:9d:68:16", delimiter: "", want: "000a959d6816"},
		{name: "insert_delimiters", input: "000a959d6816", delimiter: ":", want: "00:0a:95:9d:68:16"},
		{name: "bare_stays_bare", input: "000a959d6816", delimiter: "", want: "000a959d6816"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReformatMAC(tt.input, tt.delimiter)
			if err != nil || got != tt.want {
				t.Fatalf("ReformatMAC() = (%q, %v), want (%q, nil)", got, err, tt.want)
			}
		})
	}

	if _, err := ReformatMAC("12345", "-"); !errors.Is(err, ErrInvalidMAC) {
		t.Fatalf("ReformatMAC(\"12345\") error = %v, want ErrInvalidMAC", err)
	}
}

func TestMACString(t *testing.T) {
	t.Parallel()

	if got, err := MACString(uint64(sampleMAC), DefaultMACDelimiter); err != nil || got != "00-0a-95-9d-68-16" {
		t.Fatalf("MACString(uint64) = (%q, %v)", got, err)
	}
	if got, err := MACString("000a959d6816", ":"); err != nil || got != "00:0a:95:9d:68:16" {
		t.Fatalf("MACString(string) = (%q, %v)", got, err)
	}
	if _, err := MACString(struct{ mac string }{"12345"}, "-"); !errors.Is(err, ErrInvalidMAC) {
		t.Fatalf("MACString(struct) error = %v, want ErrInvalidMAC", err)
	}
	if _, err := MACString(-1, "-"); !errors.Is(err, ErrInvalidMAC) {
		t.Fatalf("MACString(-1) error = %v, want ErrInvalidMAC", err)
	}
}

func TestParseMAC(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"00:0a:95:9d:68:16", "00-0a-95-9d-68-16", "000a959d6816"} {
		got, err := ParseMAC(input)
		if err != nil || got != sampleMAC {
			t.Fatalf("ParseMAC(%q) = (%d, %v), want (%d, nil)", input, got, err, uint64(sampleMAC))
		}
	}

	for _, bad := range []string{"00:0a:95", "zz:0a:95:9d:68:16"} {
		if _, err := ParseMAC(bad); !errors.Is(err, ErrInvalidMAC) {
			t.Fatalf("ParseMAC(%q) error = %v, want ErrInvalidMAC", bad, err)
		}
	}
}
