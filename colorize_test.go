package tidyjson

import (
	"strings"
	"testing"
)

func TestColorize_NoColorPaletteIsPassthrough(t *testing.T) {
	src := Indent([]byte(`{"a":1,"b":[true,false,null],"c":"x"}`), nil)
	got := Colorize(src, NoColorPalette(nil))
	if got != string(src) {
		t.Fatalf("no-color output differs from input\nexpected: %q\nactual: %q", src, got)
	}
	if strings.ContainsRune(got, '') {
		t.Fatalf("expected output without color codes, found escape sequence: %q", got)
	}
}

func TestScanStringToken(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: `"abc" rest`, want: `"abc"`},
		{src: `"a\"b",`, want: `"a\"b"`},
		{src: `"a\\",`, want: `"a\\"`},
		{src: `"unterminated`, want: `"unterminated`},
	}
	for _, tt := range tests {
		end := scanStringToken([]byte(tt.src), 0)
		if got := tt.src[:end]; got != tt.want {
			t.Fatalf("scanStringToken(%q) = %q, expected %q", tt.src, got, tt.want)
		}
	}
}

func TestScanNumberToken(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: `123,`, want: `123`},
		{src: `-1.5e+10]`, want: `-1.5e+10`},
		{src: `0}`, want: `0`},
	}
	for _, tt := range tests {
		end := scanNumberToken([]byte(tt.src), 0)
		if got := tt.src[:end]; got != tt.want {
			t.Fatalf("scanNumberToken(%q) = %q, expected %q", tt.src, got, tt.want)
		}
	}
}

func TestResolvePalette(t *testing.T) {
	for _, name := range PaletteNames() {
		if _, err := ResolvePalette(name, nil, false); err != nil {
			t.Fatalf("ResolvePalette(%q) failed: %v", name, err)
		}
	}
	if _, err := ResolvePalette("does-not-exist", nil, true); err == nil {
		t.Fatalf("expected error for unknown palette")
	}
	if _, err := ResolvePalette("", nil, false); err != nil {
		t.Fatalf("empty name should resolve to default: %v", err)
	}
	if _, err := ResolvePalette("  JQ  ", nil, false); err != nil {
		t.Fatalf("names should be trimmed and case-folded: %v", err)
	}
}
