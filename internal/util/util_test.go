// internal/util/util_test.go
package util

import (
	"reflect"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "timeout", max: 10, want: "timeout"},
		{name: "ascii truncation", in: "connection refused", max: 10, want: "connection…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
		{name: "zero width", in: "anything", max: 0, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestWrapWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "fits", in: "All metrics look good", width: 40, want: []string{"All metrics look good"}},
		{name: "wraps", in: "Consider optimizing model inference time", width: 20, want: []string{"Consider optimizing", "model inference time"}},
		{name: "long word", in: "a supercalifragilistic b", width: 5, want: []string{"a", "supercalifragilistic", "b"}},
		{name: "empty", in: "  ", width: 10, want: []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WrapWords(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("WrapWords(%q,%d)=%q want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
