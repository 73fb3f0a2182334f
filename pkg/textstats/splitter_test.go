package textstats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []RawToken
	}{
		{
			input: "Hello, world!",
			expected: []RawToken{
				{Text: []byte("Hello,"), Start: 0, End: 6},
				{Text: []byte("world!"), Start: 7, End: 13},
			},
		},
		{
			input:    "",
			expected: []RawToken{},
		},
		{
			input:    " \t\r\n\x00\x1f ",
			expected: []RawToken{},
		},
		{
			input: "\x01a\x7fb\x02",
			expected: []RawToken{
				{Text: []byte("a\x7fb"), Start: 1, End: 4},
			},
		},
		{
			input: "  one   two ",
			expected: []RawToken{
				{Text: []byte("one"), Start: 2, End: 5},
				{Text: []byte("two"), Start: 8, End: 11},
			},
		},
		{
			input: "caf\xc3\xa9",
			expected: []RawToken{
				{Text: []byte("caf\xc3\xa9"), Start: 0, End: 5},
			},
		},
	}

	for _, tt := range tests {
		result := SplitTokens([]byte(tt.input))
		if diff := cmp.Diff(tt.expected, result); diff != "" {
			t.Errorf("SplitTokens(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestIsSpace(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := b <= 0x20
		if got := IsSpace(byte(b)); got != want {
			t.Errorf("IsSpace(%#x) = %v, want %v", b, got, want)
		}
	}
}

func TestIsAlpha(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if got := IsAlpha(byte(b)); got != want {
			t.Errorf("IsAlpha(%#x) = %v, want %v", b, got, want)
		}
	}
}
