package textstats

import (
	"testing"
)

func TestAppendNormalized(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello,", "hello"},
		{"HELLO", "hello"},
		{"don't", "dont"},
		{"x86_64", "x"},
		{"...", ""},
		{"caf\xc3\xa9", "caf"},
		{"[@`{]", ""},
		{"MiXeD-CaSe", "mixedcase"},
	}

	for _, tt := range tests {
		input := []byte(tt.input)
		result := AppendNormalized(nil, input)
		if string(result) != tt.expected {
			t.Errorf("AppendNormalized(%q) = %q, want %q", tt.input, result, tt.expected)
		}
		if string(input) != tt.input {
			t.Errorf("AppendNormalized modified its input: %q", input)
		}
	}
}

func TestAppendNormalized_ReusesScratch(t *testing.T) {
	scratch := make([]byte, 0, 16)
	scratch = AppendNormalized(scratch[:0], []byte("First"))
	scratch = AppendNormalized(scratch[:0], []byte("Go"))
	if string(scratch) != "go" {
		t.Errorf("scratch = %q, want %q", scratch, "go")
	}
}

func TestLowercaseASCII(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HELLO", "hello"},
		{"Hello, World!", "hello, world!"},
		{"@[`{", "@[`{"},
		{"ÜBER", "Über"},
	}

	for _, tt := range tests {
		result := LowercaseASCII(tt.input)
		if result != tt.expected {
			t.Errorf("LowercaseASCII(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestStripNonAlpha(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello!", "hello"},
		{"a1b2c3", "abc"},
		{"12345", ""},
		{"ÜBER", "BER"},
	}

	for _, tt := range tests {
		result := StripNonAlpha(tt.input)
		if result != tt.expected {
			t.Errorf("StripNonAlpha(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizer_MatchesAppendNormalized(t *testing.T) {
	n := NewNormalizer()
	inputs := []string{"Hello,", "WORLD!", "it's", "x-ray", "???", "Ünïcödé", ""}

	for _, input := range inputs {
		if got, want := n.Normalize(input), Normalize(input); got != want {
			t.Errorf("Normalizer.Normalize(%q) = %q, Normalize = %q", input, got, want)
		}
	}
}

func TestNewNormalizerWithSteps(t *testing.T) {
	n := NewNormalizerWithSteps(StripNonAlpha)
	if got := n.Normalize("Go-Lang"); got != "GoLang" {
		t.Errorf("Normalize = %q, want %q", got, "GoLang")
	}

	empty := NewNormalizerWithSteps()
	if got := empty.Normalize("As Is"); got != "As Is" {
		t.Errorf("empty pipeline changed input: %q", got)
	}
}

func TestCountAlpha(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"Hello, World!", 10},
		{"1234", 0},
	}

	for _, tt := range tests {
		if got := CountAlpha(tt.input); got != tt.expected {
			t.Errorf("CountAlpha(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
