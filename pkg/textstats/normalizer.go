package textstats

import (
	"strings"
)

// caseBit turns an ASCII upper-case letter into its lower-case form.
const caseBit = 0x20

// AppendNormalized appends the lower-cased alphabetic bytes of token to dst
// and returns the extended slice. token is not modified.
func AppendNormalized(dst, token []byte) []byte {
	for _, b := range token {
		if IsAlpha(b) {
			dst = append(dst, b|caseBit)
		}
	}
	return dst
}

// Normalize returns the normalized word of a raw token. The empty string
// means the token carries no word.
func Normalize(token string) string {
	return string(AppendNormalized(make([]byte, 0, len(token)), []byte(token)))
}

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
// It backs the naive variant; the optimized path fuses the same steps
// into the tokenizer loop.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer with the default pipeline.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		steps: []NormalizerFunc{
			LowercaseASCII,
			StripNonAlpha,
		},
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// LowercaseASCII lower-cases ASCII letters and leaves every other byte alone.
func LowercaseASCII(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b |= caseBit
		}
		result.WriteByte(b)
	}
	return result.String()
}

// StripNonAlpha removes every byte that is not an ASCII letter.
func StripNonAlpha(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if IsAlpha(s[i]) {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}

// CountAlpha returns the number of ASCII letters in s.
func CountAlpha(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsAlpha(s[i]) {
			n++
		}
	}
	return n
}
