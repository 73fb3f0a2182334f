package corpus

import (
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold transliterates accented Latin letters to plain ASCII, so "Café"
// becomes "Cafe". It decomposes with NFKD, drops combining marks, and
// recomposes what is left. The analyzer itself only sees ASCII letters;
// folding is an opt-in step before analysis.
func Fold(text []byte) ([]byte, error) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.Bytes(t, text)
	if err != nil {
		return nil, fmt.Errorf("fold text: %w", err)
	}
	return out, nil
}
