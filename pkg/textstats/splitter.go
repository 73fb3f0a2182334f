package textstats

// RawToken is a maximal run of non-whitespace bytes in the input.
type RawToken struct {
	Text  []byte
	Start int
	End   int
}

// IsSpace reports whether b separates tokens. Any byte <= 0x20 does.
func IsSpace(b byte) bool {
	return b <= ' '
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// nextToken returns the bounds of the first raw token at or after pos.
// ok is false once the buffer holds no further token.
func nextToken(text []byte, pos int) (start, end int, ok bool) {
	for pos < len(text) && IsSpace(text[pos]) {
		pos++
	}
	if pos == len(text) {
		return pos, pos, false
	}

	start = pos
	for pos < len(text) && !IsSpace(text[pos]) {
		pos++
	}
	return start, pos, true
}

// SplitTokens splits text into raw tokens. The returned slices alias text.
func SplitTokens(text []byte) []RawToken {
	tokens := []RawToken{}

	pos := 0
	for {
		start, end, ok := nextToken(text, pos)
		if !ok {
			break
		}
		tokens = append(tokens, RawToken{
			Text:  text[start:end:end],
			Start: start,
			End:   end,
		})
		pos = end
	}

	return tokens
}
