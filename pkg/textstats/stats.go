package textstats

// Stats is the summary produced by one analysis.
type Stats struct {
	UniqueWords  int         `json:"unique_words"`
	AlphaChars   int         `json:"alpha_chars"`
	TotalWords   int         `json:"total_words"`
	TopWords     []WordCount `json:"top_words"`
	LongestWords []string    `json:"longest_words"`
}

// Equal reports whether two summaries match field by field.
func (s Stats) Equal(o Stats) bool {
	if s.UniqueWords != o.UniqueWords || s.AlphaChars != o.AlphaChars || s.TotalWords != o.TotalWords {
		return false
	}
	if len(s.TopWords) != len(o.TopWords) || len(s.LongestWords) != len(o.LongestWords) {
		return false
	}
	for i := range s.TopWords {
		if s.TopWords[i] != o.TopWords[i] {
			return false
		}
	}
	for i := range s.LongestWords {
		if s.LongestWords[i] != o.LongestWords[i] {
			return false
		}
	}
	return true
}

// assemble builds the final record from the pieces of one pass.
func assemble(v *Vocabulary, longest *LongestSet, alphaChars, topK int) Stats {
	ranked := longest.Ranked()
	words := make([]string, len(ranked))
	for i, r := range ranked {
		words[i] = v.Word(r.Index)
	}

	return Stats{
		UniqueWords:  v.Len(),
		AlphaChars:   alphaChars,
		TotalWords:   int(v.Total()),
		TopWords:     TopWords(v, topK),
		LongestWords: words,
	}
}
