package textstats

import (
	"bytes"
	"cmp"
	"slices"
)

// AnalyzeNaive summarizes text with the default configuration using the
// naive variant.
func AnalyzeNaive(text []byte) Stats {
	return NewAnalyzer(DefaultConfig()).AnalyzeNaive(text)
}

type naiveEntry struct {
	word  string
	count uint32
}

// AnalyzeNaive is the straightforward rendition of Analyze: it splits the
// whole input into fields, normalizes each one through a string pipeline,
// and fully sorts the vocabulary for both summaries. It produces the same
// Stats as Analyze and exists as a baseline for benchmarks and tests.
func (a *Analyzer) AnalyzeNaive(text []byte) Stats {
	norm := NewNormalizer()
	fields := bytes.FieldsFunc(text, func(r rune) bool { return r <= ' ' })

	freq := make(map[string]*naiveEntry)
	var entries []*naiveEntry
	alphaChars := 0
	total := 0

	for _, field := range fields {
		raw := string(field)
		alphaChars += CountAlpha(raw)

		word := norm.Normalize(raw)
		if word == "" {
			continue
		}
		total++

		e, ok := freq[word]
		if !ok {
			e = &naiveEntry{word: word}
			freq[word] = e
			entries = append(entries, e)
		}
		e.count++
	}

	byCount := slices.Clone(entries)
	slices.SortStableFunc(byCount, func(x, y *naiveEntry) int {
		return cmp.Compare(y.count, x.count)
	})
	top := make([]WordCount, min(a.cfg.TopWords, len(byCount)))
	for i := range top {
		top[i] = WordCount{Word: byCount[i].word, Count: byCount[i].count}
	}

	byLength := slices.Clone(entries)
	slices.SortStableFunc(byLength, func(x, y *naiveEntry) int {
		return cmp.Compare(len(y.word), len(x.word))
	})
	longest := make([]string, min(a.cfg.LongestWords, len(byLength)))
	for i := range longest {
		longest[i] = byLength[i].word
	}

	return Stats{
		UniqueWords:  len(entries),
		AlphaChars:   alphaChars,
		TotalWords:   total,
		TopWords:     top,
		LongestWords: longest,
	}
}
