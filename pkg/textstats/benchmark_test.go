package textstats

import (
	"fmt"
	"strings"
	"testing"
)

// benchText mirrors the harness corpus: mostly unique words with a base
// vocabulary mixed in every twentieth token.
func benchText(tokens int) []byte {
	base := []string{"performance", "optimization", "memory", "speed", "benchmark", "algorithm"}
	words := make([]string, tokens)
	for i := range words {
		if i%20 < 19 {
			words[i] = fmt.Sprintf("uniqueword%d", i)
		} else {
			words[i] = base[i%len(base)]
		}
	}
	return []byte(strings.Join(words, " "))
}

func BenchmarkAnalyze(b *testing.B) {
	text := benchText(50_000)
	a := NewAnalyzer(DefaultConfig())

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Analyze(text)
	}
}

func BenchmarkAnalyzeNaive(b *testing.B) {
	text := benchText(50_000)
	a := NewAnalyzer(DefaultConfig())

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.AnalyzeNaive(text)
	}
}

func BenchmarkAnalyze_SmallVocabulary(b *testing.B) {
	text := []byte(cycleWords([]string{"rust", "rust", "go", "c", "zig"}, 50_000))
	a := NewAnalyzer(DefaultConfig())

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Analyze(text)
	}
}

func BenchmarkVocabulary_Intern(b *testing.B) {
	v := NewVocabulary(1 << 16)
	word := []byte("benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Increment(v.Intern(word))
	}
}

func BenchmarkAppendNormalized(b *testing.B) {
	token := []byte("Optimization,")
	scratch := make([]byte, 0, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scratch = AppendNormalized(scratch[:0], token)
	}
}
