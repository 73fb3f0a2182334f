// Package corpus supplies input text to the analyzer harnesses: the
// synthetic benchmark corpus, files on disk, and optional ASCII folding.
package corpus

import (
	"strconv"
)

// BaseWords is the recurring vocabulary mixed into generated text.
var BaseWords = []string{
	"rust", "performance", "optimization", "memory", "speed", "efficiency",
	"benchmark", "algorithm", "data", "structure", "programming", "language",
	"system", "compile", "zero", "cost", "abstraction", "ownership", "borrow",
	"lifetime", "trait", "generic", "macro", "unsafe", "async", "await",
	"concurrency", "parallelism", "thread", "mutex", "channel", "vector",
	"hashmap", "iterator", "closure", "pattern", "matching", "error", "handling",
	"result", "option", "reference", "pointer", "stack", "heap", "allocation",
	"deallocation", "garbage", "collection", "cargo", "crate", "module",
	"function", "method", "struct", "enum", "impl", "type", "inference",
	"syntax", "semantic", "compiler", "llvm", "inline",
	"monomorphization", "specialization", "documentation", "test", "integration",
}

// uniquePrefix starts every generated one-off word.
const uniquePrefix = "uniqueword"

// Generate returns size space-separated tokens. Token i is a one-off
// "uniqueword<i>" unless i%20 == 19, in which case it is drawn from
// BaseWords.
func Generate(size int) []byte {
	if size <= 0 {
		return []byte{}
	}

	buf := make([]byte, 0, size*(len(uniquePrefix)+7))
	for i := 0; i < size; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		if i%20 < 19 {
			buf = append(buf, uniquePrefix...)
			buf = strconv.AppendInt(buf, int64(i), 10)
		} else {
			buf = append(buf, BaseWords[i%len(BaseWords)]...)
		}
	}
	return buf
}

// Cycle repeats words until the text holds exactly tokens tokens.
func Cycle(words []string, tokens int) []byte {
	if tokens <= 0 || len(words) == 0 {
		return []byte{}
	}

	var buf []byte
	for i := 0; i < tokens; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, words[i%len(words)]...)
	}
	return buf
}
