package textstats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func vocabularyOf(words ...string) *Vocabulary {
	v := NewVocabulary(0)
	for _, w := range words {
		v.Increment(v.Intern([]byte(w)))
	}
	return v
}

func TestTopWords(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		k        int
		expected []WordCount
	}{
		{
			name:     "empty vocabulary",
			k:        10,
			expected: []WordCount{},
		},
		{
			name:  "by count",
			words: []string{"one", "one", "two", "two", "two", "three"},
			k:     10,
			expected: []WordCount{
				{Word: "two", Count: 3},
				{Word: "one", Count: 2},
				{Word: "three", Count: 1},
			},
		},
		{
			name:  "ties keep insertion order",
			words: []string{"d", "c", "b", "a", "b"},
			k:     3,
			expected: []WordCount{
				{Word: "b", Count: 2},
				{Word: "d", Count: 1},
				{Word: "c", Count: 1},
			},
		},
		{
			name:     "k of zero",
			words:    []string{"a"},
			k:        0,
			expected: []WordCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TopWords(vocabularyOf(tt.words...), tt.k)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("TopWords mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTopWords_Truncates(t *testing.T) {
	// K+1 distinct words each seen once: the last one falls off.
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}
	result := TopWords(vocabularyOf(words...), DefaultTopWords)

	if len(result) != DefaultTopWords {
		t.Fatalf("len = %d, want %d", len(result), DefaultTopWords)
	}
	for i, wc := range result {
		if wc.Word != words[i] || wc.Count != 1 {
			t.Errorf("result[%d] = %+v, want {%s 1}", i, wc, words[i])
		}
	}
}
