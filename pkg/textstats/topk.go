package textstats

// WordCount is one entry of the top-words list.
type WordCount struct {
	Word  string `json:"word"`
	Count uint32 `json:"count"`
}

type counted struct {
	index uint32
	count uint32
}

// countedWorse puts the least frequent, latest-seen entry at the heap root.
func countedWorse(a, b counted) bool {
	if a.count != b.count {
		return a.count < b.count
	}
	return a.index > b.index
}

// TopWords returns the k most frequent entries of v ordered by count
// descending, ties by ascending insertion index.
func TopWords(v *Vocabulary, k int) []WordCount {
	if k <= 0 {
		return []WordCount{}
	}

	h := newBoundedHeap(min(k, v.Len()), countedWorse)
	for i, c := range v.counts {
		h.offer(counted{index: uint32(i), count: c})
	}

	ranked := h.drain()
	out := make([]WordCount, len(ranked))
	for i, r := range ranked {
		out[i] = WordCount{Word: v.Word(r.index), Count: r.count}
	}
	return out
}
