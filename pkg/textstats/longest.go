package textstats

// Ranked is one entry of the longest-word set.
type Ranked struct {
	Index  uint32
	Length int
}

// rankedWorse orders entries so the heap root is the next to evict: the
// shortest word, and among equally short words the one seen last.
func rankedWorse(a, b Ranked) bool {
	if a.Length != b.Length {
		return a.Length < b.Length
	}
	return a.Index > b.Index
}

// LongestSet tracks the L longest distinct vocabulary entries offered to
// it. A word already in the set is never added twice, and an entry of the
// same length as the current minimum never displaces it.
type LongestSet struct {
	heap *boundedHeap[Ranked]
}

// NewLongestSet creates a set holding at most limit entries.
func NewLongestSet(limit int) *LongestSet {
	return &LongestSet{heap: newBoundedHeap(limit, rankedWorse)}
}

// Offer proposes vocabulary entry index with the given length.
func (s *LongestSet) Offer(index uint32, length int) {
	h := s.heap
	if h.limit <= 0 {
		return
	}
	if h.full() && length <= h.min().Length {
		return
	}
	if s.contains(index) {
		return
	}
	if !h.full() {
		h.offer(Ranked{Index: index, Length: length})
		return
	}
	h.replaceMin(Ranked{Index: index, Length: length})
}

// contains scans the set for index. L is small enough that a backwards
// linear scan beats any side index.
func (s *LongestSet) contains(index uint32) bool {
	items := s.heap.items
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Index == index {
			return true
		}
	}
	return false
}

// Len returns the number of entries held.
func (s *LongestSet) Len() int {
	return s.heap.Len()
}

// Ranked empties the set and returns its entries by length descending,
// ties by ascending insertion index.
func (s *LongestSet) Ranked() []Ranked {
	return s.heap.drain()
}
