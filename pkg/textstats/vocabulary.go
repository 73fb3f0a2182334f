package textstats

// defaultVocabularySlots is the initial table capacity when no better
// hint is available.
const defaultVocabularySlots = 4096

// span locates one interned word inside the arena.
type span struct {
	off uint32
	len uint32
}

// Vocabulary maps normalized words to dense insertion indices and counts.
// All interned words live in one backing arena; callers may pass scratch
// buffers to Intern and reuse them immediately.
type Vocabulary struct {
	index  map[string]uint32
	arena  []byte
	spans  []span
	counts []uint32
	total  uint64
}

// NewVocabulary creates an empty table. sizeHint is the input size in
// bytes and bounds the arena: normalized words never exceed their input.
func NewVocabulary(sizeHint int) *Vocabulary {
	slots := defaultVocabularySlots
	if sizeHint > 0 && sizeHint/8 < slots {
		slots = sizeHint/8 + 1
	}
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Vocabulary{
		index:  make(map[string]uint32, slots),
		arena:  make([]byte, 0, sizeHint),
		spans:  make([]span, 0, slots),
		counts: make([]uint32, 0, slots),
	}
}

// Intern returns the index of word, adding it with a zero count on first
// sight. Indices are assigned densely from 0 in order of first appearance.
func (v *Vocabulary) Intern(word []byte) uint32 {
	// The map lookup with a converted key does not allocate.
	if i, ok := v.index[string(word)]; ok {
		return i
	}

	i := uint32(len(v.spans))
	off := uint32(len(v.arena))
	v.arena = append(v.arena, word...)
	v.spans = append(v.spans, span{off: off, len: uint32(len(word))})
	v.counts = append(v.counts, 0)
	v.index[string(word)] = i
	return i
}

// Increment adds one occurrence to entry i.
func (v *Vocabulary) Increment(i uint32) {
	v.counts[i]++
	v.total++
}

// Lookup returns the index of word without interning it.
func (v *Vocabulary) Lookup(word []byte) (uint32, bool) {
	i, ok := v.index[string(word)]
	return i, ok
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.spans)
}

// Total returns the sum of all counts.
func (v *Vocabulary) Total() uint64 {
	return v.total
}

// Bytes returns the stored bytes of entry i. The slice aliases the arena
// and must not be modified.
func (v *Vocabulary) Bytes(i uint32) []byte {
	s := v.spans[i]
	return v.arena[s.off : s.off+s.len : s.off+s.len]
}

// Word returns entry i as a string.
func (v *Vocabulary) Word(i uint32) string {
	return string(v.Bytes(i))
}

// WordLen returns the length in bytes of entry i.
func (v *Vocabulary) WordLen(i uint32) int {
	return int(v.spans[i].len)
}

// Count returns the number of occurrences of entry i.
func (v *Vocabulary) Count(i uint32) uint32 {
	return v.counts[i]
}

// Each calls fn for every entry in insertion order.
func (v *Vocabulary) Each(fn func(word []byte, count, index uint32)) {
	for i := range v.spans {
		idx := uint32(i)
		fn(v.Bytes(idx), v.counts[i], idx)
	}
}
