package textstats

// boundedHeap keeps at most limit items, discarding the smallest under
// less. The root is always the item that would be evicted next. Heap
// operations are written out instead of using container/heap to avoid
// boxing every item in an interface.
type boundedHeap[T any] struct {
	items []T
	limit int
	less  func(a, b T) bool
}

func newBoundedHeap[T any](limit int, less func(a, b T) bool) *boundedHeap[T] {
	limit = max(limit, 0)
	return &boundedHeap[T]{
		items: make([]T, 0, limit),
		limit: limit,
		less:  less,
	}
}

func (h *boundedHeap[T]) Len() int { return len(h.items) }

func (h *boundedHeap[T]) full() bool { return len(h.items) >= h.limit }

// min returns the root. The heap must not be empty.
func (h *boundedHeap[T]) min() T { return h.items[0] }

// offer inserts x if there is room, or replaces the root when x outranks
// it. It reports whether x was kept.
func (h *boundedHeap[T]) offer(x T) bool {
	if h.limit <= 0 {
		return false
	}
	if !h.full() {
		h.items = append(h.items, x)
		h.up(len(h.items) - 1)
		return true
	}
	if !h.less(h.items[0], x) {
		return false
	}
	h.items[0] = x
	h.down(0)
	return true
}

// drain empties the heap and returns its items best first.
func (h *boundedHeap[T]) drain() []T {
	out := make([]T, len(h.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = h.pop()
	}
	return out
}

func (h *boundedHeap[T]) pop() T {
	n := len(h.items) - 1
	root := h.items[0]
	h.items[0] = h.items[n]
	h.items = h.items[:n]
	if n > 0 {
		h.down(0)
	}
	return root
}

// up bubbles element j toward the root until the heap invariant is restored.
func (h *boundedHeap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

// down sifts element i toward the leaves until the heap invariant is restored.
func (h *boundedHeap[T]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		j := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			j = right
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}

// replaceMin overwrites the root with x and restores the heap invariant.
func (h *boundedHeap[T]) replaceMin(x T) {
	h.items[0] = x
	h.down(0)
}
