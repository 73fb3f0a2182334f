// Package lexicon persists a vocabulary as a finite state transducer
// mapping each word to its occurrence count.
package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/blevesearch/vellum"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

// ErrClosed is returned by queries on a closed lexicon.
var ErrClosed = errors.New("lexicon: closed")

// Lexicon is a read-only word → count table backed by a vellum FST.
type Lexicon struct {
	fst  *vellum.FST
	path string
	mu   sync.RWMutex
}

// Build writes the words of v with their counts to an FST at path and
// opens the result.
func Build(path string, v *textstats.Vocabulary) (*Lexicon, error) {
	if err := write(path, v); err != nil {
		return nil, err
	}
	return Open(path)
}

// write inserts the vocabulary into a new FST file. Keys must reach the
// builder in lexicographic order.
func write(path string, v *textstats.Vocabulary) error {
	order := make([]uint32, v.Len())
	for i := range order {
		order[i] = uint32(i)
	}
	sort.Slice(order, func(a, b int) bool {
		return bytes.Compare(v.Bytes(order[a]), v.Bytes(order[b])) < 0
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create lexicon %s: %w", path, err)
	}

	builder, err := vellum.New(f, nil)
	if err != nil {
		f.Close()
		return fmt.Errorf("start lexicon builder: %w", err)
	}

	for _, i := range order {
		if err := builder.Insert(v.Bytes(i), uint64(v.Count(i))); err != nil {
			builder.Close()
			f.Close()
			return fmt.Errorf("insert %q: %w", v.Bytes(i), err)
		}
	}

	if err := builder.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish lexicon %s: %w", path, err)
	}
	return f.Close()
}

// Open maps an existing lexicon file.
func Open(path string) (*Lexicon, error) {
	fst, err := vellum.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	return &Lexicon{fst: fst, path: path}, nil
}

// Load opens a lexicon held in memory.
func Load(data []byte) (*Lexicon, error) {
	fst, err := vellum.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return &Lexicon{fst: fst}, nil
}

// Path returns the file the lexicon was opened from, if any.
func (l *Lexicon) Path() string {
	return l.path
}

// key normalizes a query word the same way the analyzer normalizes tokens.
func key(word string) []byte {
	return textstats.AppendNormalized(make([]byte, 0, len(word)), []byte(word))
}

// Count returns the number of occurrences recorded for word.
func (l *Lexicon) Count(word string) (uint32, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.fst == nil {
		return 0, false
	}
	val, exists, err := l.fst.Get(key(word))
	if err != nil || !exists {
		return 0, false
	}
	if val > math.MaxUint32 {
		val = math.MaxUint32
	}
	return uint32(val), true
}

// Contains reports whether word was recorded.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.Count(word)
	return ok
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.fst == nil {
		return 0
	}
	return l.fst.Len()
}

// Prefix returns up to limit words starting with prefix, in lexicographic
// order. A non-positive limit returns every match.
func (l *Lexicon) Prefix(prefix string, limit int) ([]textstats.WordCount, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.fst == nil {
		return nil, ErrClosed
	}

	start := key(prefix)
	results := []textstats.WordCount{}

	itr, err := l.fst.Iterator(start, nil)
	for err == nil {
		word, val := itr.Current()
		if !bytes.HasPrefix(word, start) {
			break
		}
		results = append(results, textstats.WordCount{Word: string(word), Count: uint32(val)})
		if limit > 0 && len(results) >= limit {
			break
		}
		err = itr.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, fmt.Errorf("iterate %q: %w", prefix, err)
	}

	return results, nil
}

// Close releases FST resources.
func (l *Lexicon) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fst != nil {
		err := l.fst.Close()
		l.fst = nil
		return err
	}
	return nil
}
