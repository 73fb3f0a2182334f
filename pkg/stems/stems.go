// Package stems groups vocabulary entries into word families that share a
// Snowball stem.
package stems

import (
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

// DefaultCacheSize is the number of stems kept in the LRU cache.
const DefaultCacheSize = 100_000

// ErrUnsupportedLanguage is returned for languages snowball cannot stem.
var ErrUnsupportedLanguage = errors.New("stems: unsupported language")

// Family is a set of vocabulary words sharing one stem.
type Family struct {
	Stem  string   `json:"stem"`
	Count uint64   `json:"count"`
	Words []string `json:"words"`

	first uint32
}

// Grouper stems words with a per-language Snowball stemmer.
type Grouper struct {
	language string
	cache    *lru.Cache[string, string]
}

// NewGrouper creates a grouper for language ("english", "french", ...).
// A non-positive cacheSize disables caching.
func NewGrouper(language string, cacheSize int) (*Grouper, error) {
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	g := &Grouper{language: language}
	if cacheSize > 0 {
		cache, err := lru.New[string, string](cacheSize)
		if err != nil {
			return nil, err
		}
		g.cache = cache
	}
	return g, nil
}

// Language returns the stemmer language.
func (g *Grouper) Language() string {
	return g.language
}

// Stem returns the stem of word, or word itself if the stemmer fails.
func (g *Grouper) Stem(word string) string {
	if g.cache == nil {
		return g.stemUncached(word)
	}

	if stem, ok := g.cache.Get(word); ok {
		return stem
	}

	stem := g.stemUncached(word)
	g.cache.Add(word, stem)
	return stem
}

func (g *Grouper) stemUncached(word string) string {
	stem, err := snowball.Stem(word, g.language, true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// Group folds the vocabulary into families ordered by total count
// descending, ties by the insertion index of each family's first word.
// Words inside a family keep insertion order. n <= 0 returns all families.
func (g *Grouper) Group(v *textstats.Vocabulary, n int) []Family {
	byStem := make(map[string]int)
	families := []Family{}

	v.Each(func(word []byte, count, index uint32) {
		w := string(word)
		stem := g.Stem(w)

		i, ok := byStem[stem]
		if !ok {
			i = len(families)
			byStem[stem] = i
			families = append(families, Family{Stem: stem, first: index})
		}
		families[i].Count += uint64(count)
		families[i].Words = append(families[i].Words, w)
	})

	sort.SliceStable(families, func(a, b int) bool {
		if families[a].Count != families[b].Count {
			return families[a].Count > families[b].Count
		}
		return families[a].first < families[b].first
	})

	if n > 0 && len(families) > n {
		families = families[:n]
	}
	return families
}

// CacheSize returns the number of cached stems.
func (g *Grouper) CacheSize() int {
	if g.cache == nil {
		return 0
	}
	return g.cache.Len()
}

// ClearCache drops every cached stem.
func (g *Grouper) ClearCache() {
	if g.cache != nil {
		g.cache.Purge()
	}
}

// CacheEnabled returns true if caching is enabled.
func (g *Grouper) CacheEnabled() bool {
	return g.cache != nil
}
