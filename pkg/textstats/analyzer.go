package textstats

const (
	// DefaultTopWords is K, the length of the most-frequent list.
	DefaultTopWords = 10
	// DefaultLongestWords is L, the length of the longest-words list.
	DefaultLongestWords = 5
)

// Config sizes the summaries an Analyzer produces.
type Config struct {
	TopWords     int
	LongestWords int
}

// DefaultConfig returns K = 10 and L = 5.
func DefaultConfig() Config {
	return Config{
		TopWords:     DefaultTopWords,
		LongestWords: DefaultLongestWords,
	}
}

// Analyzer computes Stats over byte buffers. It holds no state between
// calls and may be shared freely.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer. Non-positive sizes fall back to the
// defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	if cfg.TopWords <= 0 {
		cfg.TopWords = DefaultTopWords
	}
	if cfg.LongestWords <= 0 {
		cfg.LongestWords = DefaultLongestWords
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze summarizes text with the default configuration.
func Analyze(text []byte) Stats {
	return NewAnalyzer(DefaultConfig()).Analyze(text)
}

// Analyze summarizes text in a single pass. text is not modified.
func (a *Analyzer) Analyze(text []byte) Stats {
	stats, _ := a.AnalyzeVocabulary(text)
	return stats
}

// AnalyzeString is Analyze for string input.
func (a *Analyzer) AnalyzeString(text string) Stats {
	return a.Analyze([]byte(text))
}

// AnalyzeVocabulary is Analyze that also hands the vocabulary table to the
// caller.
func (a *Analyzer) AnalyzeVocabulary(text []byte) (Stats, *Vocabulary) {
	vocab := NewVocabulary(len(text))
	longest := NewLongestSet(a.cfg.LongestWords)
	scratch := make([]byte, 0, 64)
	alphaChars := 0

	pos := 0
	for {
		start, end, ok := nextToken(text, pos)
		if !ok {
			break
		}
		pos = end

		scratch = AppendNormalized(scratch[:0], text[start:end])
		alphaChars += len(scratch)
		if len(scratch) == 0 {
			continue
		}

		i := vocab.Intern(scratch)
		vocab.Increment(i)
		longest.Offer(i, len(scratch))
	}

	return assemble(vocab, longest, alphaChars, a.cfg.TopWords), vocab
}
