package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kerem-kaynak/textstats/pkg/corpus"
	"github.com/kerem-kaynak/textstats/pkg/lexicon"
	"github.com/kerem-kaynak/textstats/pkg/stems"
	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

type options struct {
	gen         int
	fold        bool
	jsonOut     bool
	top         int
	longest     int
	lexiconPath string
	stemLang    string
	families    int
	interactive bool
	verbose     bool
}

// report is the JSON shape of one analysis.
type report struct {
	Source   string          `json:"source"`
	Bytes    int             `json:"bytes"`
	Elapsed  string          `json:"elapsed"`
	Stats    textstats.Stats `json:"stats"`
	Families []stems.Family  `json:"families,omitempty"`
	Lexicon  string          `json:"lexicon,omitempty"`
}

func main() {
	var opts options
	flag.IntVar(&opts.gen, "gen", 0, "analyze N generated benchmark tokens instead of a file")
	flag.BoolVar(&opts.fold, "fold", false, "transliterate accented Latin letters to ASCII first")
	flag.BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	flag.IntVar(&opts.top, "top", textstats.DefaultTopWords, "number of most frequent words")
	flag.IntVar(&opts.longest, "longest", textstats.DefaultLongestWords, "number of longest words")
	flag.StringVar(&opts.lexiconPath, "lexicon", "", "write the vocabulary as an FST lexicon to this path")
	flag.StringVar(&opts.stemLang, "stems", "", "group words into families with this snowball language")
	flag.IntVar(&opts.families, "families", 10, "number of word families to report")
	flag.BoolVar(&opts.interactive, "i", false, "interactive mode: analyze each entered line")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	analyzer := textstats.NewAnalyzer(textstats.Config{
		TopWords:     opts.top,
		LongestWords: opts.longest,
	})

	if opts.interactive {
		runInteractive(analyzer)
		return
	}

	if err := run(analyzer, opts, flag.Args(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: textstats [flags] <file|->")
	fmt.Fprintln(os.Stderr, "       textstats [flags] -gen N")
	fmt.Fprintln(os.Stderr, "       textstats -i")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func run(analyzer *textstats.Analyzer, opts options, args []string, logger *slog.Logger) error {
	src, name, err := openInput(opts.gen, args)
	if err != nil {
		return err
	}
	defer src.Close()

	text := src.Bytes()
	logger.Debug("input loaded", "source", name, "bytes", len(text), "mapped", src.Mapped())

	if opts.fold {
		text, err = corpus.Fold(text)
		if err != nil {
			return err
		}
		logger.Debug("input folded", "bytes", len(text))
	}

	start := time.Now()
	stats, vocab := analyzer.AnalyzeVocabulary(text)
	elapsed := time.Since(start)
	logger.Debug("analysis done", "elapsed", elapsed, "unique_words", stats.UniqueWords)

	rep := report{
		Source:  name,
		Bytes:   len(text),
		Elapsed: elapsed.Round(time.Microsecond).String(),
		Stats:   stats,
	}

	if opts.stemLang != "" {
		grouper, err := stems.NewGrouper(opts.stemLang, stems.DefaultCacheSize)
		if err != nil {
			return err
		}
		rep.Families = grouper.Group(vocab, opts.families)
		logger.Debug("families grouped", "language", opts.stemLang, "cached_stems", grouper.CacheSize())
	}

	if opts.lexiconPath != "" {
		lex, err := lexicon.Build(opts.lexiconPath, vocab)
		if err != nil {
			return err
		}
		logger.Debug("lexicon written", "path", opts.lexiconPath, "words", lex.Len())
		if err := lex.Close(); err != nil {
			return err
		}
		rep.Lexicon = opts.lexiconPath
	}

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(os.Stdout, rep)
	return nil
}

func openInput(gen int, args []string) (*corpus.Source, string, error) {
	if gen > 0 {
		return corpus.FromBytes(corpus.Generate(gen)), fmt.Sprintf("generated(%d)", gen), nil
	}
	if len(args) != 1 {
		usage()
		return nil, "", fmt.Errorf("expected one input path, got %d", len(args))
	}

	src, err := corpus.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return src, args[0], nil
}
