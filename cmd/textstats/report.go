package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

var printer = message.NewPrinter(language.English)

func printReport(w io.Writer, rep report) {
	printer.Fprintf(w, "Source:        %s (%d bytes)\n", rep.Source, rep.Bytes)
	printStats(w, rep.Stats)
	fmt.Fprintf(w, "  Time:          %s\n", rep.Elapsed)

	if len(rep.Families) > 0 {
		fmt.Fprintln(w, "  Word families:")
		for _, f := range rep.Families {
			printer.Fprintf(w, "    %-16s %8d  %s\n", f.Stem, f.Count, strings.Join(f.Words, ", "))
		}
	}
	if rep.Lexicon != "" {
		fmt.Fprintf(w, "  Lexicon:       %s\n", rep.Lexicon)
	}
}

func printStats(w io.Writer, s textstats.Stats) {
	printer.Fprintf(w, "  Unique words:  %d\n", s.UniqueWords)
	printer.Fprintf(w, "  Total chars:   %d\n", s.AlphaChars)
	printer.Fprintf(w, "  Total words:   %d\n", s.TotalWords)

	top := make([]string, len(s.TopWords))
	for i, wc := range s.TopWords {
		top[i] = printer.Sprintf("%s (%d)", wc.Word, wc.Count)
	}
	fmt.Fprintf(w, "  Top words:     %s\n", strings.Join(top, ", "))
	fmt.Fprintf(w, "  Longest words: %s\n", strings.Join(s.LongestWords, ", "))
}
