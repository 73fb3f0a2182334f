package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

type repl struct {
	analyzer *textstats.Analyzer
}

func runInteractive(analyzer *textstats.Analyzer) {
	cfg := analyzer.Config()
	fmt.Println("Text statistics (interactive mode)")
	fmt.Printf("Top %d words, %d longest words\n", cfg.TopWords, cfg.LongestWords)
	fmt.Println("Type a line of text and press Enter. 'quit' or Ctrl+D exits.")
	fmt.Println()

	r := &repl{analyzer: analyzer}
	p := prompt.New(
		r.executor,
		func(d prompt.Document) []prompt.Suggest { return nil },
		prompt.OptionPrefix("textstats >> "),
		prompt.OptionTitle("textstats"),
	)
	p.Run()
}

func (r *repl) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	switch input {
	case "quit", "exit":
		fmt.Println("Goodbye!")
		os.Exit(0)
	}

	printStats(os.Stdout, r.analyzer.AnalyzeString(input))
	fmt.Println()
}
