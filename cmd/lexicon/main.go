package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kerem-kaynak/textstats/pkg/lexicon"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	lexPath := os.Args[1]
	command := os.Args[2]

	lex, err := lexicon.Open(lexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	defer lex.Close()

	switch command {
	case "count":
		if len(os.Args) < 4 {
			fmt.Println("Error: count requires at least one word")
			os.Exit(1)
		}
		for _, word := range os.Args[3:] {
			count, _ := lex.Count(word)
			fmt.Printf("%s\t%d\n", word, count)
		}

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		word := os.Args[3]
		if lex.Contains(word) {
			fmt.Printf("'%s' exists in lexicon\n", word)
		} else {
			fmt.Printf("'%s' NOT in lexicon\n", word)
			os.Exit(1)
		}

	case "prefix":
		if len(os.Args) < 4 {
			fmt.Println("Error: prefix requires a prefix")
			os.Exit(1)
		}
		limit := 0
		if len(os.Args) > 4 {
			if limit, err = strconv.Atoi(os.Args[4]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid limit %q\n", os.Args[4])
				os.Exit(1)
			}
		}
		words, err := lex.Prefix(os.Args[3], limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, wc := range words {
			fmt.Printf("%s\t%d\n", wc.Word, wc.Count)
		}

	case "stats":
		fmt.Printf("Lexicon: %s\n", lexPath)
		fmt.Printf("Word count: %d\n", lex.Len())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: lexicon <lexicon.fst> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  count <word> [word...]  Show occurrence counts")
	fmt.Println("  contains <word>         Check if word exists")
	fmt.Println("  prefix <prefix> [limit] List words starting with prefix")
	fmt.Println("  stats                   Show lexicon statistics")
	fmt.Println()
	fmt.Println("Build a lexicon with: textstats -lexicon out.fst <file>")
}
