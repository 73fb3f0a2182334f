package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kerem-kaynak/textstats/pkg/corpus"
	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

const (
	defaultSize = 50_000
	boxWidth    = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var (
	line    = strings.Repeat("─", boxWidth)
	printer = message.NewPrinter(language.English)
)

type variant struct {
	name    string
	analyze func([]byte) textstats.Stats
}

func main() {
	size := flag.Int("size", defaultSize, "number of generated tokens")
	runs := flag.Int("runs", 5, "timed runs per variant")
	warmup := flag.Int("warmup", 1, "untimed runs per variant")
	flag.Parse()

	text := corpus.Generate(*size)
	printer.Printf("Analyzing %d bytes of text (%d tokens)...\n", len(text), *size)
	printer.Printf("Runs: %d (warmup: %d)\n\n", *runs, *warmup)

	analyzer := textstats.NewAnalyzer(textstats.DefaultConfig())
	variants := []variant{
		{name: "NAIVE", analyze: analyzer.AnalyzeNaive},
		{name: "OPTIMIZED", analyze: analyzer.Analyze},
	}

	results := make([]textstats.Stats, len(variants))
	timings := make([]time.Duration, len(variants))
	for i, v := range variants {
		results[i], timings[i] = measure(v.analyze, text, *runs, *warmup)
		printReport(v.name, results[i], timings[i])
		fmt.Println()
	}

	printHeader("TIMING")
	for i, v := range variants {
		printRow(v.name, timings[i], len(text))
	}
	printFooter()

	speedup := float64(timings[0]) / float64(max(timings[1], time.Nanosecond))
	fmt.Printf("\nSpeedup: %s%.1fx%s faster\n", colorGreen, speedup, colorReset)

	if !results[0].Equal(results[1]) {
		fmt.Fprintln(os.Stderr, "Error: naive and optimized results differ")
		os.Exit(1)
	}
}

// measure returns the result of the last run and the mean time per run.
func measure(fn func([]byte) textstats.Stats, text []byte, runs, warmup int) (textstats.Stats, time.Duration) {
	for i := 0; i < warmup; i++ {
		fn(text)
	}

	runs = max(runs, 1)
	var stats textstats.Stats
	start := time.Now()
	for i := 0; i < runs; i++ {
		stats = fn(text)
	}
	return stats, time.Since(start) / time.Duration(runs)
}

func printReport(name string, s textstats.Stats, elapsed time.Duration) {
	fmt.Printf("%s%s VERSION:%s\n", colorCyan, name, colorReset)
	printer.Printf("  Unique words:  %d\n", s.UniqueWords)
	printer.Printf("  Total chars:   %d\n", s.AlphaChars)
	printer.Printf("  Total words:   %d\n", s.TotalWords)
	fmt.Printf("  Top %d words:  %s\n", len(s.TopWords), formatTop(s.TopWords))
	fmt.Printf("  Longest words: %v\n", s.LongestWords)
	fmt.Printf("  Time:          %v\n", elapsed.Round(time.Microsecond))
}

func formatTop(words []textstats.WordCount) string {
	parts := make([]string, len(words))
	for i, wc := range words {
		parts[i] = printer.Sprintf("(%s, %d)", wc.Word, wc.Count)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func printRow(name string, elapsed time.Duration, size int) {
	mbPerSec := float64(size) / (1 << 20) / elapsed.Seconds()
	msPerOp := float64(elapsed.Microseconds()) / 1000

	// Build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.2f MB/s %10.3f ms", name, mbPerSec, msPerOp)
	padded := padLine(plain)

	colored := fmt.Sprintf("  %-26s %s%10.2f%s MB/s %s%10.3f%s ms",
		name,
		colorGreen, mbPerSec, colorReset,
		colorYellow, msPerOp, colorReset)

	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
