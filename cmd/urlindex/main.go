// Command urlindex is a one-shot CLI front-end: it reads a corpus of
// URL-like lines from standard input, builds an index with the URL
// tokenizer, and prints the strict phrase-search results for a single
// query given on the command line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"priblix"
	"priblix/tokenize"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "wrong number of arguments, got", len(os.Args)-1)
		os.Exit(1)
	}
	query := os.Args[1]

	var records []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "urlindex:", err)
		os.Exit(1)
	}

	config := priblix.DefaultConfig()
	config.Tokenizer = tokenize.URL{}

	engine := priblix.New(records, config)

	for _, result := range engine.Search(query, len(records), false) {
		fmt.Println(result.MinDist, result.Record)
	}
}
