// Command priblix is an interactive terminal front-end: it loads a
// line-oriented corpus file and re-runs a fuzzy phrase search against it on
// every keystroke, rendering results with embedded highlight escapes.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"priblix"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	backspace   = 0x08
	del         = 0x7f
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: priblix <corpus-file>")
		os.Exit(1)
	}

	records, err := readLines(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "priblix:", err)
		os.Exit(1)
	}

	engine := priblix.NewDefault(records)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "priblix: terminal unavailable:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	_, rows, err := term.GetSize(fd)
	if err != nil {
		rows = 20
	}
	// One line below the reported height keeps the prompt from scrolling
	// the window as results print above it.
	n := rows + 1

	render(records, n)
	fmt.Fprint(os.Stdout, ">> ")

	query := ""
	in := bufio.NewReader(os.Stdin)
	for {
		b, err := in.ReadByte()
		if err != nil {
			slog.Error("priblix: read failed", slog.Any("err", err))
			return
		}

		switch {
		case b == 'q':
			return
		case b == backspace || b == del:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
		default:
			query += string(b)
		}

		if query == "" {
			render(records, n)
		} else {
			results := engine.Search(query, n-1, true)
			renderResults(results, n)
		}
		fmt.Fprintf(os.Stdout, ">> %s", query)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// render clears the screen and prints the first n records, padded above
// with blank lines so that, regardless of corpus size, the prompt ends up
// at the same fixed visual row.
func render(records []string, n int) {
	fmt.Fprint(os.Stdout, clearScreen)
	for i := 0; i < n-len(records); i++ {
		fmt.Fprintln(os.Stdout)
	}
	end := n
	if end > len(records) {
		end = len(records)
	}
	for _, r := range records[:end] {
		fmt.Fprintln(os.Stdout, r)
	}
}

// renderResults clears the screen and prints results in reverse rank order
// (best last, adjacent to the prompt), padded above to the same fixed
// visual row render uses.
func renderResults(results []priblix.Result, n int) {
	fmt.Fprint(os.Stdout, clearScreen)
	for i := 0; i < n-len(results); i++ {
		fmt.Fprintln(os.Stdout)
	}
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		fmt.Fprintln(os.Stdout, r.EditDistance, r.MinDist, r.Record)
	}
}
