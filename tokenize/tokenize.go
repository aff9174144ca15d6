// Package tokenize splits records and queries into terms and records, for
// each term, the character offset and word index it started at. Splitting
// strategy is pluggable: Default treats any run of non-word runes as a
// separator, URL additionally breaks on a handful of URL-structure runes and
// treats digit runs as their own tokens.
package tokenize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Token is one term extracted from a record, with enough position
// information to reconstruct both a character-range highlight and a
// word-distance proximity score.
type Token struct {
	Text      string
	CharStart int
	WordIndex int
}

// Tokenizer splits a record into a sequence of terms. Implementations must
// be deterministic and must not depend on anything beyond the input string.
type Tokenizer interface {
	// Split returns the raw substrings of record, in order, that Tokenize
	// will turn into terms. Separators are dropped entirely, matching the
	// behavior of a regex split on a separator pattern.
	Split(record string) []string
}

var fold = cases.Fold()

// Tokenize runs t over record, case-folds each resulting piece, and
// recovers the character offset of each piece by scanning forward through
// record — the same two-pass approach (split, then re-locate) the reference
// implementation uses, which keeps the splitting pattern and the offset
// bookkeeping independent of each other.
func Tokenize(t Tokenizer, record string) []Token {
	if record == "" {
		panic("tokenize: cannot tokenize an empty record")
	}

	pieces := t.Split(record)

	var tokens []Token
	charPos := 0
	for wordIdx, piece := range pieces {
		if piece == "" {
			continue
		}

		idx := indexFrom(record, charPos, piece)
		if idx < 0 {
			panic("tokenize: token not found in record at or after expected offset")
		}

		tokens = append(tokens, Token{
			Text:      foldCase(piece),
			CharStart: idx,
			WordIndex: wordIdx,
		})
		charPos = idx + len([]rune(piece))
	}

	return tokens
}

func foldCase(s string) string {
	out, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}
	return out
}

// indexFrom returns the rune index of the first occurrence of sub in record
// at or after runeStart, or -1 if not found. Matching original_source's
// add_token_offsets, which advances a cursor until record[cursor:] starts
// with the token.
func indexFrom(record string, runeStart int, sub string) int {
	recordRunes := []rune(record)
	subRunes := []rune(sub)

	for i := runeStart; i+len(subRunes) <= len(recordRunes); i++ {
		if runesEqual(recordRunes[i:i+len(subRunes)], subRunes) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Default splits on every maximal run of non-word runes, the Go analogue of
// Python's re.split(r"\W+", record). A "word" rune is a letter, digit, or
// underscore.
type Default struct{}

// Split implements Tokenizer.
func (Default) Split(record string) []string {
	return splitFunc(record, isWordRune)
}

// URL splits the same way as Default but additionally breaks on the
// URL-structure runes - _ / . ? + & : (the underscore is itself a "word"
// rune and would otherwise be swallowed into a token), and further isolates any run of digits into its own token so that
// version numbers and path segments like "v2" or "80" are matched as
// distinct, fuzzy-searchable terms.
type URL struct{}

var urlSeparators = map[rune]bool{
	'-': true, '_': true, '/': true, '.': true,
	'?': true, '+': true, '&': true, ':': true,
}

// Split implements Tokenizer.
func (URL) Split(record string) []string {
	isURLWord := func(r rune) bool {
		return !urlSeparators[r] && isWordRune(r)
	}

	var pieces []string
	for _, piece := range splitFunc(record, isURLWord) {
		pieces = append(pieces, splitDigitRuns(piece)...)
	}
	return pieces
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// splitFunc splits s on every maximal run of runes for which isWord is
// false, dropping the separator runs entirely.
func splitFunc(s string, isWord func(rune) bool) []string {
	var pieces []string
	var cur []rune
	for _, r := range s {
		if isWord(r) {
			cur = append(cur, r)
		} else if len(cur) > 0 {
			pieces = append(pieces, string(cur))
			cur = nil
		}
	}
	if len(cur) > 0 {
		pieces = append(pieces, string(cur))
	}
	return pieces
}

// splitDigitRuns further breaks piece at every letter/digit boundary so that
// "v2" becomes ["v", "2"] and "80s" becomes ["80", "s"], mirroring the
// "(\d+)" alternation in the URL tokenizer's split pattern.
func splitDigitRuns(piece string) []string {
	var pieces []string
	var cur []rune
	var curIsDigit bool
	flush := func() {
		if len(cur) > 0 {
			pieces = append(pieces, string(cur))
			cur = nil
		}
	}

	for i, r := range piece {
		isDigit := unicode.IsDigit(r)
		if i > 0 && isDigit != curIsDigit {
			flush()
		}
		cur = append(cur, r)
		curIsDigit = isDigit
	}
	flush()
	return pieces
}
