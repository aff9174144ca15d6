// Package posting builds and stores the positional inverted index: the
// mapping from normalized term to a doc_id-ordered list of per-document
// occurrences, plus the trie and BK-tree substrate the fuzzy expander
// queries against.
package posting

import (
	"log/slog"

	"github.com/RoaringBitmap/roaring"

	"priblix/bktree"
	"priblix/metric"
	"priblix/tokenize"
	"priblix/trie"
)

// Position is the (char_position, word_position) pair recorded for one
// occurrence of a term in a record.
type Position struct {
	CharPosition int
	WordPosition int
}

// Posting is every occurrence of a single term within one record, sorted by
// WordPosition ascending.
type Posting struct {
	DocID     int
	Positions []Position
}

// List is the posting list for one term: postings ordered by DocID
// ascending. This ordering is what lets Merge run in linear time.
type List []Posting

// Index is the positional inverted index over a finite, immutable corpus.
// Every field is read-only once New returns.
type Index struct {
	Records   []string
	Tokenizer tokenize.Tokenizer

	terms       map[string]List
	termDocs    map[string]*roaring.Bitmap
	trie        *trie.Trie
	levenshtein *bktree.Tree
	hamming     *bktree.Tree
}

// New builds the index over records using tokenizer. Construction is the
// only time the index is written to; every structure it builds is read-only
// afterward.
func New(records []string, tokenizer tokenize.Tokenizer) *Index {
	idx := &Index{
		Records:     records,
		Tokenizer:   tokenizer,
		terms:       make(map[string]List),
		termDocs:    make(map[string]*roaring.Bitmap),
		trie:        trie.New(),
		levenshtein: bktree.New(metric.Levenshtein),
		hamming: bktree.New(func(a, b string) int {
			d, err := metric.Hamming(a, b)
			if err != nil {
				// Hamming is only ever exercised here on equal-length
				// trigrams (see populateFuzzySubstrate); a length mismatch
				// means the caller broke that invariant.
				panic(err)
			}
			return d
		}),
	}

	seen := make(map[string]bool)
	for docID, record := range records {
		idx.indexRecord(docID, record, seen)
	}

	slog.Info("posting index built",
		slog.Int("records", len(records)),
		slog.Int("terms", len(idx.terms)),
	)

	return idx
}

func (idx *Index) indexRecord(docID int, record string, seen map[string]bool) {
	tokens := tokenize.Tokenize(idx.Tokenizer, record)

	grouped := make(map[string][]Position)
	var order []string
	for _, tok := range tokens {
		if _, ok := grouped[tok.Text]; !ok {
			order = append(order, tok.Text)
		}
		grouped[tok.Text] = append(grouped[tok.Text], Position{
			CharPosition: tok.CharStart,
			WordPosition: tok.WordIndex,
		})
	}

	for _, term := range order {
		positions := grouped[term]

		idx.terms[term] = append(idx.terms[term], Posting{DocID: docID, Positions: positions})

		bitmap, ok := idx.termDocs[term]
		if !ok {
			bitmap = roaring.New()
			idx.termDocs[term] = bitmap
		}
		bitmap.Add(uint32(docID))

		if !seen[term] {
			seen[term] = true
			idx.populateFuzzySubstrate(term)
		}
	}
}

// populateFuzzySubstrate inserts term into the trie and, for each of its
// prefixes of length >= 2 not already covered by a previously inserted
// term, into the Levenshtein BK-tree (and the Hamming BK-tree too, for
// length-3 prefixes). The trie check runs before term itself is inserted,
// so a prefix already covered by an earlier term never gets a redundant
// BK-tree entry.
func (idx *Index) populateFuzzySubstrate(term string) {
	runes := []rune(term)

	for length := 2; length <= len(runes); length++ {
		prefix := string(runes[:length])
		if idx.trie.HasPrefix(prefix) {
			continue
		}
		idx.levenshtein.Insert(prefix)
		if length == 3 {
			idx.hamming.Insert(prefix)
		}
	}

	idx.trie.Insert(term)
}

// Lookup returns the posting list for an exact term, doc_id-ordered. A term
// absent from the index yields a nil (empty) list, which is not an error:
// it simply fails to contribute any candidates to a phrase match.
func (idx *Index) Lookup(term string) List {
	return idx.terms[term]
}

// DocBitmap returns the roaring bitmap of doc_ids containing term, or nil
// if term is absent.
func (idx *Index) DocBitmap(term string) *roaring.Bitmap {
	return idx.termDocs[term]
}

// Trie exposes the term trie built during construction, for prefix
// completion in the fuzzy expander.
func (idx *Index) Trie() *trie.Trie {
	return idx.trie
}

// LevenshteinTree exposes the general-purpose BK-tree.
func (idx *Index) LevenshteinTree() *bktree.Tree {
	return idx.levenshtein
}

// HammingTree exposes the trigram-only BK-tree.
func (idx *Index) HammingTree() *bktree.Tree {
	return idx.hamming
}
