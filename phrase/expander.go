package phrase

import (
	"priblix/bktree"
	"priblix/posting"
)

// Variant is one candidate term produced by expanding a query token, paired
// with the edit distance at which it was found.
type Variant struct {
	Distance int
	Term     string
}

// Expander expands a single query token into a set of (distance, term)
// variants, using the owning index's trie and BK-trees.
type Expander struct {
	idx *posting.Index
}

// NewExpander builds an expander over idx.
func NewExpander(idx *posting.Index) *Expander {
	return &Expander{idx: idx}
}

// Expand returns the variants for token. isPrefix selects the live-prefix
// completion rules (trie descendants, trigram Hamming lookup) instead of
// the general Levenshtein lookup used for complete tokens and non-prefix
// fuzzy matches.
func (e *Expander) Expand(token string, isPrefix bool) []Variant {
	if token == "" {
		return nil
	}

	length := len([]rune(token))

	if !isPrefix {
		return e.levenshteinVariants(token, scaledLimit(length))
	}

	switch {
	case length <= 2:
		return e.trieVariants(token, 0)
	case length == 3:
		matches := e.idx.HammingTree().Find(token, 1)
		return e.expandThroughTrie(matches)
	default:
		matches := e.idx.LevenshteinTree().Find(token, scaledLimit(length))
		return e.expandThroughTrie(matches)
	}
}

// levenshteinVariants looks the token up directly in the Levenshtein
// BK-tree and returns the matches unexpanded — used for complete tokens and
// for non-prefix tokens in a fuzzy query.
func (e *Expander) levenshteinVariants(token string, limit int) []Variant {
	matches := e.idx.LevenshteinTree().Find(token, limit)
	variants := make([]Variant, len(matches))
	for i, m := range matches {
		variants[i] = Variant{Distance: m.Distance, Term: m.Word}
	}
	return variants
}

// trieVariants returns every trie descendant of prefix, all at the given
// fixed distance (0 for the short-prefix case, where the trie match is
// exact by definition).
func (e *Expander) trieVariants(prefix string, distance int) []Variant {
	words := e.idx.Trie().DescendantsOrSelf(prefix)
	variants := make([]Variant, len(words))
	for i, w := range words {
		variants[i] = Variant{Distance: distance, Term: w}
	}
	return variants
}

// expandThroughTrie completes every BK-tree match to the full set of terms
// it is a prefix of, keeping the minimum contributing distance per term
// when more than one matched prefix completes to the same word.
func (e *Expander) expandThroughTrie(matches []bktree.Match) []Variant {
	best := make(map[string]int)
	for _, m := range matches {
		for _, w := range e.idx.Trie().DescendantsOrSelf(m.Word) {
			if cur, ok := best[w]; !ok || m.Distance < cur {
				best[w] = m.Distance
			}
		}
	}

	variants := make([]Variant, 0, len(best))
	for w, d := range best {
		variants = append(variants, Variant{Distance: d, Term: w})
	}
	return variants
}

// scaledLimit is the length-scaled edit-distance budget from the fuzzy
// expansion table: short tokens tolerate fewer edits than long ones, so a
// typo in a long word doesn't starve the match of any budget at all.
func scaledLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}
