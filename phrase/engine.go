package phrase

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"priblix/highlight"
	"priblix/posting"
	"priblix/tokenize"
)

// Engine drives phrase resolution: tokenizing a query, expanding each token
// (fuzzy mode) or looking it up directly (strict mode), and folding the
// results with the proximity merge.
type Engine struct {
	idx      *posting.Index
	expander *Expander
}

// NewEngine builds an engine over idx, using idx's own tokenizer for query
// tokenization — the same strategy the index was built with.
func NewEngine(idx *posting.Index) *Engine {
	return &Engine{idx: idx, expander: NewExpander(idx)}
}

// Search resolves query against the index, optionally fuzzy, and returns
// the matching candidates ranked by (EditDistance, MinDist) ascending and
// truncated to topN. An empty or all-separator query yields nil.
func (e *Engine) Search(query string, topN int, fuzzy bool) []Candidate {
	if query == "" {
		return nil
	}

	// Tokenize's empty-record precondition (tokenize.go) exists to catch
	// malformed corpus lines at index-construction time; an empty query
	// typed at a live prompt is a normal, expected state, handled above
	// before Tokenize ever sees it.
	tokens := tokenize.Tokenize(e.idx.Tokenizer, query)
	if len(tokens) == 0 {
		return nil
	}

	queryLen := len([]rune(query))
	lastIdx := len(tokens) - 1
	lastToken := tokens[lastIdx]
	isLastPrefix := lastToken.CharStart+len([]rune(lastToken.Text)) == queryLen

	var candidates []Candidate
	for i, tok := range tokens {
		isPrefix := fuzzy && isLastPrefix && i == lastIdx

		var variants []Variant
		if fuzzy {
			variants = e.expander.Expand(tok.Text, isPrefix)
		} else {
			variants = []Variant{{Distance: 0, Term: tok.Text}}
		}

		next := e.candidatesForVariants(variants)
		if i == 0 {
			candidates = next
			continue
		}
		candidates = Merge(candidates, next)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].EditDistance != candidates[j].EditDistance {
			return candidates[i].EditDistance < candidates[j].EditDistance
		}
		return candidates[i].MinDist < candidates[j].MinDist
	})

	if topN >= 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return candidates
}

// candidatesForVariants looks up the posting list for every variant of one
// query token and groups the results per doc_id: within a doc the minimum
// variant distance becomes the candidate's EditDistance, and every variant's
// positions and highlights are concatenated without deduplication (the
// proximity merge tolerates duplicate positions).
//
// Before walking any posting list, it unions the doc-presence bitmaps of
// every distinct variant term. An empty union means none of the variants
// occur in any document, so the per-doc grouping below can be skipped
// entirely; a variant whose own bitmap is absent (never indexed as a
// standalone term) is skipped rather than paying for a Lookup that can only
// return empty.
func (e *Engine) candidatesForVariants(variants []Variant) []Candidate {
	best := make(map[string]int, len(variants))
	for _, v := range variants {
		if cur, ok := best[v.Term]; !ok || v.Distance < cur {
			best[v.Term] = v.Distance
		}
	}

	union := roaring.New()
	for term := range best {
		if bm := e.idx.DocBitmap(term); bm != nil {
			union.Or(bm)
		}
	}
	if union.IsEmpty() {
		return nil
	}

	byDoc := make(map[int]*Candidate, int(union.GetCardinality()))
	var order []int

	for term, distance := range best {
		if e.idx.DocBitmap(term) == nil {
			continue
		}
		termLen := len([]rune(term))
		for _, p := range e.idx.Lookup(term) {
			c, ok := byDoc[p.DocID]
			if !ok {
				c = &Candidate{DocID: p.DocID, EditDistance: distance}
				byDoc[p.DocID] = c
				order = append(order, p.DocID)
			} else if distance < c.EditDistance {
				c.EditDistance = distance
			}

			for _, pos := range p.Positions {
				c.LastOccurrences = append(c.LastOccurrences, pos)
				c.Highlights = append(c.Highlights, highlight.Range{
					Start: pos.CharPosition,
					End:   pos.CharPosition + termLen,
				})
			}
		}
	}

	sort.Ints(order)
	candidates := make([]Candidate, len(order))
	for i, docID := range order {
		candidates[i] = *byDoc[docID]
	}
	return candidates
}
