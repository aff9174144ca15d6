// Package phrase drives phrase resolution: fuzzy expansion of each query
// token, positional proximity merging across tokens, and the resulting
// ranked candidate set.
package phrase

import (
	"priblix/highlight"
	"priblix/posting"
)

// Candidate is the accumulator produced while folding a phrase query across
// its tokens, one doc_id at a time.
type Candidate struct {
	DocID int

	// EditDistance is the running sum, over every query term merged so
	// far, of the minimum edit distance at which that term matched in
	// this document.
	EditDistance int

	// LastOccurrences holds the positions of the most recently merged
	// query term in this document — the merge's "right edge".
	LastOccurrences []posting.Position

	// MinDist is the running proximity penalty accumulated across merges.
	MinDist int

	Highlights []highlight.Range
}
