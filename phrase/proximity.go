package phrase

import (
	"priblix/highlight"
	"priblix/posting"
)

// sentinelDist is returned by PairDist when no pair of positions was
// examined — unreachable in practice since both position slices passed to
// it are always non-empty, but kept as the documented starting value of the
// running minimum.
const sentinelDist = 1337

// outOfOrderPenalty is charged once per out-of-order adjacency: the right
// term's occurrence precedes the left term's, which the phrase order did
// not predict.
const outOfOrderPenalty = 1

// PairDist returns a lower bound on the minimum positional gap between two
// word-position sequences, sorted ascending. It is a single linear scan
// over both sequences, not an exhaustive minimum over every pair: an
// in-order adjacency (x immediately followed by y) costs nothing, an
// out-of-order adjacency (y immediately followed by x) costs one penalty
// unit. The asymmetry is intentional — it is what lets the proximity score
// tell "seste hodine" apart from "hodine seste".
func PairDist(x, y []posting.Position) int {
	d := sentinelDist
	ix, iy := 0, 0

	for ix < len(x) && iy < len(y) {
		xi := x[ix].WordPosition
		yi := y[iy].WordPosition

		var diff int
		if xi < yi {
			diff = yi - xi - 1
			ix++
		} else {
			diff = xi - yi - 1 + outOfOrderPenalty
			iy++
		}

		if diff <= 0 {
			return 0
		}
		if diff < d {
			d = diff
		}
	}

	return d
}

// Merge intersects two doc_id-ordered candidate sequences, emitting one
// candidate per doc_id present in both. xs and ys must each already be
// sorted ascending by DocID.
func Merge(xs, ys []Candidate) []Candidate {
	var merged []Candidate
	ix, iy := 0, 0

	for ix < len(xs) && iy < len(ys) {
		x, y := xs[ix], ys[iy]
		switch {
		case x.DocID < y.DocID:
			ix++
		case x.DocID > y.DocID:
			iy++
		default:
			merged = append(merged, Candidate{
				DocID:           x.DocID,
				EditDistance:    x.EditDistance + y.EditDistance,
				LastOccurrences: y.LastOccurrences,
				MinDist:         x.MinDist + PairDist(x.LastOccurrences, y.LastOccurrences),
				Highlights:      append(append([]highlight.Range(nil), x.Highlights...), y.Highlights...),
			})
			ix++
			iy++
		}
	}

	return merged
}
