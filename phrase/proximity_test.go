package phrase

import (
	"testing"

	"priblix/posting"
)

func positions(wordPositions ...int) []posting.Position {
	out := make([]posting.Position, len(wordPositions))
	for i, wp := range wordPositions {
		out[i] = posting.Position{CharPosition: wp * 10, WordPosition: wp}
	}
	return out
}

func TestPairDistAdjacentInOrder(t *testing.T) {
	// "seste" at word 0, "hodine" at word 1: x immediately precedes y.
	if got := PairDist(positions(0), positions(1)); got != 0 {
		t.Errorf("PairDist(adjacent in-order) = %d, want 0", got)
	}
}

func TestPairDistAdjacentOutOfOrder(t *testing.T) {
	// "hodine" (left term) at word 1, "seste" (right term) at word 0:
	// the reversed-phrase case where y immediately precedes x.
	x := positions(1)
	y := positions(0)
	if got := PairDist(x, y); got <= 0 {
		t.Errorf("PairDist(out-of-order adjacent) = %d, want > 0 (penalty charged)", got)
	}
}

func TestPairDistZeroWhenAdjacentAnywhere(t *testing.T) {
	x := positions(5, 10)
	y := positions(2, 11)
	if got := PairDist(x, y); got != 0 {
		t.Errorf("PairDist = %d, want 0 (word 10 immediately precedes word 11)", got)
	}
}

func TestPairDistNonAdjacent(t *testing.T) {
	x := positions(0)
	y := positions(5)
	if got := PairDist(x, y); got != 4 {
		t.Errorf("PairDist(0, 5) = %d, want 4", got)
	}
}

func TestMergeIntersectsByDocID(t *testing.T) {
	xs := []Candidate{
		{DocID: 1, LastOccurrences: positions(0)},
		{DocID: 2, LastOccurrences: positions(0)},
	}
	ys := []Candidate{
		{DocID: 2, LastOccurrences: positions(1)},
		{DocID: 3, LastOccurrences: positions(1)},
	}

	got := Merge(xs, ys)
	if len(got) != 1 || got[0].DocID != 2 {
		t.Fatalf("Merge = %v, want single candidate for doc 2", got)
	}
}

func TestMergeEmptyWhenNoOverlap(t *testing.T) {
	xs := []Candidate{{DocID: 1, LastOccurrences: positions(0)}}
	ys := []Candidate{{DocID: 2, LastOccurrences: positions(0)}}

	if got := Merge(xs, ys); len(got) != 0 {
		t.Errorf("Merge(disjoint doc ids) = %v, want empty", got)
	}
}

func TestMergeAccumulatesEditDistanceAndMinDist(t *testing.T) {
	xs := []Candidate{{DocID: 1, EditDistance: 1, LastOccurrences: positions(0)}}
	ys := []Candidate{{DocID: 1, EditDistance: 2, LastOccurrences: positions(1)}}

	got := Merge(xs, ys)
	if len(got) != 1 {
		t.Fatalf("expected 1 merged candidate, got %d", len(got))
	}
	if got[0].EditDistance != 3 {
		t.Errorf("EditDistance = %d, want 3", got[0].EditDistance)
	}
	if got[0].MinDist != 0 {
		t.Errorf("MinDist = %d, want 0 (adjacent in-order)", got[0].MinDist)
	}
}
