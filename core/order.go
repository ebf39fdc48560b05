// File: order.go
// Role: EdgeOrder, the strict total order used for every tie-break decision.
// Determinism:
//   - Depends only on (Weight, min endpoint, max endpoint); orientation is ignored.
//   - Both endpoints of an edge derive the same answer independently.

package core

// Compare orders two edges: weight ascending, then (min endpoint, max endpoint)
// lexicographically ascending. It returns -1 if a < b, +1 if a > b and 0 only
// when a and b describe the same link.
//
// Complexity: O(1).
func Compare(a, b Edge) int {
	// Primary key: weight.
	if a.Weight < b.Weight {
		return -1
	}
	if a.Weight > b.Weight {
		return 1
	}

	// Tie-break on the normalized endpoint pair.
	alo, ahi := a.Ends()
	blo, bhi := b.Ends()
	switch {
	case alo < blo:
		return -1
	case alo > blo:
		return 1
	case ahi < bhi:
		return -1
	case ahi > bhi:
		return 1
	}

	return 0
}

// Less reports whether a is strictly smaller than b under EdgeOrder.
func Less(a, b Edge) bool {
	return Compare(a, b) < 0
}

// Identical reports whether a and b are the same link: same unordered
// endpoints and the same weight. Compare(a, b) == 0 for non-identical edges
// (for example a NaN weight) signals a broken order.
func Identical(a, b Edge) bool {
	return a.Connects(b.From, b.To) && a.Weight == b.Weight
}

// Min returns the smaller of a and b under EdgeOrder. A nil argument loses.
func Min(a, b *Edge) *Edge {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case Less(*b, *a):
		return b
	}

	return a
}
