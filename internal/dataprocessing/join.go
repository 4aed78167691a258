package dataprocessing

// LeftJoin merges keyed right-side rows into keyed left-side rows. For each
// left row carrying a non-empty key, the first right row sharing that key is
// merged in via the merge callback and the match is reported; left rows with
// no match, or with an empty key, pass through unmodified. Every left row is
// emitted exactly once.
//
// When multiple right rows share a key only the first in input order is
// used. The join recovers identity fields; it never aggregates.
func LeftJoin[L, R any](
	left []L,
	right []R,
	leftKey func(L) string,
	rightKey func(R) string,
	merge func(L, R),
	matched func(L, bool),
) {
	first := make(map[string]R, len(right))
	for _, r := range right {
		k := rightKey(r)
		if k == "" {
			continue
		}
		if _, ok := first[k]; !ok {
			first[k] = r
		}
	}

	for _, l := range left {
		k := leftKey(l)
		if k == "" {
			matched(l, false)
			continue
		}
		r, ok := first[k]
		if ok {
			merge(l, r)
		}
		matched(l, ok)
	}
}
