package regex

import "sort"

// NoneOf builds a term matching any single code point in the valid domain
// except those listed in chars. The complement is built as a union of the
// gap ranges between sorted, deduplicated forbidden code points, so the
// result stays a flat union of Range terms rather than a negated form the
// IR has no node for (spec §4.1: "the IR has no explicit negation node").
//
// An empty chars matches every code point (equivalent to Any). A chars
// that covers the entire domain yields Empty.
func NoneOf(chars string) *Term {
	if chars == "" {
		return Any
	}

	forbidden := dedupeSorted(chars)

	result := Empty
	cursor := MinCodePoint
	haveCursor := true

	for _, c := range forbidden {
		if haveCursor && cursor < c {
			if gapHi, ok := decrementSkippingSurrogates(c); ok && cursor <= gapHi {
				result = unionRange(result, cursor, gapHi)
			}
		}
		if next, ok := incrementSkippingSurrogates(c); ok {
			cursor = next
			haveCursor = true
		} else {
			haveCursor = false
		}
	}

	if haveCursor && cursor <= MaxCodePoint {
		result = unionRange(result, cursor, MaxCodePoint)
	}

	return result
}

// unionRange unions [lo, hi] into result, splitting at the surrogate block
// when the gap straddles it so no synthesised Range ever contains a
// surrogate code point.
func unionRange(result *Term, lo, hi rune) *Term {
	if lo > hi {
		return result
	}
	if lo < surrogateLo && hi > surrogateHi {
		result = Union(result, RangeOf(lo, surrogateLo-1))
		result = Union(result, RangeOf(surrogateHi+1, hi))
		return result
	}
	return Union(result, RangeOf(lo, hi))
}

// dedupeSorted returns the distinct runes of s in ascending order.
func dedupeSorted(s string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, c := range s {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
