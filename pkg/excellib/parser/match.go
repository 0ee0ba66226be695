package parser

import "strings"

// Match compares two cell values the way labels are matched: strings
// compare equal after trimming surrounding whitespace, everything else
// requires exact same-type equality. A string never matches a number,
// even when it spells the same digits.
func Match(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.TrimSpace(as) == strings.TrimSpace(bs)
	}
	if aok != bok {
		return false
	}
	return a == b
}
