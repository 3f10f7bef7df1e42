package naming

import (
	"cmp"
	"strings"
	"unicode"
)

// NaturalCompare compares two strings using natural sort ordering: embedded
// numeric runs compare by numeric value, so "disc 2" sorts before "disc 10".
// Comparison is case-insensitive. Returns -1, 0, or 1.
func NaturalCompare(a, b string) int {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)

	ai, bi := 0, 0
	for ai < len(al) && bi < len(bl) {
		aDigit := unicode.IsDigit(rune(al[ai]))
		bDigit := unicode.IsDigit(rune(bl[bi]))

		if aDigit && bDigit {
			aNum, aEnd := extractNumber(al, ai)
			bNum, bEnd := extractNumber(bl, bi)

			if c := cmp.Compare(aNum, bNum); c != 0 {
				return c
			}
			// Same numeric value: fewer leading zeros first ("1" < "01").
			if c := cmp.Compare(aEnd-ai, bEnd-bi); c != 0 {
				return c
			}
			ai = aEnd
			bi = bEnd
			continue
		}
		if al[ai] != bl[bi] {
			return cmp.Compare(al[ai], bl[bi])
		}
		ai++
		bi++
	}
	return cmp.Compare(len(al)-ai, len(bl)-bi)
}

// extractNumber reads the numeric run starting at start and returns its
// value and the index just past it. Runs too long for uint64 saturate.
func extractNumber(s string, start int) (uint64, int) {
	end := start
	var n uint64
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		d := uint64(s[end] - '0')
		if n > (^uint64(0)-d)/10 {
			n = ^uint64(0)
		} else {
			n = n*10 + d
		}
		end++
	}
	return n, end
}
