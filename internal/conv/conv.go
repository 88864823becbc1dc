// Package conv provides checked offset arithmetic for the FSA readers.
//
// Arc and node offsets are plain ints computed from untrusted file contents,
// so every addition is bounds checked before use. These helpers report
// overflow instead of panicking since a wrapped offset indicates a corrupted
// dictionary, not a programming error.
package conv

import "math"

// AddOffset returns a + b and reports whether the addition stayed within
// the int range. Both operands must be non-negative.
func AddOffset(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// AddOffsets folds AddOffset over all operands, reporting overflow of any
// intermediate sum.
func AddOffsets(offs ...int) (int, bool) {
	sum := 0
	for _, o := range offs {
		var ok bool
		sum, ok = AddOffset(sum, o)
		if !ok {
			return 0, false
		}
	}
	return sum, true
}
