package common

import "math"

// AlignUp rounds n up to the next multiple of unit. unit must be a
// power of two. The result wraps negative when n is within unit-1 of
// the int maximum; callers feeding untrusted sizes must check for that.
func AlignUp(n, unit int) int {
	return (n + unit - 1) &^ (unit - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AddOverflowSafe adds two non-negative sizes, returning ok = false
// when the sum would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	if b > math.MaxInt-a {
		return 0, false
	}
	return a + b, true
}

// NextCap doubles cur until it covers need, returning ok = false when
// doubling would overflow int before reaching need. cur must be > 0.
func NextCap(cur, need int) (int, bool) {
	for cur < need {
		if cur > math.MaxInt/2 {
			return 0, false
		}
		cur *= 2
	}
	return cur, true
}
