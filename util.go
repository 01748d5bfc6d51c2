package spell

import "math"

const maxInt64 = math.MaxInt64

// saturatingAdd sums a and b, clamping to math.MaxInt64 instead of
// wrapping on overflow (spec.md §3/§9: frequency counts never wrap).
func saturatingAdd(a, b int64) int64 {
	if a > maxInt64-b {
		return maxInt64
	}
	return a + b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
