package spell

// DistanceFunc computes the edit distance between two strings, capped at
// maxDistance. It must return -1 if the true distance exceeds maxDistance.
// Lookup accepts a DistanceFunc via the DistanceFunc option so callers can
// swap in an alternate metric, e.g. github.com/eskriett/strmet's
// DamerauLevenshtein or Levenshtein.
type DistanceFunc func(string1, string2 string, maxDistance int) int

// Distance returns the Damerau-Levenshtein optimal string alignment (OSA)
// distance between a and b, or -1 if it exceeds maxDistance. OSA counts
// insertion, deletion, substitution and adjacent transposition, with each
// input position participating in at most one transposition.
//
// Distance is the package's default DistanceFunc. It operates on runes
// throughout, never bytes, so multi-byte scripts are compared correctly.
func Distance(string1, string2 string, maxDistance int) int {
	if string1 == "" || string2 == "" {
		return nullDistance(string1, string2, maxDistance)
	}

	if maxDistance <= 0 {
		if string1 == string2 {
			return 0
		}
		return -1
	}

	r1 := []rune(string1)
	r2 := []rune(string2)

	// Ensure the shorter string is first.
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2)-len(r1) > maxDistance {
		return -1
	}

	len1, len2, start := trimPrefixSuffix(r1, r2)
	if len1 == 0 {
		if len2 <= maxDistance {
			return len2
		}
		return -1
	}

	char1Costs := make([]int, len2)
	prevChar1Costs := make([]int, len2)

	if maxDistance < len2 {
		return distanceBounded(r1, r2, len1, len2, start, maxDistance, char1Costs, prevChar1Costs)
	}
	return distanceUnbounded(r1, r2, len1, len2, start, char1Costs, prevChar1Costs)
}

// Similarity converts a Distance result to 1 - distance/length, or -1 if
// distance is -1; the value is below 0 when distance exceeds length. It is used to break suggestion ties whose displayed term
// differs from the matched dictionary key: the match whose key was
// textually closer to the input wins.
func Similarity(distance, length int) float64 {
	if distance < 0 {
		return -1
	}
	if length == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(length)
}

func nullDistance(string1, string2 string, maxDistance int) int {
	if string1 == string2 {
		return 0
	}
	n1 := len([]rune(string1))
	n2 := len([]rune(string2))
	distance := n1
	if n2 > n1 {
		distance = n2
	}
	if distance > maxDistance {
		return -1
	}
	return distance
}

// trimPrefixSuffix removes the common prefix and suffix of r1/r2 (r1 must
// be no longer than r2), returning the remaining lengths to compare and
// the start offset of that remainder within both slices.
func trimPrefixSuffix(r1, r2 []rune) (len1, len2, start int) {
	len1 = len(r1)
	len2 = len(r2)

	for len1 != 0 && r1[len1-1] == r2[len2-1] {
		len1--
		len2--
	}

	for start != len1 && r1[start] == r2[start] {
		start++
	}
	if start != 0 {
		len1 -= start
		len2 -= start
	}
	return len1, len2, start
}

// distanceUnbounded runs the full one-row rolling-diagonal OSA DP with no
// early exit, used when maxDistance is large enough that no row could
// possibly terminate early.
func distanceUnbounded(r1, r2 []rune, len1, len2, start int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < len2; j++ {
		char1Costs[j] = j + 1
	}

	var char1, prevChar1 rune
	var currentCost int

	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			currentCost = leftCharCost
			prevChar1Costs[j] = currentCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = r2[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}

	return currentCost
}

// distanceBounded is distanceUnbounded with a sliding window and per-row
// early exit: once a row's minimum achievable cost exceeds maxDistance, no
// later row can recover, so the function returns -1 immediately.
func distanceBounded(r1, r2 []rune, len1, len2, start, maxDistance int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < maxDistance; j++ {
		char1Costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		char1Costs[j] = maxDistance + 1
	}

	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance

	var char1, prevChar1 rune
	var currentCost int

	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]
		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			currentCost = leftCharCost
			prevChar1Costs[j] = currentCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = r2[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}

		// Early exit: the row's cost on the main diagonal already exceeds
		// the budget, and every later row can only add more cost.
		if i+lenDiff < len2 && char1Costs[i+lenDiff] > maxDistance {
			return -1
		}
	}

	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}
