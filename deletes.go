package spell

// deleteSet is the set of delete-keys generated from one dictionary term.
type deleteSet map[string]struct{}

// editsPrefix returns the delete neighborhood of term: term truncated to
// its leading prefixLength runes, plus every string obtainable from that
// prefix by deleting between 1 and maxEditDistance characters. The
// truncated prefix itself is always included, even at editDistance 0.
func editsPrefix(term string, maxEditDistance, prefixLength int) deleteSet {
	keys := make(deleteSet)

	runes := []rune(term)

	// A term no longer than the edit-distance budget can be deleted down
	// to the empty string, but the recursion below never visits length-0
	// words (it stops at length 1), so that key is added directly.
	if len(runes) <= maxEditDistance {
		keys[""] = struct{}{}
	}

	if len(runes) > prefixLength {
		runes = runes[:prefixLength]
		term = string(runes)
	}

	keys[term] = struct{}{}
	edits(term, 0, maxEditDistance, keys)
	return keys
}

// edits recursively deletes one rune at a time from word, adding every
// result to acc, until currentDistance reaches maxEditDistance. Recursion
// depth is bounded by maxEditDistance (typically 2), so an explicit
// work-queue isn't necessary here.
func edits(word string, currentDistance, maxEditDistance int, acc deleteSet) {
	currentDistance++

	runes := []rune(word)
	if len(runes) <= 1 {
		return
	}

	for i := range runes {
		deleted := string(runes[:i]) + string(runes[i+1:])
		if _, seen := acc[deleted]; seen {
			continue
		}
		acc[deleted] = struct{}{}
		if currentDistance < maxEditDistance {
			edits(deleted, currentDistance, maxEditDistance, acc)
		}
	}
}
