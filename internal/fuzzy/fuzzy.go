// Package fuzzy provides edit-distance matching for option name
// suggestions in unknown-option errors.
package fuzzy

import "strings"

// minInputLength guards against suggesting for very short inputs, where
// almost any candidate is within range.
const minInputLength = 2

// FindBestOption returns the candidate option name closest to input
// within maxDistance edits, or "" when nothing qualifies. Exact matches
// are skipped; they are not typos.
func FindBestOption(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}

	input = strings.ToLower(input)
	best := ""
	bestDistance := maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}

		distance := levenshtein(input, lower, maxDistance)
		if distance > maxDistance {
			continue
		}

		// Prefer smaller distance; break ties on longer common prefix
		// so "--verbos" suggests "verbose" over equally-distant names.
		prefix := commonPrefixLength(input, lower)
		if distance < bestDistance || (distance == bestDistance && prefix > bestPrefix) {
			best = candidate
			bestDistance = distance
			bestPrefix = prefix
		}
	}

	return best
}

// levenshtein computes the edit distance between a and b, returning
// maxDistance+1 as soon as the distance provably exceeds maxDistance.
func levenshtein(a, b string, maxDistance int) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rolling rows instead of the full matrix.
	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			// insertion, deletion, substitution
			current[j] = minThree(current[j-1]+1, previous[j]+1, previous[j-1]+cost)
			if current[j] < rowMin {
				rowMin = current[j]
			}
		}

		// The row minimum only grows from here on.
		if rowMin > maxDistance {
			return maxDistance + 1
		}

		previous, current = current, previous
	}

	return previous[len(a)]
}

func commonPrefixLength(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return limit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
