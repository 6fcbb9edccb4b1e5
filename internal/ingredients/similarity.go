package ingredients

import (
	"sort"
	"strings"
)

// Similarity scores two normalized names on a 0-100 scale. Tokens are sorted
// before comparison so word order does not matter ("cherry tomato" and
// "tomato cherry" score 100), while missing or extra tokens still cost edit
// distance. The score is symmetric.
func Similarity(a, b string) int {
	a = tokenSort(a)
	b = tokenSort(b)
	if a == b {
		return 100
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein(a, b)
	return (100*(longest-dist) + longest/2) / longest
}

// IsSimilar normalizes both raw names and reports whether they meet the
// given threshold.
func IsSimilar(a, b string, threshold int) bool {
	return Similarity(Normalize(a), Normalize(b)) >= threshold
}

func tokenSort(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// levenshtein computes edit distance over runes with a two-row table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
