package internal

import "strings"

// SuccessionChecker decides whether two adjacent Unicode ranges, as
// named by CharClassifier.RangeOf, are suspicious neighbors within a
// word — evidence the bytes were decoded under the wrong encoding
// rather than a legitimate mixed-script word. Ported from the Rust
// teacher's is_suspiciously_successive_range.
type SuccessionChecker struct {
	pairCache *Cache[[2]string, bool]
}

// NewSuccessionChecker builds a checker whose range-pair verdicts are
// cached up to maxEntries pairs.
func NewSuccessionChecker(maxEntries int) *SuccessionChecker {
	return &SuccessionChecker{
		pairCache: NewCache[[2]string, bool](maxEntries, 0),
	}
}

// IsSuspicious reports whether rangeA and rangeB, the Unicode block
// names of two adjacent code points, form a suspicious succession.
// Either name may be "" to mean "no range matched", which is itself
// treated as suspicious.
func (s *SuccessionChecker) IsSuspicious(rangeA, rangeB string) bool {
	key := [2]string{rangeA, rangeB}
	if key[0] > key[1] {
		key = [2]string{rangeB, rangeA}
	}
	return s.pairCache.GetOrCompute(key, func() bool {
		return evaluateSuccession(rangeA, rangeB)
	})
}

func evaluateSuccession(rangeA, rangeB string) bool {
	if rangeA == "" || rangeB == "" {
		return true
	}

	if rangeA == rangeB ||
		(strings.Contains(rangeA, "Latin") && strings.Contains(rangeB, "Latin")) ||
		strings.Contains(rangeA, "Emoticons") || strings.Contains(rangeB, "Emoticons") {
		return false
	}

	// Latin characters can be accompanied by a combining diacritical
	// mark, e.g. Vietnamese.
	if (strings.Contains(rangeA, "Latin") || strings.Contains(rangeB, "Latin")) &&
		(strings.Contains(rangeA, "Combining") || strings.Contains(rangeB, "Combining")) {
		return false
	}

	if sharesMeaningfulKeyword(rangeA, rangeB) {
		return false
	}

	jpA := rangeA == "Hiragana" || rangeA == "Katakana"
	jpB := rangeB == "Hiragana" || rangeB == "Katakana"
	hasCJK := strings.Contains(rangeA, "CJK") || strings.Contains(rangeB, "CJK")

	if (jpA || jpB) && hasCJK {
		return false
	}
	if jpA && jpB {
		return false
	}

	if strings.Contains(rangeA, "Hangul") || strings.Contains(rangeB, "Hangul") {
		if hasCJK {
			return false
		}
		if rangeA == "Basic Latin" || rangeB == "Basic Latin" {
			return false
		}
	}

	// Chinese uses a dedicated range for punctuation and/or separators.
	if hasCJK &&
		(strings.Contains(rangeA, "Punctuation") || strings.Contains(rangeB, "Punctuation") ||
			strings.Contains(rangeA, "Forms") || strings.Contains(rangeB, "Forms")) {
		return false
	}

	return true
}

// sharesMeaningfulKeyword reports whether the whitespace-separated
// words of rangeA and rangeB overlap in anything other than the
// "secondary" keywords that don't establish a shared script family
// (e.g. both containing "Supplement" doesn't mean they're related).
func sharesMeaningfulKeyword(rangeA, rangeB string) bool {
	setA := make(map[string]bool)
	for _, w := range strings.Fields(rangeA) {
		setA[w] = true
	}
	for _, w := range strings.Fields(rangeB) {
		if setA[w] && !unicodeSecondaryRangeKeyword[w] {
			return true
		}
	}
	return false
}
