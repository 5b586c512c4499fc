package internal

import (
	"sort"
	"unicode"
)

// LanguageScore pairs a candidate language with its coherence score
// against a decoded chunk, in [0,1].
type LanguageScore struct {
	Language Language
	Score    float64
}

// CoherenceEngine ranks likely natural languages for a decoded chunk
// by comparing observed letter frequency to curated per-language
// alphabet profiles. Grounded on the Rust original's get_language_data
// plus the CoherenceRatio algorithm (no coherence.rs
// survived distillation into original_source/, so the letter-
// frequency-overlap shape follows an earlier
// scoreLanguagePatterns heuristic, generalized from a fixed set of
// script checks to the full per-language profile table).
type CoherenceEngine struct {
	classifier *CharClassifier
}

// NewCoherenceEngine builds an engine sharing the classifier's accent
// and case caches.
func NewCoherenceEngine(classifier *CharClassifier) *CoherenceEngine {
	return &CoherenceEngine{classifier: classifier}
}

// CoherenceRatio scores text against every language in targetLanguages
// (or the full table when targetLanguages is nil), discards scores
// below threshold, and returns the survivors sorted by score
// descending, tie-broken by the language's position in the reference
// table and then by name.
func (e *CoherenceEngine) CoherenceRatio(text string, threshold float64, targetLanguages []Language) []LanguageScore {
	alphabet := e.buildAlphabet(text)
	if len(alphabet) == 0 {
		return nil
	}

	candidates := targetLanguages
	if candidates == nil {
		candidates = make([]Language, len(languageTable))
		for i, p := range languageTable {
			candidates[i] = p.language
		}
	}

	observed := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		observed[r] = true
	}

	var out []LanguageScore
	for _, lang := range candidates {
		profile, ok := languageProfileFor(lang)
		if !ok {
			continue
		}
		reference := []rune(profile.alphabet)
		if len(reference) == 0 {
			continue
		}

		k := len(reference)
		if k > len(alphabet) {
			k = len(alphabet)
		}
		top := alphabet[:k]

		var hits float64
		for _, r := range top {
			if runeInSlice(r, reference) {
				hits++
			}
		}
		score := hits / float64(len(reference))
		if score < threshold {
			continue
		}
		out = append(out, LanguageScore{Language: lang, Score: score})
	}

	rank := make(map[Language]int, len(languageTable))
	for i, p := range languageTable {
		rank[p.language] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if rank[out[i].Language] != rank[out[j].Language] {
			return rank[out[i].Language] < rank[out[j].Language]
		}
		return out[i].Language < out[j].Language
	})
	return out
}

// buildAlphabet strips digits, whitespace and symbols, lowercases,
// removes accents, and returns the remaining letters ordered by
// descending frequency with duplicates collapsed to their first
// occurrence rank.
func (e *CoherenceEngine) buildAlphabet(text string) []rune {
	counts := make(map[rune]int)
	var order []rune
	seen := make(map[rune]bool)

	for _, ch := range text {
		if unicode.IsDigit(ch) || unicode.IsSpace(ch) {
			continue
		}
		if e.classifier.IsPunctuation(ch) || e.classifier.IsSymbol(ch) {
			continue
		}
		if !unicode.IsLetter(ch) {
			continue
		}
		lower := unicode.ToLower(ch)
		base := e.classifier.RemoveAccent(lower)
		counts[base]++
		if !seen[base] {
			seen[base] = true
			order = append(order, base)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

func runeInSlice(r rune, s []rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// MergeCoherenceRatios averages each language's score across the
// per-chunk lists it appears in, then re-sorts by the same rule as
// CoherenceRatio.
func MergeCoherenceRatios(perChunk [][]LanguageScore) []LanguageScore {
	sums := make(map[Language]float64)
	counts := make(map[Language]int)

	for _, chunk := range perChunk {
		for _, ls := range chunk {
			sums[ls.Language] += ls.Score
			counts[ls.Language]++
		}
	}

	out := make([]LanguageScore, 0, len(sums))
	for lang, sum := range sums {
		out = append(out, LanguageScore{Language: lang, Score: sum / float64(counts[lang])})
	}

	rank := make(map[Language]int, len(languageTable))
	for i, p := range languageTable {
		rank[p.language] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if rank[out[i].Language] != rank[out[j].Language] {
			return rank[out[i].Language] < rank[out[j].Language]
		}
		return out[i].Language < out[j].Language
	})
	return out
}
