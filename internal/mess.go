package internal

import (
	"strings"
	"unicode"
)

// MessDetector estimates how "unnatural" a decoded string looks by
// composing several independent sub-detectors, each producing a ratio
// in [0,1]; the reported mess ratio is the maximum over the eligible
// sub-detectors (the most damning signal wins, not an average that
// could be diluted by agreeable ones).
//
// There is no dedicated mess-detector source file in the Rust
// original kept for this module (only lib.rs/normalizer.rs/utils.rs
// were retained), so the sub-detector shape here is grounded on the
// teacher's own multi-signal decoded-text scorer
// (scoreDecodedData/scoreLanguagePatterns/hasExcessiveControlChars in
// an earlier encoding-scoring module) and the secondary detector's
// per-script heuristic functions, generalized to the eight detectors
// named below.
type MessDetector struct {
	classifier *CharClassifier
	succession *SuccessionChecker
}

// NewMessDetector builds a detector sharing the classifier/succession
// caches with the rest of the probing pipeline.
func NewMessDetector(classifier *CharClassifier, succession *SuccessionChecker) *MessDetector {
	return &MessDetector{classifier: classifier, succession: succession}
}

// whitespaceOnlyFloor is the minimum rune count above which a
// whitespace-only chunk is considered content-free noise rather than
// plausible padding.
const whitespaceOnlyFloor = 10

// Ratio computes the mess ratio of text, stopping early and returning
// the current maximum once it clears earlyStopThreshold by a safety
// margin — probing a hopeless candidate to completion wastes work the
// prober has no use for.
func (m *MessDetector) Ratio(text string, earlyStopThreshold float64) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0.0
	}
	if len(runes) == 1 {
		return 0.0
	}
	if isAllSpace(runes) {
		if len(runes) > whitespaceOnlyFloor {
			return 1.0
		}
		return 0.0
	}

	const earlyStopMargin = 1.15
	stopAt := earlyStopThreshold * earlyStopMargin

	detectors := []func() (float64, bool){
		func() (float64, bool) { return m.tooManySymbolOrPunctuation(runes) },
		func() (float64, bool) { return m.tooManyAccentuated(runes) },
		func() (float64, bool) { return m.unprintableAndControl(runes) },
		func() (float64, bool) { return m.suspiciousDuplicateAccent(runes) },
		func() (float64, bool) { return m.suspiciousRange(runes) },
		func() (float64, bool) { return m.superWeirdWord(text) },
		func() (float64, bool) { return m.cjkInvalidStop(runes) },
		func() (float64, bool) { return m.archaicUpperLowerPlane(runes) },
	}

	max := 0.0
	for _, d := range detectors {
		ratio, eligible := d()
		if !eligible {
			continue
		}
		if ratio > max {
			max = ratio
		}
		if earlyStopThreshold > 0 && max >= stopAt {
			return max
		}
	}
	return max
}

func isAllSpace(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// tooManySymbolOrPunctuation scores punctuation and symbol characters
// against all non-whitespace characters: common ASCII punctuation
// counts 0.2, any other punctuation or symbol counts 1.0, since the
// latter is a stronger signal than ordinary punctuation noise.
func (m *MessDetector) tooManySymbolOrPunctuation(runes []rune) (float64, bool) {
	var weighted, total float64
	for _, ch := range runes {
		if unicode.IsSpace(ch) {
			continue
		}
		total++
		isPunctOrSym := m.classifier.IsPunctuation(ch) || m.classifier.IsSymbol(ch)
		if !isPunctOrSym {
			continue
		}
		if ch < unicode.MaxASCII && strings.ContainsRune(".,;:!?'\"()-", ch) {
			weighted += 0.2
		} else {
			weighted += 1.0
		}
	}
	if total == 0 {
		return 0, false
	}
	return clampRatio(weighted / total), true
}

// tooManyAccentuated reports the fraction of letters carrying a
// combining accent; natural text rarely exceeds a third.
func (m *MessDetector) tooManyAccentuated(runes []rune) (float64, bool) {
	var letters, accented float64
	for _, ch := range runes {
		if !unicode.IsLetter(ch) {
			continue
		}
		letters++
		if m.classifier.IsAccentuated(ch) {
			accented++
		}
	}
	if letters < 8 {
		return 0, false
	}
	ratio := accented / letters
	if ratio <= 0.34 {
		return 0, true
	}
	return clampRatio(ratio), true
}

// unprintableAndControl reports the fraction of unprintable code
// points; a handful in thousands of characters is already damning.
func (m *MessDetector) unprintableAndControl(runes []rune) (float64, bool) {
	var unprintable float64
	for _, ch := range runes {
		if m.classifier.IsUnprintable(ch) {
			unprintable++
		}
	}
	if unprintable == 0 {
		return 0, true
	}
	return clampRatio(unprintable * 8 / float64(len(runes))), true
}

// suspiciousDuplicateAccent counts consecutive identical accented
// letters, or the same base letter repeated with an accent — the
// classic fingerprint of a double mis-decode.
func (m *MessDetector) suspiciousDuplicateAccent(runes []rune) (float64, bool) {
	var letters, duplicates float64
	var prev rune = -1
	for _, ch := range runes {
		if !unicode.IsLetter(ch) {
			prev = -1
			continue
		}
		letters++
		if m.classifier.IsAccentuated(ch) && prev != -1 {
			if m.classifier.RemoveAccent(ch) == m.classifier.RemoveAccent(prev) {
				duplicates++
			}
		}
		prev = ch
	}
	if letters < 4 {
		return 0, false
	}
	return clampRatio(duplicates * 4 / letters), true
}

// suspiciousRange runs every adjacent non-whitespace pair through
// SuccessionChecker, scoring the fraction flagged suspicious.
func (m *MessDetector) suspiciousRange(runes []rune) (float64, bool) {
	var pairs, suspicious float64
	prevSet := false
	var prevRange string
	for _, ch := range runes {
		if unicode.IsSpace(ch) {
			prevSet = false
			continue
		}
		name, _ := m.classifier.RangeOf(ch)
		if prevSet {
			pairs++
			if m.succession.IsSuspicious(prevRange, name) {
				suspicious++
			}
		}
		prevRange = name
		prevSet = true
	}
	if pairs == 0 {
		return 0, false
	}
	return clampRatio(suspicious / pairs), true
}

// superWeirdWord tokenizes on whitespace and flags a word as weird
// when it mixes alphabetic and symbolic characters, or switches case
// mid-word in a pattern inconsistent with normal capitalization.
func (m *MessDetector) superWeirdWord(text string) (float64, bool) {
	words := strings.Fields(text)
	if len(words) < 4 {
		return 0, false
	}

	var weird float64
	for _, w := range words {
		runes := []rune(w)
		if len(runes) < 2 {
			continue
		}

		hasAlpha, hasSymbol := false, false
		caseFlips := 0
		lastWasUpper := false
		lastWasAlpha := false
		scriptsSeen := make(map[string]bool)

		for i, ch := range runes {
			if unicode.IsLetter(ch) {
				hasAlpha = true
				if i > 0 && lastWasAlpha {
					isUpper := unicode.IsUpper(ch)
					if isUpper != lastWasUpper && !(i == 1) {
						caseFlips++
					}
					lastWasUpper = isUpper
				} else {
					lastWasUpper = unicode.IsUpper(ch)
				}
				lastWasAlpha = true

				switch {
				case m.classifier.IsLatin(ch):
					scriptsSeen["latin"] = true
				case m.classifier.IsCJK(ch):
					scriptsSeen["cjk"] = true
				case m.classifier.IsHiragana(ch):
					scriptsSeen["hiragana"] = true
				case m.classifier.IsKatakana(ch):
					scriptsSeen["katakana"] = true
				case m.classifier.IsHangul(ch):
					scriptsSeen["hangul"] = true
				case m.classifier.IsThai(ch):
					scriptsSeen["thai"] = true
				}
			} else {
				lastWasAlpha = false
				if m.classifier.IsSymbol(ch) && !m.classifier.IsSeparator(ch) {
					hasSymbol = true
				}
			}
		}

		mixedScript := len(scriptsSeen) > 1
		if (hasAlpha && hasSymbol) || caseFlips > 1 || mixedScript {
			weird++
		}
	}
	return clampRatio(weird / float64(len(words))), true
}

// cjkInvalidStop flags CJK text punctuated with Latin sentence
// terminators ('.', '!', '?') instead of the CJK full-width forms.
func (m *MessDetector) cjkInvalidStop(runes []rune) (float64, bool) {
	var cjkCount, invalidStops, latinStops float64
	for i, ch := range runes {
		if m.classifier.IsCJK(ch) || m.classifier.IsHiragana(ch) || m.classifier.IsKatakana(ch) {
			cjkCount++
		}
		if ch == '.' || ch == '!' || ch == '?' {
			latinStops++
			if i > 0 && (m.classifier.IsCJK(runes[i-1]) || m.classifier.IsHiragana(runes[i-1]) || m.classifier.IsKatakana(runes[i-1])) {
				invalidStops++
			}
		}
	}
	if cjkCount < float64(len(runes))/4 {
		return 0, false
	}
	if latinStops == 0 {
		return 0, true
	}
	return clampRatio(invalidStops / latinStops), true
}

// archaicUpperLowerPlane reports the fraction of code points above
// the Basic Multilingual Plane's common range (rare historic scripts,
// private-use supplements) that real modern text almost never uses.
func (m *MessDetector) archaicUpperLowerPlane(runes []rune) (float64, bool) {
	var rare float64
	for _, ch := range runes {
		if ch > 0x2FFFF || (ch >= 0xE000 && ch <= 0xF8FF) {
			rare++
		}
	}
	if rare == 0 {
		return 0, true
	}
	return clampRatio(rare * 3 / float64(len(runes))), true
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
