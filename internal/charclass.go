package internal

import (
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CharClassifier exposes pure boolean predicates over a single code
// point, backed by process-wide bounded per-character predicate
// caches (suggested capacity ≈ 0x110000, the size of the Unicode
// code space). Every predicate is safe for concurrent use.
type CharClassifier struct {
	predicateCache *Cache[charPredicateKey, bool]
	rangeCache     *Cache[rune, rangeLookup]
}

type charPredicateKey struct {
	ch   rune
	kind predicateKind
}

type predicateKind uint8

const (
	predPunctuation predicateKind = iota
	predSymbol
	predSeparator
	predUnprintable
	predAccentuated
	predLatin
	predCJK
	predHiragana
	predKatakana
	predHangul
	predThai
	predCaseVariable
	predEmoticon
)

// NewCharClassifier builds a classifier whose two caches hold at most
// maxEntries entries each. The range cache keys on the code point
// alone; the predicate cache keys on (code point, predicate kind), so
// 0x110000 entries cover every code point for the range lookup but
// not every code point for every predicate.
func NewCharClassifier(maxEntries int) *CharClassifier {
	return &CharClassifier{
		predicateCache: NewCache[charPredicateKey, bool](maxEntries, 0),
		rangeCache:     NewCache[rune, rangeLookup](maxEntries, 0),
	}
}

func (c *CharClassifier) cached(ch rune, kind predicateKind, compute func() bool) bool {
	return c.predicateCache.GetOrCompute(charPredicateKey{ch, kind}, compute)
}

// IsPunctuation reports whether ch is punctuation: general category
// starting with "P", or a range name containing "Punctuation".
func (c *CharClassifier) IsPunctuation(ch rune) bool {
	return c.cached(ch, predPunctuation, func() bool {
		if unicode.IsPunct(ch) {
			return true
		}
		name, ok := c.RangeOf(ch)
		return ok && containsAny(name, "Punctuation")
	})
}

// IsSymbol reports whether ch is a symbol: general category "N" or
// "S", or a range name containing "Forms".
func (c *CharClassifier) IsSymbol(ch rune) bool {
	return c.cached(ch, predSymbol, func() bool {
		if unicode.IsNumber(ch) || unicode.IsSymbol(ch) {
			return true
		}
		name, ok := c.RangeOf(ch)
		return ok && containsAny(name, "Forms")
	})
}

// IsSeparator reports whether ch is whitespace, one of the fixed
// separator runes, or in category Po/Pd/Pc/Z*.
func (c *CharClassifier) IsSeparator(ch rune) bool {
	return c.cached(ch, predSeparator, func() bool {
		if unicode.IsSpace(ch) {
			return true
		}
		switch ch {
		case '｜', '+', '<', '>':
			return true
		}
		return unicode.Is(unicode.Po, ch) || unicode.Is(unicode.Pd, ch) ||
			unicode.Is(unicode.Pc, ch) || unicode.Is(unicode.Zs, ch) ||
			unicode.Is(unicode.Zl, ch) || unicode.Is(unicode.Zp, ch)
	})
}

// IsUnprintable reports whether ch is a non-whitespace control
// character outside the small allow-list of tolerated control codes.
func (c *CharClassifier) IsUnprintable(ch rune) bool {
	return c.cached(ch, predUnprintable, func() bool {
		if unicode.IsSpace(ch) {
			return false
		}
		if ch == '\x1A' || ch == 0xFEFF {
			return false
		}
		if unicode.IsPrint(ch) {
			return false
		}
		if unicode.Is(unicode.Cc, ch) {
			return true
		}
		name, ok := c.RangeOf(ch)
		return ok && containsAny(name, "Control character")
	})
}

// IsAccentuated reports whether ch's canonical (NFD) decomposition
// yields a base code point followed only by nonspacing combining marks
// (category Mn), such as WITH GRAVE/ACUTE/CEDILLA/DIAERESIS/
// CIRCUMFLEX/TILDE. Ported from the Rust teacher's
// unic::ucd::normal::decompose_canonical-based is_accentuated, using
// golang.org/x/text/unicode/norm since Go's standard library has no
// Unicode character-name database to pattern-match against.
func (c *CharClassifier) IsAccentuated(ch rune) bool {
	return c.cached(ch, predAccentuated, func() bool {
		decomposed := []rune(norm.NFD.String(string(ch)))
		if len(decomposed) < 2 {
			return false
		}
		for _, r := range decomposed[1:] {
			if !unicode.Is(unicode.Mn, r) {
				return false
			}
		}
		return true
	})
}

// RemoveAccent returns the base code point of ch's canonical
// decomposition, or ch itself if it does not decompose.
func (c *CharClassifier) RemoveAccent(ch rune) rune {
	decomposed := []rune(norm.NFD.String(string(ch)))
	if len(decomposed) == 0 {
		return ch
	}
	return decomposed[0]
}

// IsLatin reports whether ch belongs to the Latin script.
func (c *CharClassifier) IsLatin(ch rune) bool {
	return c.cached(ch, predLatin, func() bool { return unicode.Is(unicode.Latin, ch) })
}

// IsCJK reports whether ch belongs to the Han (CJK ideograph) script.
func (c *CharClassifier) IsCJK(ch rune) bool {
	return c.cached(ch, predCJK, func() bool { return unicode.Is(unicode.Han, ch) })
}

// IsHiragana reports whether ch belongs to the Hiragana script.
func (c *CharClassifier) IsHiragana(ch rune) bool {
	return c.cached(ch, predHiragana, func() bool { return unicode.Is(unicode.Hiragana, ch) })
}

// IsKatakana reports whether ch belongs to the Katakana script.
func (c *CharClassifier) IsKatakana(ch rune) bool {
	return c.cached(ch, predKatakana, func() bool { return unicode.Is(unicode.Katakana, ch) })
}

// IsHangul reports whether ch belongs to the Hangul script.
func (c *CharClassifier) IsHangul(ch rune) bool {
	return c.cached(ch, predHangul, func() bool { return unicode.Is(unicode.Hangul, ch) })
}

// IsThai reports whether ch belongs to the Thai script.
func (c *CharClassifier) IsThai(ch rune) bool {
	return c.cached(ch, predThai, func() bool { return unicode.Is(unicode.Thai, ch) })
}

// IsCaseVariable reports whether exactly one of IsLower/IsUpper holds.
func (c *CharClassifier) IsCaseVariable(ch rune) bool {
	return c.cached(ch, predCaseVariable, func() bool {
		return unicode.IsLower(ch) != unicode.IsUpper(ch)
	})
}

// IsEmoticon reports whether ch falls in the Emoticons block.
func (c *CharClassifier) IsEmoticon(ch rune) bool {
	return c.cached(ch, predEmoticon, func() bool {
		name, ok := c.RangeOf(ch)
		return ok && containsAny(name, "Emoticons")
	})
}

// IsASCII reports whether ch is in the ASCII range.
func (c *CharClassifier) IsASCII(ch rune) bool {
	return ch <= unicode.MaxASCII
}

func containsAny(s, substr string) bool {
	return len(s) >= len(substr) && indexOf(s, substr) >= 0
}

func indexOf(s, substr string) int {
	n, m := len(s), len(substr)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return i
		}
	}
	return -1
}

// DefaultCacheCapacity is the suggested classifier-cache capacity.
// Large enough to hold a predicate entry for every Unicode code point
// without eviction under normal workloads.
const DefaultCacheCapacity = 0x110000

// DefaultRangePairCacheCapacity is the suggested suspicious-range-pair
// cache capacity.
const DefaultRangePairCacheCapacity = 1024

// defaultCacheTTL documents that classifier caches never expire on
// their own; only LRU eviction bounds their size.
const defaultCacheTTL = time.Duration(0)
