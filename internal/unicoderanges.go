package internal

import "strings"

// unicodeRange names one Unicode block and its inclusive code-point
// interval. The table below is a curated subset of the Unicode block
// registry covering the blocks the classifier predicates, the mess
// sub-detectors and the suspicious-succession rules name, in ascending
// code-point order except for Supplemental Punctuation, which is listed
// last. There is no "Control character" entry, so IsUnprintable's
// range-name check never matches; its Cc category test covers those
// code points.
//
// This is treated as an external, read-only input: the detection core
// never builds or mutates this table, it only calls RangeOf/RangeScan
// against it.
type unicodeRange struct {
	name string
	lo   rune
	hi   rune
}

var unicodeRangesCombined = []unicodeRange{
	{"Basic Latin", 0x0000, 0x007F},
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Latin Extended-A", 0x0100, 0x017F},
	{"Latin Extended-B", 0x0180, 0x024F},
	{"IPA Extensions", 0x0250, 0x02AF},
	{"Spacing Modifier Letters", 0x02B0, 0x02FF},
	{"Combining Diacritical Marks", 0x0300, 0x036F},
	{"Greek and Coptic", 0x0370, 0x03FF},
	{"Cyrillic", 0x0400, 0x04FF},
	{"Cyrillic Supplement", 0x0500, 0x052F},
	{"Armenian", 0x0530, 0x058F},
	{"Hebrew", 0x0590, 0x05FF},
	{"Arabic", 0x0600, 0x06FF},
	{"Syriac", 0x0700, 0x074F},
	{"Thaana", 0x0780, 0x07BF},
	{"Devanagari", 0x0900, 0x097F},
	{"Bengali", 0x0980, 0x09FF},
	{"Gurmukhi", 0x0A00, 0x0A7F},
	{"Gujarati", 0x0A80, 0x0AFF},
	{"Tamil", 0x0B80, 0x0BFF},
	{"Telugu", 0x0C00, 0x0C7F},
	{"Kannada", 0x0C80, 0x0CFF},
	{"Malayalam", 0x0D00, 0x0D7F},
	{"Thai", 0x0E00, 0x0E7F},
	{"Lao", 0x0E80, 0x0EFF},
	{"Tibetan", 0x0F00, 0x0FFF},
	{"Georgian", 0x10A0, 0x10FF},
	{"Hangul Jamo", 0x1100, 0x11FF},
	{"Latin Extended Additional", 0x1E00, 0x1EFF},
	{"Greek Extended", 0x1F00, 0x1FFF},
	{"General Punctuation", 0x2000, 0x206F},
	{"Superscripts and Subscripts", 0x2070, 0x209F},
	{"Currency Symbols", 0x20A0, 0x20CF},
	{"Combining Diacritical Marks for Symbols", 0x20D0, 0x20FF},
	{"Letterlike Symbols", 0x2100, 0x214F},
	{"Number Forms", 0x2150, 0x218F},
	{"Arrows", 0x2190, 0x21FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Miscellaneous Technical", 0x2300, 0x23FF},
	{"Control Pictures", 0x2400, 0x243F},
	{"Enclosed Alphanumerics", 0x2460, 0x24FF},
	{"Box Drawing", 0x2500, 0x257F},
	{"Block Elements", 0x2580, 0x259F},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Miscellaneous Symbols", 0x2600, 0x26FF},
	{"Dingbats", 0x2700, 0x27BF},
	{"Supplemental Arrows-A", 0x27F0, 0x27FF},
	{"Braille Patterns", 0x2800, 0x28FF},
	{"CJK Radicals Supplement", 0x2E80, 0x2EFF},
	{"Kangxi Radicals", 0x2F00, 0x2FDF},
	{"CJK Symbols and Punctuation", 0x3000, 0x303F},
	{"Hiragana", 0x3040, 0x309F},
	{"Katakana", 0x30A0, 0x30FF},
	{"Bopomofo", 0x3100, 0x312F},
	{"Hangul Compatibility Jamo", 0x3130, 0x318F},
	{"Kanbun", 0x3190, 0x319F},
	{"Enclosed CJK Letters and Months", 0x3200, 0x32FF},
	{"CJK Compatibility", 0x3300, 0x33FF},
	{"CJK Unified Ideographs Extension A", 0x3400, 0x4DBF},
	{"Yijing Hexagram Symbols", 0x4DC0, 0x4DFF},
	{"CJK Unified Ideographs", 0x4E00, 0x9FFF},
	{"Yi Syllables", 0xA000, 0xA48F},
	{"Hangul Syllables", 0xAC00, 0xD7A3},
	{"Private Use Area", 0xE000, 0xF8FF},
	{"CJK Compatibility Ideographs", 0xF900, 0xFAFF},
	{"Alphabetic Presentation Forms", 0xFB00, 0xFB4F},
	{"Arabic Presentation Forms-A", 0xFB50, 0xFDFF},
	{"Variation Selectors", 0xFE00, 0xFE0F},
	{"Vertical Forms", 0xFE10, 0xFE1F},
	{"Combining Half Marks", 0xFE20, 0xFE2F},
	{"CJK Compatibility Forms", 0xFE30, 0xFE4F},
	{"Small Form Variants", 0xFE50, 0xFE6F},
	{"Arabic Presentation Forms-B", 0xFE70, 0xFEFF},
	{"Halfwidth and Fullwidth Forms", 0xFF00, 0xFFEF},
	{"Specials", 0xFFF0, 0xFFFF},
	{"Emoticons", 0x1F600, 0x1F64F},
	{"Supplemental Punctuation", 0x2E00, 0x2E7F},
}

// unicodeSecondaryRangeKeyword is the set of "secondary" words that do
// not, by themselves, indicate two ranges belong to the same script
// family.
var unicodeSecondaryRangeKeyword = map[string]bool{
	"Supplement":    true,
	"Extended":      true,
	"Forms":         true,
	"Punctuation":   true,
	"Symbols":       true,
	"Additional":    true,
	"Marks":         true,
	"Radicals":      true,
	"Compatibility": true,
}

// RangeOf returns the name of the first Unicode block whose interval
// contains ch, or ("", false) if ch falls in none of them.
func (c *CharClassifier) RangeOf(ch rune) (string, bool) {
	return c.rangeCache.GetOrCompute(ch, func() rangeLookup {
		for _, r := range unicodeRangesCombined {
			if ch >= r.lo && ch <= r.hi {
				return rangeLookup{name: r.name, ok: true}
			}
		}
		return rangeLookup{}
	}).unwrap()
}

type rangeLookup struct {
	name string
	ok   bool
}

func (r rangeLookup) unwrap() (string, bool) { return r.name, r.ok }

// RangeScan returns the set of distinct Unicode block names touched by
// the runes of s.
func (c *CharClassifier) RangeScan(s string) map[string]bool {
	result := make(map[string]bool)
	for _, ch := range s {
		if name, ok := c.RangeOf(ch); ok {
			result[name] = true
		}
	}
	return result
}

// isUnicodeRangeSecondary reports whether rangeName contains one of the
// "secondary" keywords that do not establish a shared script family.
func isUnicodeRangeSecondary(rangeName string) bool {
	for kw := range unicodeSecondaryRangeKeyword {
		if strings.Contains(rangeName, kw) {
			return true
		}
	}
	return false
}
