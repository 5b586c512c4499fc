package internal

import "testing"

func TestSuccessionCheckerBasics(t *testing.T) {
	t.Parallel()
	s := NewSuccessionChecker(DefaultRangePairCacheCapacity)

	cases := []struct {
		name  string
		a, b  string
		want  bool
	}{
		{"identical ranges", "Basic Latin", "Basic Latin", false},
		{"both Latin variants", "Basic Latin", "Latin Extended-A", false},
		{"Latin plus combining marks", "Basic Latin", "Combining Diacritical Marks", false},
		{"emoticon with anything", "Emoticons", "Cyrillic", false},
		{"Hiragana with CJK", "Hiragana", "CJK Unified Ideographs", false},
		{"Hiragana with Katakana", "Hiragana", "Katakana", false},
		{"Hangul with CJK", "Hangul Syllables", "CJK Unified Ideographs", false},
		{"Hangul with Basic Latin", "Hangul Syllables", "Basic Latin", false},
		{"CJK with CJK punctuation", "CJK Unified Ideographs", "CJK Symbols and Punctuation", false},
		{"Cyrillic with Hebrew", "Cyrillic", "Hebrew", true},
		{"Latin with Cyrillic", "Basic Latin", "Cyrillic", true},
		{"Greek with Arabic", "Greek and Coptic", "Arabic", true},
		{"unknown range", "", "Cyrillic", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsSuspicious(tc.a, tc.b); got != tc.want {
				t.Errorf("IsSuspicious(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := s.IsSuspicious(tc.b, tc.a); got != tc.want {
				t.Errorf("IsSuspicious(%q, %q) (reversed) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestSuccessionCheckerCached(t *testing.T) {
	t.Parallel()
	s := NewSuccessionChecker(DefaultRangePairCacheCapacity)

	s.IsSuspicious("Cyrillic", "Hebrew")
	if s.pairCache.Len() != 1 {
		t.Errorf("pairCache.Len() = %d, want 1", s.pairCache.Len())
	}
	s.IsSuspicious("Hebrew", "Cyrillic")
	if s.pairCache.Len() != 1 {
		t.Errorf("pairCache.Len() = %d after reversed lookup, want 1 (normalized key)", s.pairCache.Len())
	}
}
