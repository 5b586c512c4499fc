package internal

import "testing"

func newTestMessDetector() *MessDetector {
	return NewMessDetector(
		NewCharClassifier(DefaultCacheCapacity),
		NewSuccessionChecker(DefaultRangePairCacheCapacity),
	)
}

func TestMessRatioEmptyAndSingle(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	if got := m.Ratio("", 0.2); got != 0.0 {
		t.Errorf("Ratio(\"\") = %v, want 0.0", got)
	}
	if got := m.Ratio("a", 0.2); got != 0.0 {
		t.Errorf("Ratio(\"a\") = %v, want 0.0", got)
	}
}

func TestMessRatioWhitespaceOnly(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	longSpaces := "                          "
	if got := m.Ratio(longSpaces, 0.2); got != 1.0 {
		t.Errorf("Ratio(long whitespace) = %v, want 1.0", got)
	}
	if got := m.Ratio("   ", 0.2); got != 0.0 {
		t.Errorf("Ratio(short whitespace) = %v, want 0.0", got)
	}
}

func TestMessRatioCleanEnglishIsLow(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	text := "The quick brown fox jumps over the lazy dog. It was a fine day for reading."
	if got := m.Ratio(text, 0.2); got >= 0.2 {
		t.Errorf("Ratio(clean English) = %v, want < 0.2", got)
	}
}

func TestMessRatioGibberishIsHigh(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	text := "\x01\x02\x03\x04###@@@$$$%%%^^^&&&***???!!!~~~```"
	if got := m.Ratio(text, 0.2); got < 0.2 {
		t.Errorf("Ratio(gibberish) = %v, want >= 0.2", got)
	}
}

func TestMessRatioEarlyStop(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	text := "\x01\x02\x03\x04\x05\x06\x07\x08" + strRepeat("####", 200)
	got := m.Ratio(text, 0.1)
	if got < 0.1 {
		t.Errorf("Ratio() = %v, want >= 0.1 (should trip early stop)", got)
	}
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestSuspiciousRangeMixedScripts(t *testing.T) {
	t.Parallel()
	m := newTestMessDetector()

	ratio, eligible := m.suspiciousRange([]rune("абвгдΑΒΓΔ"))
	if !eligible {
		t.Fatal("suspiciousRange should be eligible for mixed-script text")
	}
	if ratio == 0 {
		t.Error("suspiciousRange() = 0, want > 0 for Cyrillic/Greek mix")
	}
}
