package internal

import "testing"

func TestRangeOfBasicBlocks(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(1024)

	tests := []struct {
		ch   rune
		want string
	}{
		{'A', "Basic Latin"},
		{'é', "Latin-1 Supplement"},
		{'α', "Greek and Coptic"},
		{'あ', "Hiragana"},
		{'漢', "CJK Unified Ideographs"},
		{'한', "Hangul Syllables"},
	}
	for _, tt := range tests {
		got, ok := c.RangeOf(tt.ch)
		if !ok || got != tt.want {
			t.Errorf("RangeOf(%q) = (%q, %v), want (%q, true)", tt.ch, got, ok, tt.want)
		}
	}
}

func TestRangeOfUnknown(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(1024)

	// 0x0800-0x08FF falls in a gap the curated table does not cover.
	if _, ok := c.RangeOf(0x0850); ok {
		t.Error("RangeOf(0x0850) = (_, true), want false for an uncovered block")
	}
}

func TestRangeScanCollectsDistinctBlocks(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(1024)

	ranges := c.RangeScan("Aあ漢")
	want := []string{"Basic Latin", "Hiragana", "CJK Unified Ideographs"}
	for _, name := range want {
		if !ranges[name] {
			t.Errorf("RangeScan() missing %q in %v", name, ranges)
		}
	}
	if len(ranges) != len(want) {
		t.Errorf("RangeScan() = %v, want exactly %v", ranges, want)
	}
}

func TestIsUnicodeRangeSecondary(t *testing.T) {
	t.Parallel()

	if !isUnicodeRangeSecondary("CJK Compatibility Forms") {
		t.Error(`isUnicodeRangeSecondary("CJK Compatibility Forms") = false, want true`)
	}
	if isUnicodeRangeSecondary("Basic Latin") {
		t.Error(`isUnicodeRangeSecondary("Basic Latin") = true, want false`)
	}
}

func TestRangeOfIsMemoized(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(1024)

	first, _ := c.RangeOf('A')
	second, _ := c.RangeOf('A')
	if first != second {
		t.Errorf("RangeOf('A') inconsistent across calls: %q vs %q", first, second)
	}
	if c.rangeCache.Len() != 1 {
		t.Errorf("rangeCache.Len() = %d, want 1 after repeated lookup of the same rune", c.rangeCache.Len())
	}
}
