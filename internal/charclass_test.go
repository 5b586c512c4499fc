package internal

import "testing"

func TestCharClassifierBasicLatin(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if !c.IsLatin('a') {
		t.Error("IsLatin('a') = false, want true")
	}
	if c.IsLatin('あ') {
		t.Error("IsLatin('あ') = true, want false")
	}
	if !c.IsHiragana('あ') {
		t.Error("IsHiragana('あ') = false, want true")
	}
	if !c.IsKatakana('ア') {
		t.Error("IsKatakana('ア') = false, want true")
	}
	if !c.IsCJK('漢') {
		t.Error("IsCJK('漢') = false, want true")
	}
	if !c.IsHangul('한') {
		t.Error("IsHangul('한') = false, want true")
	}
	if !c.IsThai('ก') {
		t.Error("IsThai('ก') = false, want true")
	}
}

func TestCharClassifierPunctuationAndSeparator(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if !c.IsPunctuation(',') {
		t.Error("IsPunctuation(',') = false, want true")
	}
	if !c.IsSeparator(' ') {
		t.Error("IsSeparator(' ') = false, want true")
	}
	if c.IsSeparator('a') {
		t.Error("IsSeparator('a') = true, want false")
	}
}

func TestCharClassifierSymbol(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if !c.IsSymbol('+') {
		t.Error("IsSymbol('+') = false, want true")
	}
	if !c.IsSymbol('5') {
		t.Error("IsSymbol('5') = false, want true (digit counts as symbol)")
	}
}

func TestCharClassifierUnprintable(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if !c.IsUnprintable('\x00') {
		t.Error("IsUnprintable(NUL) = false, want true")
	}
	if c.IsUnprintable(' ') {
		t.Error("IsUnprintable(' ') = true, want false")
	}
	if c.IsUnprintable('a') {
		t.Error("IsUnprintable('a') = true, want false")
	}
	if c.IsUnprintable('\x1A') {
		t.Error("IsUnprintable(SUB) = true, want false (explicitly tolerated)")
	}
}

func TestCharClassifierAccentuated(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	cases := []struct {
		ch   rune
		want bool
	}{
		{'é', true},
		{'à', true},
		{'ç', true},
		{'ü', true},
		{'a', false},
		{'z', false},
	}
	for _, tc := range cases {
		if got := c.IsAccentuated(tc.ch); got != tc.want {
			t.Errorf("IsAccentuated(%q) = %v, want %v", tc.ch, got, tc.want)
		}
	}
}

func TestCharClassifierRemoveAccent(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if got := c.RemoveAccent('é'); got != 'e' {
		t.Errorf("RemoveAccent('é') = %q, want 'e'", got)
	}
	if got := c.RemoveAccent('a'); got != 'a' {
		t.Errorf("RemoveAccent('a') = %q, want 'a'", got)
	}
}

func TestCharClassifierCaseVariable(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(DefaultCacheCapacity)

	if !c.IsCaseVariable('a') {
		t.Error("IsCaseVariable('a') = false, want true")
	}
	if !c.IsCaseVariable('A') {
		t.Error("IsCaseVariable('A') = false, want true")
	}
	if c.IsCaseVariable('1') {
		t.Error("IsCaseVariable('1') = true, want false")
	}
	if c.IsCaseVariable('漢') {
		t.Error("IsCaseVariable('漢') = true, want false")
	}
}

func TestCharClassifierCachesAreMemoized(t *testing.T) {
	t.Parallel()
	c := NewCharClassifier(10)

	want := c.IsPunctuation(',')
	if got := c.IsPunctuation(','); got != want {
		t.Errorf("repeated IsPunctuation call diverged: %v != %v", got, want)
	}
	if c.predicateCache.Len() == 0 {
		t.Error("predicate cache should have recorded at least one entry")
	}
}
