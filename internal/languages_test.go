package internal

import "testing"

func TestLanguageProfileForKnownLanguage(t *testing.T) {
	t.Parallel()

	p, ok := languageProfileFor(English)
	if !ok {
		t.Fatal("languageProfileFor(English) not found")
	}
	if p.alphabet == "" {
		t.Error("English profile alphabet should not be empty")
	}
	if p.pureLatin != true {
		t.Error("English profile should be pureLatin")
	}
}

func TestLanguageProfileForUnknownLanguage(t *testing.T) {
	t.Parallel()

	if _, ok := languageProfileFor(Language("Klingon")); ok {
		t.Error("languageProfileFor(Klingon) should not be found")
	}
}

func TestEncodingToLanguagesUsesCanonicalNames(t *testing.T) {
	t.Parallel()

	for name := range mbEncodingToLanguages {
		if !ianaSupportedNameLooksCanonical(name) {
			t.Errorf("mbEncodingToLanguages key %q is not a recognized canonical encoding name", name)
		}
	}
}

func ianaSupportedNameLooksCanonical(name string) bool {
	for _, n := range ianaSupported {
		if n == name {
			return true
		}
	}
	return false
}

func TestTargetLanguagesForRestrictsByEncoding(t *testing.T) {
	t.Parallel()

	langs := targetLanguagesFor("windows-1251")
	if len(langs) != 2 || langs[0] != Russian || langs[1] != Ukrainian {
		t.Errorf("targetLanguagesFor(windows-1251) = %v, want [Russian Ukrainian]", langs)
	}

	if got := targetLanguagesFor("utf-8"); got != nil {
		t.Errorf("targetLanguagesFor(utf-8) = %v, want nil", got)
	}
	if got := targetLanguagesFor("not-a-real-encoding"); got != nil {
		t.Errorf("targetLanguagesFor(unknown) = %v, want nil", got)
	}
}

func TestLanguageTableCoversEveryConstant(t *testing.T) {
	t.Parallel()

	all := []Language{
		English, German, French, Spanish, Portuguese, Italian, Dutch, Swedish,
		Polish, Czech, Russian, Ukrainian, Turkish, Greek, Hebrew, Arabic,
		Vietnamese, Japanese, Korean, Chinese, Thai, Esperanto,
	}
	for _, lang := range all {
		if _, ok := languageProfileFor(lang); !ok {
			t.Errorf("languageTable has no entry for %s", lang)
		}
	}
}
