package chardet

import "github.com/cybergodev/chardet/internal"

// CharsetMatch is one candidate encoding produced by detection: its
// canonical IANA name, aggregate mess ratio, BOM flag, per-language
// coherence scores, detected Unicode ranges, known aliases, and (when
// the whole input decoded cleanly) the fully decoded text.
type CharsetMatch = internal.CharsetMatch

// LanguageScore pairs a language with its coherence score against a
// candidate's decoded text.
type LanguageScore = internal.LanguageScore

// MatchSet is an insertion-ordered collection of CharsetMatch values,
// deduplicated by decoded-payload fingerprint and ordered by probe
// priority; the first entry is the best guess.
type MatchSet = internal.MatchSet
