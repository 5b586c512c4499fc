package internal

import "hash/fnv"

// CharsetMatch is one candidate produced by the prober for a single
// probed encoding: its canonical name, aggregate mess ratio, BOM
// flag, per-language coherence, detected Unicode ranges, known
// aliases, and (when materialized) the decoded text.
type CharsetMatch struct {
	Encoding       string
	MeanMess       float64
	HasBOM         bool
	Coherence      []LanguageScore
	UnicodeRanges  []string
	Aliases        []string
	DecodedPayload string
	HasPayload     bool
	fingerprint    uint64

	// fingerprintSeed substitutes for DecodedPayload when HasPayload is
	// false: bytes that still vary per encoding (e.g. the chunk texts
	// actually sampled while probing) so two non-materialized matches
	// for different encodings don't collide on the same dedup key.
	fingerprintSeed string
}

// fingerprintBasis returns the bytes Fingerprint should hash for this
// match: the decoded payload when one materialized, otherwise
// fingerprintSeed.
func (m *CharsetMatch) fingerprintBasis() []byte {
	if m.HasPayload {
		return []byte(m.DecodedPayload)
	}
	return []byte(m.fingerprintSeed)
}

// Fingerprint returns a stable hash of the decoded payload (or, when
// no payload was materialized, the caller-supplied raw bytes) used to
// deduplicate encodings that decode to identical observed text.
func Fingerprint(payload []byte) uint64 {
	h := fnv.New64a()
	h.Write(payload)
	return h.Sum64()
}

// MatchSet is an insertion-ordered collection of CharsetMatch with
// fingerprint-based deduplication: encodings that decode to the same
// observed text collapse into one entry instead of competing.
type MatchSet struct {
	matches     []*CharsetMatch
	byFingerprint map[uint64]*CharsetMatch
}

// NewMatchSet returns an empty result set.
func NewMatchSet() *MatchSet {
	return &MatchSet{byFingerprint: make(map[uint64]*CharsetMatch)}
}

// Append adds match to the set. If an existing match shares its
// fingerprint, the new match's aliases are merged into the existing
// one and no new entry is inserted — two encodings that produce
// identical observed text are aliases, not competitors.
func (s *MatchSet) Append(match *CharsetMatch) {
	if existing, ok := s.byFingerprint[match.fingerprint]; ok {
		existing.Aliases = mergeUnique(existing.Aliases, match.Aliases)
		existing.Aliases = mergeUnique(existing.Aliases, []string{match.Encoding})
		return
	}
	s.matches = append(s.matches, match)
	s.byFingerprint[match.fingerprint] = match
}

// SetFingerprint assigns match's dedup key; callers must set this
// before Append for dedup to take effect.
func SetFingerprint(match *CharsetMatch, payload []byte) {
	match.fingerprint = Fingerprint(payload)
}

// Best returns the first match (insertion order reflects the
// prober's probe-priority order), or nil if the set is empty.
func (s *MatchSet) Best() *CharsetMatch {
	if len(s.matches) == 0 {
		return nil
	}
	return s.matches[0]
}

// Len reports how many distinct matches are in the set.
func (s *MatchSet) Len() int { return len(s.matches) }

// All returns the matches in insertion order.
func (s *MatchSet) All() []*CharsetMatch { return s.matches }

// GetByEncoding looks up a match by its canonical name or any of its
// recorded aliases.
func (s *MatchSet) GetByEncoding(name string) *CharsetMatch {
	for _, m := range s.matches {
		if m.Encoding == name {
			return m
		}
		for _, alias := range m.Aliases {
			if alias == name {
				return m
			}
		}
	}
	return nil
}

func mergeUnique(existing []string, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e] = true
	}
	for _, a := range additions {
		if !seen[a] {
			seen[a] = true
			existing = append(existing, a)
		}
	}
	return existing
}
