package internal

import (
	"strings"
	"unicode"
)

// Settings controls the probing algorithm: the only
// input, besides the raw bytes, the prober takes.
type Settings struct {
	Steps               int
	ChunkSize           int
	Threshold           float64
	LanguageThreshold   float64
	PreemptiveBehaviour bool
	EnableFallback      bool
	IncludeEncodings    []string
	ExcludeEncodings    []string
}

// DefaultSettings returns the algorithm's documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Steps:               5,
		ChunkSize:           512,
		Threshold:           0.2,
		LanguageThreshold:   0.1,
		PreemptiveBehaviour: true,
		EnableFallback:      true,
	}
}

// TooSmallSequence is the algorithm's small-input size constant. FromBytes
// does not consult it: whether the whole input is processed as one
// chunk is decided by comparing its length with Steps*ChunkSize.
const TooSmallSequence = 32

// TooBigSequence is the byte count above which single-byte-encoding
// probing is restricted to an initial scan plus a tail verification.
const TooBigSequence = 1 << 20 // 1 MiB

// MaxProcessedBytes bounds the initial scan window for large inputs.
const MaxProcessedBytes = 2 << 20 // 2 MiB

// Prober is the top-level encoding-detection state machine: it orders
// candidate encodings, runs chunked probing through CodecBridge, and
// scores each surviving candidate with MessDetector and
// CoherenceEngine. Ported from the Rust original's
// EncodingProber::from_bytes (original_source/src/lib.rs), the
// specification's sole surviving reference for this algorithm.
type Prober struct {
	classifier *CharClassifier
	succession *SuccessionChecker
	mess       *MessDetector
	coherence  *CoherenceEngine
	codec      *CodecBridge
}

// NewProber wires a prober from freshly constructed, shared
// sub-components sized at their default capacities.
func NewProber() *Prober {
	return NewProberWithCapacity(DefaultCacheCapacity, DefaultRangePairCacheCapacity)
}

// NewProberWithCapacity wires a prober whose classifier and
// succession caches are sized at classifierCapacity and
// rangePairCapacity respectively.
func NewProberWithCapacity(classifierCapacity, rangePairCapacity int) *Prober {
	classifier := NewCharClassifier(classifierCapacity)
	succession := NewSuccessionChecker(rangePairCapacity)
	return &Prober{
		classifier: classifier,
		succession: succession,
		mess:       NewMessDetector(classifier, succession),
		coherence:  NewCoherenceEngine(classifier),
		codec:      NewCodecBridge(),
	}
}

// candidateStatus is the three-way outcome of probing one encoding,
// a status-flag rendering of what the original Rust implementation
// expressed with labeled-loop break/continue control flow.
type candidateStatus int

const (
	statusAccepted candidateStatus = iota
	statusSoftFailed
	statusHardFailed
)

// FromBytes detects the encoding of data under settings and returns
// the resulting match set (possibly a single fallback match, possibly
// empty when the input has no viable candidate and fallback is
// disabled).
func (p *Prober) FromBytes(data []byte, settings Settings) *MatchSet {
	normalizeSettings(&settings)

	if len(data) == 0 {
		return singleUTF8Match()
	}

	if len(data) <= settings.Steps*settings.ChunkSize {
		settings.Steps, settings.ChunkSize = 1, len(data)
	} else if len(data)/settings.Steps < settings.ChunkSize {
		settings.ChunkSize = len(data) / settings.Steps
	}
	if settings.ChunkSize < 1 {
		settings.ChunkSize = 1
	}

	isTooLarge := len(data) > TooBigSequence

	priority, fallbackHintName := p.buildPriority(data, settings)
	probeOrder := buildProbeOrder(priority)

	bomName, bomSig, hasBOM := p.codec.IdentifySigOrBom(data)

	results := NewMatchSet()
	softFailures := make(map[string]bool)

	var specifiedFallback, utf8Fallback, asciiFallback *CharsetMatch

	for _, name := range probeOrder {
		if isExcluded(name, settings) {
			continue
		}
		if bomDependentEncodings[name] && !(hasBOM && bomName == name) {
			continue
		}

		decodeInput := data
		encHasBOM := hasBOM && bomName == name
		if encHasBOM && p.codec.ShouldStripSigOrBom(name) {
			decodeInput = data[len(bomSig):]
		}

		status, match := p.probeOneEncoding(name, decodeInput, encHasBOM, settings, isTooLarge, softFailures)

		switch status {
		case statusHardFailed:
			continue
		case statusSoftFailed:
			softFailures[name] = true
			if settings.EnableFallback && isPrioritized(name, priority) {
				switch {
				case name == fallbackHintName:
					specifiedFallback = weakMatch(name, encHasBOM)
				case name == "utf-8":
					utf8Fallback = weakMatch(name, encHasBOM)
				case name == "ascii":
					asciiFallback = weakMatch(name, encHasBOM)
				}
			}
			continue
		}

		if match == nil {
			continue
		}
		SetFingerprint(match, match.fingerprintBasis())
		results.Append(match)

		if (match.MeanMess < 0.1 && isPrioritized(name, priority)) || name == bomName {
			only := NewMatchSet()
			only.Append(match)
			return only
		}
	}

	if results.Len() == 0 && settings.EnableFallback {
		for _, fb := range []*CharsetMatch{specifiedFallback, utf8Fallback, asciiFallback} {
			if fb != nil {
				single := NewMatchSet()
				SetFingerprint(fb, []byte(fb.DecodedPayload))
				single.Append(fb)
				return single
			}
		}
	}

	return results
}

func singleUTF8Match() *MatchSet {
	m := &CharsetMatch{Encoding: "utf-8", MeanMess: 0.0, HasPayload: true}
	SetFingerprint(m, nil)
	set := NewMatchSet()
	set.Append(m)
	return set
}

func weakMatch(name string, hasBOM bool) *CharsetMatch {
	return &CharsetMatch{Encoding: name, MeanMess: 1.0, HasBOM: hasBOM}
}

func normalizeSettings(s *Settings) {
	if s.Steps < 1 {
		s.Steps = 1
	}
	if s.ChunkSize < 1 {
		s.ChunkSize = 1
	}
}

func isExcluded(name string, settings Settings) bool {
	for _, ex := range settings.ExcludeEncodings {
		if ex == name {
			return true
		}
	}
	if len(settings.IncludeEncodings) == 0 {
		return false
	}
	for _, in := range settings.IncludeEncodings {
		if in == name {
			return false
		}
	}
	return true
}

func isPrioritized(name string, priority []string) bool {
	for _, p := range priority {
		if p == name {
			return true
		}
	}
	return false
}

// buildPriority constructs the ordered priority list: declarative
// hint first, then BOM/SIG, then ascii/utf-8 defaults.
// Returns the priority list and, separately, the name that should act
// as the "specified encoding" fallback slot (the declarative hint, if
// any).
func (p *Prober) buildPriority(data []byte, settings Settings) ([]string, string) {
	var priority []string
	var specified string

	if settings.PreemptiveBehaviour {
		if hint, ok := p.scanDeclarativeHint(data); ok {
			priority = append(priority, hint)
			specified = hint
		}
	}

	if bomName, _, ok := p.codec.IdentifySigOrBom(data); ok {
		priority = append(priority, bomName)
	}

	priority = append(priority, "ascii", "utf-8")
	return priority, specified
}

// scanDeclarativeHint decodes the first declarativeHintScanWindow
// bytes as ASCII (best-effort, ignoring invalid bytes) and looks for
// an HTML/XML/source-magic-comment encoding declaration.
func (p *Prober) scanDeclarativeHint(data []byte) (string, bool) {
	window := data
	if len(window) > declarativeHintScanWindow {
		window = window[:declarativeHintScanWindow]
	}
	ascii := make([]byte, 0, len(window))
	for _, b := range window {
		if b < unicode.MaxASCII {
			ascii = append(ascii, b)
		} else {
			ascii = append(ascii, ' ')
		}
	}

	m := possibleEncodingIndication.FindSubmatch(ascii)
	if m == nil {
		return "", false
	}
	return p.codec.IANAName(string(m[1]))
}

// buildProbeOrder starts from the full IANA-supported list and moves
// prioritized entries to the front, iterating the priority list in
// reverse so earlier priority entries end up first.
func buildProbeOrder(priority []string) []string {
	order := make([]string, len(ianaSupported))
	copy(order, ianaSupported)

	for i := len(priority) - 1; i >= 0; i-- {
		name := priority[i]
		idx := indexOfString(order, name)
		if idx < 0 {
			order = append([]string{name}, order...)
			continue
		}
		if idx == 0 {
			continue
		}
		order = append(order[:idx], order[idx+1:]...)
		order = append([]string{name}, order...)
	}
	return order
}

func indexOfString(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// probeOneEncoding runs the fast pre-check, similarity skip, chunk
// loop and (for large single-byte input) tail verification for one
// candidate encoding, returning its three-way status and, when
// accepted, the resulting CharsetMatch.
func (p *Prober) probeOneEncoding(
	name string,
	data []byte,
	hasBOM bool,
	settings Settings,
	isTooLarge bool,
	softFailures map[string]bool,
) (candidateStatus, *CharsetMatch) {
	precheckLen := len(data)
	if isTooLarge && !p.codec.IsMultiByte(name) && precheckLen > MaxProcessedBytes {
		precheckLen = MaxProcessedBytes
	}

	if _, err := p.codec.Decode(data[:precheckLen], name, DecodeStrict, false); err != nil {
		return statusHardFailed, nil
	}

	for failed := range softFailures {
		if p.codec.IsCPSimilar(name, failed) {
			return statusSoftFailed, nil
		}
	}

	offsets := computeOffsets(len(data), settings.Steps)
	var chunkMess []float64
	var chunkCoherence [][]LanguageScore
	var chunkTexts []string
	rangesSeen := make(map[string]bool)
	earlyStopCount := 0
	earlyStopLimit := maxInt(2, settings.Steps/4)

	for _, offset := range offsets {
		end := offset + settings.ChunkSize
		if end > len(data) {
			end = len(data)
		}
		if offset >= end {
			continue
		}
		chunk := data[offset:end]

		text, err := p.codec.Decode(chunk, name, DecodeStrict, true)
		if err != nil {
			// A lazy-chunk decode failure disqualifies this candidate
			// but, unlike the pre-check failure above, it is a soft
			// failure: the candidate still needs to land in
			// softFailures so later cp-similar candidates get skipped.
			earlyStopCount = earlyStopLimit
			break
		}
		chunkTexts = append(chunkTexts, text)

		for r := range p.classifier.RangeScan(text) {
			rangesSeen[r] = true
		}

		ratio := p.mess.Ratio(text, settings.Threshold)
		chunkMess = append(chunkMess, ratio)
		if ratio >= settings.Threshold {
			earlyStopCount++
		}
		if name != "ascii" {
			langScores := p.coherence.CoherenceRatio(text, settings.LanguageThreshold, targetLanguagesFor(name))
			chunkCoherence = append(chunkCoherence, langScores)
		}

		if earlyStopCount >= earlyStopLimit || hasBOM {
			break
		}
	}

	if isTooLarge && !p.codec.IsMultiByte(name) && len(data) > MaxProcessedBytes {
		if _, err := p.codec.Decode(data[MaxProcessedBytes:], name, DecodeStrict, false); err != nil {
			return statusHardFailed, nil
		}
	}

	meanMess := mean(chunkMess)

	if meanMess >= settings.Threshold || earlyStopCount >= earlyStopLimit {
		return statusSoftFailed, nil
	}

	var coherence []LanguageScore
	if name != "ascii" {
		coherence = MergeCoherenceRatios(chunkCoherence)
	}

	ranges := make([]string, 0, len(rangesSeen))
	for r := range rangesSeen {
		ranges = append(ranges, r)
	}

	fullText, hasPayload := "", false
	if fullDecoded, err := p.codec.Decode(data, name, DecodeStrict, false); err == nil {
		fullText, hasPayload = fullDecoded, true
	}

	// When the whole-input re-decode doesn't materialize (common for
	// multi-byte encodings whose sampled chunks needed boundary repair
	// but whose untested remainder doesn't decode cleanly unchunked),
	// DecodedPayload stays empty for every such candidate. Fingerprinting
	// on DecodedPayload alone would then hash the same empty string for
	// every one of them and silently merge distinct encodings. Fall back
	// to the chunk texts actually sampled for this encoding, which still
	// vary per candidate.
	fingerprintBasis := fullText
	if !hasPayload {
		fingerprintBasis = strings.Join(chunkTexts, "\x00")
	}

	return statusAccepted, &CharsetMatch{
		Encoding:        name,
		MeanMess:        meanMess,
		HasBOM:          hasBOM,
		Coherence:       coherence,
		UnicodeRanges:   ranges,
		DecodedPayload:  fullText,
		HasPayload:      hasPayload,
		fingerprintSeed: fingerprintBasis,
	}
}

func computeOffsets(length, steps int) []int {
	if steps < 1 {
		steps = 1
	}
	stride := maxInt(1, length/steps)
	offsets := make([]int, 0, steps)
	for off := 0; off < length && len(offsets) < steps; off += stride {
		offsets = append(offsets, off)
	}
	if len(offsets) == 0 {
		offsets = append(offsets, 0)
	}
	return offsets
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
