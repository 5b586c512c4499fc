package chardet

import (
	"fmt"

	"github.com/cybergodev/chardet/internal"
)

// Default tuning values, mirrored from the probing algorithm's own
// defaults so Config and internal.Settings never drift apart.
const (
	DefaultSteps               = 5
	DefaultChunkSize           = 512
	DefaultThreshold           = 0.2
	DefaultLanguageThreshold   = 0.1
	DefaultPreemptiveBehaviour = true
	DefaultEnableFallback      = true

	// DefaultMaxCacheEntries bounds the per-code-point classifier
	// caches; 0x110000 covers every Unicode code point so the cache
	// never evicts a live character during a single detection run.
	DefaultMaxCacheEntries = 0x110000

	// DefaultRangeCacheEntries bounds the suspicious-range-pair cache.
	DefaultRangeCacheEntries = 1024
)

// Config controls how a Detector probes byte sequences for their
// source encoding.
type Config struct {
	// Steps is the number of equally-spaced chunks sampled across the
	// input when it is larger than Steps*ChunkSize.
	Steps int

	// ChunkSize is the byte length of each sampled chunk.
	ChunkSize int

	// Threshold is the maximum mean mess ratio a candidate encoding
	// may reach and still be reported.
	Threshold float64

	// LanguageThreshold is the minimum coherence score a language
	// must reach to be listed against a candidate's result.
	LanguageThreshold float64

	// PreemptiveBehaviour enables scanning for a declarative encoding
	// hint (HTML meta charset, XML encoding declaration, a source file
	// magic comment) before falling back to statistical probing.
	PreemptiveBehaviour bool

	// EnableFallback allows the detector to fall back to utf-8 or
	// ascii when no probed encoding clears Threshold.
	EnableFallback bool

	// IncludeEncodings, when non-empty, restricts probing to exactly
	// these IANA encoding names.
	IncludeEncodings []string

	// ExcludeEncodings removes these IANA encoding names from the
	// probe order.
	ExcludeEncodings []string

	// MaxCacheEntries bounds the classifier's per-code-point LRU
	// caches.
	MaxCacheEntries int

	// RangeCacheEntries bounds the suspicious-range-pair cache.
	RangeCacheEntries int
}

// DefaultConfig returns the package's default detection configuration.
func DefaultConfig() Config {
	return Config{
		Steps:               DefaultSteps,
		ChunkSize:           DefaultChunkSize,
		Threshold:           DefaultThreshold,
		LanguageThreshold:   DefaultLanguageThreshold,
		PreemptiveBehaviour: DefaultPreemptiveBehaviour,
		EnableFallback:      DefaultEnableFallback,
		MaxCacheEntries:     DefaultMaxCacheEntries,
		RangeCacheEntries:   DefaultRangeCacheEntries,
	}
}

// validateConfig checks c and, in the process, resolves every entry of
// IncludeEncodings/ExcludeEncodings to its canonical IANA name in
// place (e.g. "latin1" or "iso8859-1" both become "windows-1252",
// following the WHATWG label table) through the same alias resolver
// the prober itself uses, so a
// resolved list always matches the canonical names isExcluded
// compares against.
func validateConfig(c *Config) error {
	if c.Steps <= 0 {
		return fmt.Errorf("%w: Steps must be positive", ErrInvalidConfig)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: ChunkSize must be positive", ErrInvalidConfig)
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: Threshold must be in (0, 1]", ErrInvalidConfig)
	}
	if c.LanguageThreshold < 0 || c.LanguageThreshold > 1 {
		return fmt.Errorf("%w: LanguageThreshold must be in [0, 1]", ErrInvalidConfig)
	}
	if c.MaxCacheEntries <= 0 {
		return fmt.Errorf("%w: MaxCacheEntries must be positive", ErrInvalidConfig)
	}
	if c.RangeCacheEntries <= 0 {
		return fmt.Errorf("%w: RangeCacheEntries must be positive", ErrInvalidConfig)
	}
	if len(c.IncludeEncodings) > 0 && len(c.ExcludeEncodings) > 0 {
		return fmt.Errorf("%w: IncludeEncodings and ExcludeEncodings are mutually exclusive", ErrInvalidConfig)
	}

	resolved, err := resolveEncodingNames(c.IncludeEncodings, "IncludeEncodings")
	if err != nil {
		return err
	}
	c.IncludeEncodings = resolved

	resolved, err = resolveEncodingNames(c.ExcludeEncodings, "ExcludeEncodings")
	if err != nil {
		return err
	}
	c.ExcludeEncodings = resolved

	return nil
}

// resolveEncodingNames resolves each entry of names through the same
// alias table CodecBridge.IANAName uses (so "latin1", "iso8859-1",
// etc. all normalize to their canonical form), rejecting any entry
// that doesn't name a supported encoding.
func resolveEncodingNames(names []string, field string) ([]string, error) {
	if len(names) == 0 {
		return names, nil
	}
	bridge := internal.NewCodecBridge()
	resolved := make([]string, len(names))
	for i, name := range names {
		canonical, ok := bridge.IANAName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownEncoding, name, field)
		}
		resolved[i] = canonical
	}
	return resolved, nil
}
