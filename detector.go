package chardet

import (
	"sync/atomic"

	"github.com/cybergodev/chardet/internal"
)

// Statistics tracks cumulative detection metrics for a Detector.
type Statistics struct {
	// TotalDetected counts every completed Detect/DetectString call.
	TotalDetected int64

	// MatchesFound counts calls that produced at least one candidate
	// encoding.
	MatchesFound int64

	// NoMatchFound counts calls that produced an empty result set
	// (every probed encoding failed or exceeded Threshold, and
	// EnableFallback was off or also failed).
	NoMatchFound int64
}

// Detector probes byte sequences for their source encoding. Detection
// never fails on well-formed byte input — Detect's error return is
// reserved for future use; today it is always nil. A Detector's
// internal caches are process-wide and safe for concurrent use:
// construct one with New and share it across goroutines rather than
// building a fresh one per call.
type Detector struct {
	config *Config
	prober *internal.Prober

	totalDetected atomic.Int64
	matchesFound  atomic.Int64
	noMatchFound  atomic.Int64
}

// New creates a Detector from the given configuration.
func New(config Config) (*Detector, error) {
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	d := &Detector{
		config: &config,
		prober: internal.NewProberWithCapacity(config.MaxCacheEntries, config.RangeCacheEntries),
	}
	return d, nil
}

func (d *Detector) settings() internal.Settings {
	return internal.Settings{
		Steps:               d.config.Steps,
		ChunkSize:           d.config.ChunkSize,
		Threshold:           d.config.Threshold,
		LanguageThreshold:   d.config.LanguageThreshold,
		PreemptiveBehaviour: d.config.PreemptiveBehaviour,
		EnableFallback:      d.config.EnableFallback,
		IncludeEncodings:    d.config.IncludeEncodings,
		ExcludeEncodings:    d.config.ExcludeEncodings,
	}
}

// Detect probes data and returns the resulting set of candidate
// encodings, best guess first. An empty result set (not an error)
// means no probed encoding survived under the configured thresholds.
func (d *Detector) Detect(data []byte) (*MatchSet, error) {
	result := d.prober.FromBytes(data, d.settings())

	d.totalDetected.Add(1)
	if result.Len() == 0 {
		d.noMatchFound.Add(1)
	} else {
		d.matchesFound.Add(1)
	}
	return result, nil
}

// DetectString is a convenience wrapper around Detect for callers that
// already hold a string.
func (d *Detector) DetectString(s string) (*MatchSet, error) {
	return d.Detect([]byte(s))
}

// Statistics returns a snapshot of the detector's cumulative metrics.
func (d *Detector) Statistics() Statistics {
	return Statistics{
		TotalDetected: d.totalDetected.Load(),
		MatchesFound:  d.matchesFound.Load(),
		NoMatchFound:  d.noMatchFound.Load(),
	}
}

var defaultDetector = mustDefault()

func mustDefault() *Detector {
	d, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return d
}

// Default returns the package-level Detector used by the Detect and
// DetectString convenience functions.
func Default() *Detector {
	return defaultDetector
}

// Detect probes data for its source encoding using the package-level
// default Detector.
func Detect(data []byte) (*MatchSet, error) {
	return defaultDetector.Detect(data)
}

// DetectString probes s for its source encoding using the
// package-level default Detector.
func DetectString(s string) (*MatchSet, error) {
	return defaultDetector.DetectString(s)
}
