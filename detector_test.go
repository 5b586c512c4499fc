package chardet_test

import (
	"testing"

	"github.com/cybergodev/chardet"
)

func TestDetectorDetectASCII(t *testing.T) {
	t.Parallel()

	d, err := chardet.New(chardet.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := d.Detect([]byte("hello world"))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	best := result.Best()
	if best == nil || best.Encoding != "ascii" {
		t.Errorf("Detect() best = %+v, want ascii", best)
	}
}

func TestDetectorDetectUTF8BOM(t *testing.T) {
	t.Parallel()

	d, err := chardet.New(chardet.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	result, err := d.Detect(data)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	best := result.Best()
	if best == nil || best.Encoding != "utf-8" || !best.HasBOM {
		t.Errorf("Detect() best = %+v, want utf-8 with BOM", best)
	}
}

func TestDetectorDetectEmptyInput(t *testing.T) {
	t.Parallel()

	d, err := chardet.New(chardet.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := d.Detect(nil)
	if err != nil {
		t.Fatalf("Detect(nil) error = %v, want nil (empty input is well-formed)", err)
	}
	if best := result.Best(); best == nil || best.Encoding != "utf-8" {
		t.Errorf("Detect(nil) best = %+v, want utf-8", best)
	}
}

func TestDetectorDetectStringMatchesDetect(t *testing.T) {
	t.Parallel()

	d, err := chardet.New(chardet.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	byBytes, err := d.Detect([]byte("café"))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	byString, err := d.DetectString("café")
	if err != nil {
		t.Fatalf("DetectString() error = %v", err)
	}
	if byBytes.Best().Encoding != byString.Best().Encoding {
		t.Errorf("Detect/DetectString disagree: %q vs %q", byBytes.Best().Encoding, byString.Best().Encoding)
	}
}

func TestDetectorStatistics(t *testing.T) {
	t.Parallel()

	d, err := chardet.New(chardet.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := d.Detect([]byte("hello")); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	data := make([]byte, 1024)
	for i := range data {
		data[i] = 0xFF
	}
	if _, err := d.Detect(data); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	stats := d.Statistics()
	if stats.TotalDetected != 2 {
		t.Errorf("Statistics().TotalDetected = %d, want 2", stats.TotalDetected)
	}
	if stats.MatchesFound != 1 {
		t.Errorf("Statistics().MatchesFound = %d, want 1", stats.MatchesFound)
	}
}

func TestPackageLevelConvenienceFunctions(t *testing.T) {
	t.Parallel()

	result, err := chardet.Detect([]byte("hello"))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if result.Best() == nil {
		t.Error("Detect() returned an empty result for plain ASCII")
	}

	result, err = chardet.DetectString("hello")
	if err != nil {
		t.Fatalf("DetectString() error = %v", err)
	}
	if result.Best() == nil {
		t.Error("DetectString() returned an empty result for plain ASCII")
	}
}
