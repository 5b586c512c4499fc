package internal

import "testing"

func TestMatchSetAppendAndBest(t *testing.T) {
	t.Parallel()
	set := NewMatchSet()

	m1 := &CharsetMatch{Encoding: "utf-8"}
	SetFingerprint(m1, []byte("hello"))
	m2 := &CharsetMatch{Encoding: "ascii"}
	SetFingerprint(m2, []byte("world"))

	set.Append(m1)
	set.Append(m2)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if set.Best().Encoding != "utf-8" {
		t.Errorf("Best().Encoding = %q, want utf-8 (first inserted)", set.Best().Encoding)
	}
}

func TestMatchSetDedupByFingerprint(t *testing.T) {
	t.Parallel()
	set := NewMatchSet()

	m1 := &CharsetMatch{Encoding: "windows-1252"}
	SetFingerprint(m1, []byte("café"))
	m2 := &CharsetMatch{Encoding: "iso-8859-1"}
	SetFingerprint(m2, []byte("café"))

	set.Append(m1)
	set.Append(m2)

	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (identical decoded text should merge)", set.Len())
	}
	best := set.Best()
	found := false
	for _, alias := range best.Aliases {
		if alias == "iso-8859-1" {
			found = true
		}
	}
	if !found {
		t.Errorf("merged match aliases = %v, want to include iso-8859-1", best.Aliases)
	}
}

func TestMatchSetGetByEncoding(t *testing.T) {
	t.Parallel()
	set := NewMatchSet()

	m := &CharsetMatch{Encoding: "utf-8"}
	SetFingerprint(m, []byte("x"))
	set.Append(m)

	if got := set.GetByEncoding("utf-8"); got == nil {
		t.Error("GetByEncoding(utf-8) = nil, want the match")
	}
	if got := set.GetByEncoding("nonexistent"); got != nil {
		t.Error("GetByEncoding(nonexistent) should return nil")
	}
}

func TestFingerprintBasisUsesSeedWithoutPayload(t *testing.T) {
	t.Parallel()

	withPayload := &CharsetMatch{HasPayload: true, DecodedPayload: "shared", fingerprintSeed: "ignored-a"}
	noPayloadA := &CharsetMatch{HasPayload: false, fingerprintSeed: "chunk-a"}
	noPayloadB := &CharsetMatch{HasPayload: false, fingerprintSeed: "chunk-b"}

	if string(withPayload.fingerprintBasis()) != "shared" {
		t.Errorf("fingerprintBasis() with payload = %q, want %q", withPayload.fingerprintBasis(), "shared")
	}

	basisA, basisB := string(noPayloadA.fingerprintBasis()), string(noPayloadB.fingerprintBasis())
	if basisA == basisB {
		t.Fatalf("fingerprintBasis() without payload should differ per candidate, got %q for both", basisA)
	}
	if Fingerprint([]byte(basisA)) == Fingerprint([]byte(basisB)) {
		t.Error("two distinct non-materialized candidates should not collide on the same fingerprint")
	}
}

func TestFingerprintStable(t *testing.T) {
	t.Parallel()

	a := Fingerprint([]byte("hello world"))
	b := Fingerprint([]byte("hello world"))
	if a != b {
		t.Error("Fingerprint() should be stable for identical input")
	}

	c := Fingerprint([]byte("different"))
	if a == c {
		t.Error("Fingerprint() collided for different input (extremely unlikely, check logic)")
	}
}
