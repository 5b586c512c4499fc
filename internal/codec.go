package internal

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrDecodeFailed is returned by Decode when the input cannot be
// decoded under the requested encoding in strict mode.
var ErrDecodeFailed = errors.New("chardet: decode failed")

// CodecBridge adapts golang.org/x/text's encoding/transform machinery
// to the shape the prober needs: strict-mode decoding with chunk-
// boundary repair, BOM/SIG identification, alias resolution through
// htmlindex, and a similarity lookup for code-page deduplication.
// Grounded on an earlier encoding module, which already wired
// golang.org/x/text/encoding/{charmap,japanese,korean,...} and
// golang.org/x/text/transform for HTML byte-to-text conversion; this
// generalizes that single fixed-encoding path into the chunk-repair
// decoder.
type CodecBridge struct{}

// NewCodecBridge constructs a stateless bridge; all golang.org/x/text
// encoders/decoders it wraps are safe for concurrent, repeated use.
func NewCodecBridge() *CodecBridge { return &CodecBridge{} }

// IsMultiByte reports whether name (a canonical encoding name) may
// spend more than one byte on a single code point.
func (b *CodecBridge) IsMultiByte(name string) bool {
	return multiByteEncodings[name]
}

// ShouldStripSigOrBom reports whether decode input should have its
// detected signature/BOM prefix stripped before decoding. Every
// encoding in this core strips unconditionally, matching the Rust
// original's documented (if unconditionally realized) behavior.
func (b *CodecBridge) ShouldStripSigOrBom(name string) bool {
	_ = name
	return true
}

// IANAName resolves alias to its canonical encoding name via
// golang.org/x/text/encoding/htmlindex's WHATWG label table, then
// normalizes the handful of spellings where our canonical names
// differ from WHATWG's (utf-16le vs utf-16-le, etc).
func (b *CodecBridge) IANAName(alias string) (string, bool) {
	enc, err := htmlindex.Get(alias)
	if err != nil {
		return normalizeCanonicalSpelling(alias), containsCanonical(normalizeCanonicalSpelling(alias))
	}
	whatwgName, err := htmlindex.Name(enc)
	if err != nil {
		return "", false
	}
	name := normalizeCanonicalSpelling(whatwgName)
	if !containsCanonical(name) {
		return "", false
	}
	return name, true
}

func containsCanonical(name string) bool {
	for _, n := range ianaSupported {
		if n == name {
			return true
		}
	}
	return false
}

// normalizeCanonicalSpelling maps the WHATWG-flavored spelling
// htmlindex returns (and any user-provided raw alias) onto the
// dashed spelling ianaSupported uses.
func normalizeCanonicalSpelling(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "utf-16le":
		return "utf-16-le"
	case "utf-16be":
		return "utf-16-be"
	case "utf-32le":
		return "utf-32-le"
	case "utf-32be":
		return "utf-32-be"
	case "us-ascii":
		return "ascii"
	case "shift-jis", "sjis":
		return "shift_jis"
	case "euc-jp":
		return "euc-jp"
	default:
		return name
	}
}

// IsCPSimilar reports whether two canonical encoding names share
// enough code space to be considered indistinguishable without
// content.
func (b *CodecBridge) IsCPSimilar(a, c string) bool {
	if a == c {
		return true
	}
	for _, sim := range ianaSupportedSimilar[a] {
		if sim == c {
			return true
		}
	}
	return false
}

// IdentifySigOrBom scans data for a known byte-order-mark or vendor
// signature, returning the canonical encoding name and the matched
// prefix. Checks the table in declaration order, so longer,
// more-specific signatures (UTF-32) are tried before shorter ones
// they could be mistaken for (UTF-16).
func (b *CodecBridge) IdentifySigOrBom(data []byte) (string, []byte, bool) {
	for _, mark := range encodingMarks {
		if bytes.HasPrefix(data, mark.signature) {
			return mark.name, mark.signature, true
		}
	}
	return "", nil, false
}

// decodeMode selects strict (fail on any invalid byte sequence) or
// replacing (substitute U+FFFD) decode behavior.
type decodeMode int

const (
	// DecodeStrict fails on the first invalid byte sequence.
	DecodeStrict decodeMode = iota
	// DecodeReplace substitutes U+FFFD for invalid sequences.
	DecodeReplace
)

// maxChunkRepairTrim bounds chunk-boundary repair to 3 bytes trimmed
// from either side.
const maxChunkRepairTrim = 3

// Decode converts data from the named encoding to a Go string. When
// isChunk is true and name is multi-byte and mode is strict, a
// decode failure at a chunk boundary is repaired by trimming up to
// maxChunkRepairTrim bytes from the end (on an incomplete trailing
// sequence) or the start (on an invalid leading sequence) and
// retrying, mirroring the Rust original's decode/decode_to chunk
// repair.
func (b *CodecBridge) Decode(data []byte, name string, mode decodeMode, isChunk bool) (string, error) {
	if name == "ascii" {
		if mode == DecodeStrict && !isPureASCIIBytes(data) {
			return "", ErrDecodeFailed
		}
		return string(data), nil
	}

	enc, ok := resolveEncoding(name)
	if !ok {
		return "", ErrDecodeFailed
	}

	if mode == DecodeReplace {
		out, _, err := transform.Bytes(enc.NewDecoder(), data)
		return string(out), ignoreErr(err)
	}

	out, err := decodeStrict(enc, data)
	if err == nil {
		return out, nil
	}
	if !isChunk || !b.IsMultiByte(name) {
		return "", ErrDecodeFailed
	}

	return repairChunkBoundary(enc, data)
}

func decodeStrict(enc encoding.Encoding, data []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// repairChunkBoundary retries a failed strict decode by trimming
// bytes from whichever end the error indicates is truncated, up to
// maxChunkRepairTrim bytes per side. A fresh decoder is built for
// every attempt so no partial internal state (relevant for stateful
// encodings like ISO-2022-JP) leaks across retries.
func repairChunkBoundary(enc encoding.Encoding, data []byte) (string, error) {
	start, end := 0, len(data)

	for trimmedStart, trimmedEnd := 0, 0; trimmedStart <= maxChunkRepairTrim && trimmedEnd <= maxChunkRepairTrim; {
		window := data[start:end]
		if len(window) == 0 {
			return "", ErrDecodeFailed
		}

		out, _, err := transform.Bytes(enc.NewDecoder(), window)
		if err == nil {
			return string(out), nil
		}

		if errors.Is(err, transform.ErrShortSrc) {
			if end-1 <= start {
				return "", ErrDecodeFailed
			}
			end--
			trimmedEnd++
		} else {
			if start+1 >= end {
				return "", ErrDecodeFailed
			}
			start++
			trimmedStart++
		}
	}
	return "", ErrDecodeFailed
}

// Encode converts text back to bytes in the named encoding.
func (b *CodecBridge) Encode(text string, name string) ([]byte, error) {
	if name == "ascii" {
		if !isPureASCIIBytes([]byte(text)) {
			return nil, ErrDecodeFailed
		}
		return []byte(text), nil
	}

	enc, ok := resolveEncoding(name)
	if !ok {
		return nil, ErrDecodeFailed
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ignoreErr(error) error { return nil }

// isPureASCIIBytes reports whether every byte in data is in the
// 7-bit ASCII range.
func isPureASCIIBytes(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
