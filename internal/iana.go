package internal

import (
	"regexp"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// encodingBOM pairs a canonical IANA name with its byte-order-mark or
// vendor signature prefix, in the order checked by IdentifySigOrBom.
type encodingBOM struct {
	name      string
	signature []byte
}

// encodingMarks is the ordered BOM/SIG table: longer, more specific
// signatures are listed before shorter ones they could otherwise be
// mistaken for (UTF-32LE before UTF-16LE, since the UTF-32LE BOM
// extends the UTF-16LE one).
var encodingMarks = []encodingBOM{
	{"utf-8", []byte{0xEF, 0xBB, 0xBF}},
	{"utf-32-le", []byte{0xFF, 0xFE, 0x00, 0x00}},
	{"utf-32-be", []byte{0x00, 0x00, 0xFE, 0xFF}},
	{"utf-16-le", []byte{0xFF, 0xFE}},
	{"utf-16-be", []byte{0xFE, 0xFF}},
	{"gb18030", []byte{0x84, 0x31, 0x95, 0x33}},
}

// ianaSupported is the ordered set of canonical encoding names the
// prober attempts, in probe priority order. BOM-dependent UTF-16/32
// variants are listed but only probed when a matching BOM was
// actually observed.
var ianaSupported = []string{
	"ascii",
	"utf-8",
	"utf-16-le",
	"utf-16-be",
	"utf-32-le",
	"utf-32-be",
	"windows-1250",
	"windows-1251",
	"windows-1252",
	"windows-1253",
	"windows-1254",
	"windows-1255",
	"windows-1256",
	"windows-1257",
	"windows-1258",
	"iso-8859-1",
	"iso-8859-2",
	"iso-8859-3",
	"iso-8859-4",
	"iso-8859-5",
	"iso-8859-6",
	"iso-8859-7",
	"iso-8859-8",
	"iso-8859-9",
	"iso-8859-10",
	"iso-8859-13",
	"iso-8859-14",
	"iso-8859-15",
	"iso-8859-16",
	"koi8-r",
	"koi8-u",
	"macintosh",
	"shift_jis",
	"euc-jp",
	"iso-2022-jp",
	"euc-kr",
	"gbk",
	"gb18030",
	"big5",
}

// ianaSupportedSimilar maps a canonical encoding to the set of other
// canonicals it shares enough code-space with that distinguishing
// them without content is unreliable, used by CodecBridge.IsCPSimilar.
var ianaSupportedSimilar = map[string][]string{
	"windows-1250": {"iso-8859-2"},
	"windows-1251": {"iso-8859-5", "koi8-r", "koi8-u"},
	"windows-1252": {"iso-8859-1", "iso-8859-15", "macintosh"},
	"windows-1253": {"iso-8859-7"},
	"windows-1254": {"iso-8859-9"},
	"windows-1255": {"iso-8859-8"},
	"windows-1256": {"iso-8859-6"},
	"windows-1257": {"iso-8859-13"},
	"iso-8859-1":   {"windows-1252", "iso-8859-15", "macintosh"},
	"iso-8859-2":   {"windows-1250"},
	"iso-8859-5":   {"windows-1251", "koi8-r", "koi8-u"},
	"iso-8859-6":   {"windows-1256"},
	"iso-8859-7":   {"windows-1253"},
	"iso-8859-8":   {"windows-1255"},
	"iso-8859-9":   {"windows-1254"},
	"iso-8859-13":  {"windows-1257"},
	"iso-8859-15":  {"iso-8859-1", "windows-1252"},
	"koi8-r":       {"koi8-u", "windows-1251", "iso-8859-5"},
	"koi8-u":       {"koi8-r", "windows-1251", "iso-8859-5"},
	"macintosh":    {"windows-1252", "iso-8859-1"},
	"gbk":          {"gb18030"},
	"gb18030":      {"gbk"},
}

// multiByteEncodings is the subset of ianaSupported where one code
// point may span several bytes.
var multiByteEncodings = map[string]bool{
	"utf-8":       true,
	"utf-16-le":   true,
	"utf-16-be":   true,
	"utf-32-le":   true,
	"utf-32-be":   true,
	"shift_jis":   true,
	"euc-jp":      true,
	"iso-2022-jp": true,
	"euc-kr":      true,
	"gbk":         true,
	"gb18030":     true,
	"big5":        true,
}

// bomDependentEncodings are only probed when a matching BOM/SIG was
// actually observed in the input: without one, they are
// indistinguishable from noise.
var bomDependentEncodings = map[string]bool{
	"utf-16-le": true,
	"utf-16-be": true,
	"utf-32-le": true,
	"utf-32-be": true,
}

// resolveEncoding maps a canonical IANA name to its x/text codec. The
// canonical names above are themselves already normalized by
// IANAName, so this is a direct, exhaustive switch rather than a
// fuzzy alias table.
func resolveEncoding(name string) (encoding.Encoding, bool) {
	switch name {
	case "ascii":
		return encoding.Nop, true
	case "utf-8":
		return unicode.UTF8, true
	case "utf-16-le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), true
	case "utf-16-be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case "utf-32-le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), true
	case "utf-32-be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), true
	case "windows-1250":
		return charmap.Windows1250, true
	case "windows-1251":
		return charmap.Windows1251, true
	case "windows-1252":
		return charmap.Windows1252, true
	case "windows-1253":
		return charmap.Windows1253, true
	case "windows-1254":
		return charmap.Windows1254, true
	case "windows-1255":
		return charmap.Windows1255, true
	case "windows-1256":
		return charmap.Windows1256, true
	case "windows-1257":
		return charmap.Windows1257, true
	case "windows-1258":
		return charmap.Windows1258, true
	case "iso-8859-1":
		return charmap.ISO8859_1, true
	case "iso-8859-2":
		return charmap.ISO8859_2, true
	case "iso-8859-3":
		return charmap.ISO8859_3, true
	case "iso-8859-4":
		return charmap.ISO8859_4, true
	case "iso-8859-5":
		return charmap.ISO8859_5, true
	case "iso-8859-6":
		return charmap.ISO8859_6, true
	case "iso-8859-7":
		return charmap.ISO8859_7, true
	case "iso-8859-8":
		return charmap.ISO8859_8, true
	case "iso-8859-9":
		return charmap.ISO8859_9, true
	case "iso-8859-10":
		return charmap.ISO8859_10, true
	case "iso-8859-13":
		return charmap.ISO8859_13, true
	case "iso-8859-14":
		return charmap.ISO8859_14, true
	case "iso-8859-15":
		return charmap.ISO8859_15, true
	case "iso-8859-16":
		return charmap.ISO8859_16, true
	case "koi8-r":
		return charmap.KOI8R, true
	case "koi8-u":
		return charmap.KOI8U, true
	case "macintosh":
		return charmap.Macintosh, true
	case "shift_jis":
		return japanese.ShiftJIS, true
	case "euc-jp":
		return japanese.EUCJP, true
	case "iso-2022-jp":
		return japanese.ISO2022JP, true
	case "euc-kr":
		return korean.EUCKR, true
	case "gbk":
		return simplifiedchinese.GBK, true
	case "gb18030":
		return simplifiedchinese.GB18030, true
	case "big5":
		return traditionalchinese.Big5, true
	default:
		return nil, false
	}
}

// possibleEncodingIndication matches declarative encoding hints in
// the first bytes of a document: HTML <meta charset=...>, XML
// <?xml ... encoding="...">, and source-file magic comments
// (e.g. Python's "# -*- coding: ... -*-").
var possibleEncodingIndication = regexp.MustCompile(
	`(?i)(?:charset\s*=\s*["']?|encoding\s*=\s*["']|coding[:=]\s*)([a-z0-9_\-]+)`,
)

// declarativeHintScanWindow bounds the preemptive scan to the first
// 4096 bytes of input.
const declarativeHintScanWindow = 4096
