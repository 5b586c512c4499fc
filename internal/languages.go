package internal

// Language names one of the natural languages the coherence engine
// can score a decoded chunk against.
type Language string

const (
	English    Language = "English"
	German     Language = "German"
	French     Language = "French"
	Spanish    Language = "Spanish"
	Portuguese Language = "Portuguese"
	Italian    Language = "Italian"
	Dutch      Language = "Dutch"
	Swedish    Language = "Swedish"
	Polish     Language = "Polish"
	Czech      Language = "Czech"
	Russian    Language = "Russian"
	Ukrainian  Language = "Ukrainian"
	Turkish    Language = "Turkish"
	Greek      Language = "Greek"
	Hebrew     Language = "Hebrew"
	Arabic     Language = "Arabic"
	Vietnamese Language = "Vietnamese"
	Japanese   Language = "Japanese"
	Korean     Language = "Korean"
	Chinese    Language = "Chinese"
	Thai       Language = "Thai"
	Esperanto  Language = "Esperanto"
)

// languageProfile is one row of the LANGUAGES static table: the
// reference profile is its alphabet string ordered by descending
// natural letter frequency, most common first.
type languageProfile struct {
	language   Language
	alphabet   string
	hasAccents bool
	pureLatin  bool
}

// languageTable holds per-language character-frequency profiles.
// Frequencies are ordered approximations (most to least common
// letter) drawn from published language letter-frequency studies, not
// exhaustive corpora statistics.
var languageTable = []languageProfile{
	{English, "etaoinshrdlucmfwypvbgkjqxz", false, true},
	{German, "enisratdhulgcmobwfkzpvüjäößy", true, true},
	{French, "esaitnrulodcpmévqfbghjàxèyzêçîôûâ", true, true},
	{Spanish, "eaosrnidlctumpbgvyqhfzjñáéíóú", true, true},
	{Portuguese, "aeosrindmutclpvgqbfhzjãõáéíóúç", true, true},
	{Italian, "eaionlrtscdupmvgfbhzqàèéìòù", true, true},
	{Dutch, "enaitrodslghvkmubpwjczfyxq", false, true},
	{Swedish, "eanrtsildomgkvhfupåäöbcyjxwqz", true, true},
	{Polish, "aeioznrwscytdlkmupbgjąćęłńśóźż", true, true},
	{Czech, "aeinostrvlcdukmpzyjhbřěščťžůňýáíé", true, true},
	{Russian, "оеаинтслврдкмпугязбчйхжшюцщэфъё", false, false},
	{Ukrainian, "оаінетрвслкудмпгзябчйжцхшфющєїь", false, false},
	{Turkish, "aeinrlıdktsmyuobüşzgçhpvöfjwqx", true, true},
	{Greek, "αοειτνσρημυκπλχγδθφβξζψω", true, false},
	{Hebrew, "יוהאלרנםתבשדמקעחפסכזטצגןףך", false, false},
	{Arabic, "اليونمرتبكدقسفعهجصحضخشذطزثظغ", false, false},
	{Vietnamese, "aentihocdgulmrkyspbvàáậảãèéêìíòóôõùúýđ", true, true},
	{Japanese, "のにはをたがでとしれいるつ一人年", false, false},
	{Korean, "이다에는을가의으로하고있것들수보", false, false},
	{Chinese, "的一是不了人我在有他这中大来上国", false, false},
	{Thai, "าเรนกดมยคตสอลับหปจทงวพศขซ", false, false},
	{Esperanto, "aeiostnlrkdmupgbjcvhzfŝĉĝĵŭ", true, true},
}

// encodingToLanguages hints which natural languages a single-byte
// encoding is likely to carry.
var encodingToLanguages = map[string][]Language{
	"windows-1250": {Polish, Czech},
	"windows-1251": {Russian, Ukrainian},
	"windows-1252": {English, French, German, Spanish, Portuguese, Italian, Dutch, Swedish},
	"windows-1253": {Greek},
	"windows-1254": {Turkish},
	"windows-1255": {Hebrew},
	"windows-1256": {Arabic},
	"iso-8859-1":   {English, French, German, Spanish, Portuguese, Italian, Dutch, Swedish},
	"iso-8859-2":   {Polish, Czech},
	"iso-8859-5":   {Russian, Ukrainian},
	"iso-8859-7":   {Greek},
	"iso-8859-8":   {Hebrew},
	"iso-8859-9":   {Turkish},
	"koi8-r":       {Russian},
	"koi8-u":       {Ukrainian},
}

// mbEncodingToLanguages hints which natural languages a multi-byte
// encoding is likely to carry.
var mbEncodingToLanguages = map[string][]Language{
	"shift_jis":           {Japanese},
	"euc-jp":              {Japanese},
	"iso-2022-jp":         {Japanese},
	"euc-kr":              {Korean},
	"gbk":                 {Chinese},
	"gb18030":             {Chinese},
	"big5":                {Chinese},
	"utf-8":     nil,
	"utf-16-le": nil,
	"utf-16-be": nil,
}

// languageProfileFor returns the reference profile for lang, mirroring
// get_language_data from the Rust original's utils module.
func languageProfileFor(lang Language) (languageProfile, bool) {
	for _, p := range languageTable {
		if p.language == lang {
			return p, true
		}
	}
	return languageProfile{}, false
}

// targetLanguagesFor narrows the coherence engine's candidate
// languages using the encoding being probed: a single-byte or
// multi-byte encoding's code page can only plausibly carry the
// languages it was designed for, so there is no point scoring a
// decoded chunk against languages the encoding cannot represent.
// Returns nil (meaning "score against every language") for encodings
// with no recorded hint, such as utf-8 or a CJK encoding with no
// listed restriction.
func targetLanguagesFor(encodingName string) []Language {
	if langs, ok := encodingToLanguages[encodingName]; ok {
		return langs
	}
	if langs, ok := mbEncodingToLanguages[encodingName]; ok {
		return langs
	}
	return nil
}
