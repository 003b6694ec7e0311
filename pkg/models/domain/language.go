package domain

import "strings"

// Language is a display language supported by the Steam Community Market.
type Language int

const (
	LanguageArabic Language = iota + 1
	LanguageBulgarian
	LanguageChineseSimplified
	LanguageChineseTraditional
	LanguageCzech
	LanguageDanish
	LanguageDutch
	LanguageEnglish
	LanguageFinnish
	LanguageFrench
	LanguageGerman
	LanguageGreek
	LanguageHungarian
	LanguageItalian
	LanguageJapanese
	LanguageKorean
	LanguageNorwegian
	LanguagePolish
	LanguagePortuguese
	LanguagePortugueseBrazil
	LanguageRomanian
	LanguageRussian
	LanguageSpanishSpain
	LanguageSpanishLatinAmerica
	LanguageSwedish
	LanguageThai
	LanguageTurkish
	LanguageUkrainian
	LanguageVietnamese
)

type languageInfo struct {
	displayName string // e.g. "Chinese Simplified"
	nativeName  string // e.g. "简体中文"
	apiName     string // the name Steam's API uses, e.g. "schinese"
	code        string // e.g. "zh-CN"
}

var languages = map[Language]languageInfo{
	LanguageArabic:              {"Arabic", "العربية", "arabic", "ar"},
	LanguageBulgarian:           {"Bulgarian", "български език", "bulgarian", "bg"},
	LanguageChineseSimplified:   {"Chinese Simplified", "简体中文", "schinese", "zh-CN"},
	LanguageChineseTraditional:  {"Chinese Traditional", "繁體中文", "tchinese", "zh-TW"},
	LanguageCzech:               {"Czech", "čeština", "czech", "cs"},
	LanguageDanish:              {"Danish", "Dansk", "danish", "da"},
	LanguageDutch:               {"Dutch", "Nederlands", "dutch", "nl"},
	LanguageEnglish:             {"English", "English", "english", "en"},
	LanguageFinnish:             {"Finnish", "Suomi", "finnish", "fi"},
	LanguageFrench:              {"French", "Français", "french", "fr"},
	LanguageGerman:              {"German", "Deutsch", "german", "de"},
	LanguageGreek:               {"Greek", "Ελληνικά", "greek", "el"},
	LanguageHungarian:           {"Hungarian", "Magyar", "hungarian", "hu"},
	LanguageItalian:             {"Italian", "Italiano", "italian", "it"},
	LanguageJapanese:            {"Japanese", "日本語", "japanese", "ja"},
	LanguageKorean:              {"Korean", "한국어", "koreana", "ko"},
	LanguageNorwegian:           {"Norwegian", "Norsk", "norwegian", "no"},
	LanguagePolish:              {"Polish", "Polski", "polish", "pl"},
	LanguagePortuguese:          {"Portuguese", "Português", "portuguese", "pt"},
	LanguagePortugueseBrazil:    {"Portuguese Brazil", "Português-Brasil", "brazilian", "pt-BR"},
	LanguageRomanian:            {"Romanian", "Română", "romanian", "ro"},
	LanguageRussian:             {"Russian", "Русский", "russian", "ru"},
	LanguageSpanishSpain:        {"Spanish Spain", "Español-España", "spanish", "es"},
	LanguageSpanishLatinAmerica: {"Spanish Latin America", "Español-Latinoamérica", "latam", "es-419"},
	LanguageSwedish:             {"Swedish", "Svenska", "swedish", "sv"},
	LanguageThai:                {"Thai", "ไทย", "thai", "th"},
	LanguageTurkish:             {"Turkish", "Türkçe", "turkish", "tr"},
	LanguageUkrainian:           {"Ukrainian", "Українська", "ukrainian", "uk"},
	LanguageVietnamese:          {"Vietnamese", "Tiếng Việt", "vietnamese", "vn"},
}

// languageLookup indexes every recognized spelling of a language, uppercased:
// display name, native name, API name, and language code.
var languageLookup = func() map[string]Language {
	m := make(map[string]Language, len(languages)*4)
	for l, info := range languages {
		for _, key := range []string{info.displayName, info.nativeName, info.apiName, info.code} {
			m[strings.ToUpper(key)] = l
		}
	}
	return m
}()

// String returns the English display name of the language.
func (l Language) String() string {
	return languages[l].displayName
}

// NativeName returns the language's name in the language itself.
func (l Language) NativeName() string {
	return languages[l].nativeName
}

// APIName returns the identifier Steam's API uses for the language, such as
// "schinese" or "brazilian".
func (l Language) APIName() string {
	return languages[l].apiName
}

// Code returns the language code, such as "en" or "zh-CN".
func (l Language) Code() string {
	return languages[l].code
}

// Valid reports whether l is in the known language set.
func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}

// LanguageFromString resolves a language from its display name, native name,
// Steam API name, or language code, case-insensitively.
func LanguageFromString(s string) (Language, bool) {
	l, ok := languageLookup[strings.ToUpper(strings.TrimSpace(s))]
	return l, ok
}
