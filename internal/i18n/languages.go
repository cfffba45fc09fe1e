// Package i18n implements the language resolution and translation pipeline:
// request language negotiation, locale document loading and caching, and
// dotted-key lookup with default-language fallback and interpolation.
package i18n

// DefaultLanguage is the fallback language substituted for any missing or
// invalid language code, and used as the second-tier lookup when a
// translation is absent in the requested language.
const DefaultLanguage = "hi"

// Language describes a supported language.
type Language struct {
	Code        string `json:"code"`
	NativeName  string `json:"native_name"`
	EnglishName string `json:"english_name"`
	Script      string `json:"script"`
}

// SupportedLanguages lists the 15 supported languages (14 major Indian
// languages + English), ISO 639 codes.
var SupportedLanguages = []Language{
	{Code: "hi", NativeName: "हिंदी", EnglishName: "Hindi", Script: "Devanagari"},
	{Code: "bn", NativeName: "বাংলা", EnglishName: "Bengali", Script: "Bengali"},
	{Code: "te", NativeName: "తెలుగు", EnglishName: "Telugu", Script: "Telugu"},
	{Code: "mr", NativeName: "मराठी", EnglishName: "Marathi", Script: "Devanagari"},
	{Code: "ta", NativeName: "தமிழ்", EnglishName: "Tamil", Script: "Tamil"},
	{Code: "gu", NativeName: "ગુજરાતી", EnglishName: "Gujarati", Script: "Gujarati"},
	{Code: "kn", NativeName: "ಕನ್ನಡ", EnglishName: "Kannada", Script: "Kannada"},
	{Code: "or", NativeName: "ଓଡ଼ିଆ", EnglishName: "Odia", Script: "Odia"},
	{Code: "ml", NativeName: "മലയാളം", EnglishName: "Malayalam", Script: "Malayalam"},
	{Code: "pa", NativeName: "ਪੰਜਾਬੀ", EnglishName: "Punjabi", Script: "Gurmukhi"},
	{Code: "as", NativeName: "অসমীয়া", EnglishName: "Assamese", Script: "Bengali"},
	{Code: "mai", NativeName: "मैथिली", EnglishName: "Maithili", Script: "Devanagari"},
	{Code: "sat", NativeName: "ᱥᱟᱱᱛᱟᱲᱤ", EnglishName: "Santali", Script: "Ol Chiki"},
	{Code: "ks", NativeName: "कॉशुर", EnglishName: "Kashmiri", Script: "Devanagari"},
	{Code: "en", NativeName: "English", EnglishName: "English", Script: "Latin"},
}

// Modules is the closed set of recognized translation module names; each
// matches a locale JSON filename.
var Modules = []string{"common", "dashboard", "chatbot", "advisory", "schemes", "errors", "validation"}

var (
	languageCodes = buildSet(codes())
	moduleNames   = buildSet(Modules)
)

func codes() []string {
	out := make([]string, len(SupportedLanguages))
	for i, l := range SupportedLanguages {
		out[i] = l.Code
	}
	return out
}

func buildSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsSupported reports whether code belongs to the supported language set.
func IsSupported(code string) bool {
	_, ok := languageCodes[code]
	return ok
}

// IsKnownModule reports whether name is a recognized translation module.
func IsKnownModule(name string) bool {
	_, ok := moduleNames[name]
	return ok
}

// Coerce maps any language code into the supported set; invalid or
// unsupported codes become DefaultLanguage.
func Coerce(code string) string {
	if IsSupported(code) {
		return code
	}
	return DefaultLanguage
}
