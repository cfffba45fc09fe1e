package i18n

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Translator resolves dotted translation keys against locale documents.
// Resolution never fails: a missing or non-string value degrades to the
// literal key so untranslated strings stay visible in responses.
type Translator struct {
	store *LocaleStore
}

// NewTranslator creates a Translator backed by the given LocaleStore.
func NewTranslator(store *LocaleStore) *Translator {
	return &Translator{store: store}
}

// Resolve returns the translation for a dot-separated key within a module.
// The language is coerced into the supported set first. When the requested
// language has no string value for the key, the default language is tried
// once; if that also misses, the literal key is returned. Supplied
// interpolations replace literal {name} placeholders; unmatched placeholders
// are left untouched.
func (t *Translator) Resolve(language, module, key string, interpolations map[string]string) string {
	language = Coerce(language)

	value, ok := t.lookup(language, module, key)
	if !ok && language != DefaultLanguage {
		value, ok = t.lookup(DefaultLanguage, module, key)
	}
	if !ok {
		return key
	}

	for name, v := range interpolations {
		value = strings.ReplaceAll(value, "{"+name+"}", v)
	}
	return value
}

// T resolves a key without interpolation.
func (t *Translator) T(language, module, key string) string {
	return t.Resolve(language, module, key, nil)
}

// lookup walks the document for (language, module) along the dotted key and
// returns the leaf string value, or false when any path segment is missing
// or the final value is not a string.
func (t *Translator) lookup(language, module, key string) (string, bool) {
	doc := t.store.Load(language, module)
	result := gjson.GetBytes(doc, key)
	if result.Type != gjson.String {
		return "", false
	}
	return result.Str, true
}

// ResolvePest translates a canonical English pest name; unknown pests or
// languages return the English name unchanged.
func (t *Translator) ResolvePest(englishName, language string) string {
	if byLang, ok := pestTranslations[englishName]; ok {
		if local, ok := byLang[language]; ok {
			return local
		}
	}
	return englishName
}

// ResolveTreatment translates a canonical English treatment name; unknown
// treatments or languages return the English name unchanged.
func (t *Translator) ResolveTreatment(englishName, language string) string {
	if byLang, ok := treatmentTranslations[englishName]; ok {
		if local, ok := byLang[language]; ok {
			return local
		}
	}
	return englishName
}

// ResolveCrop maps a mandi commodity name to its crops.* key in the common
// module and resolves it; unmapped commodities are returned unchanged.
func (t *Translator) ResolveCrop(commodity, language string) string {
	key, ok := cropKeyMap[commodity]
	if !ok {
		return commodity
	}
	return t.T(language, "common", "crops."+key)
}
