package model

// Language is the UI language preference, a single process-wide scalar.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageHindi     Language = "hi"
	LanguageMalayalam Language = "ml"

	DefaultLanguage = LanguageEnglish
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageMalayalam:
		return true
	}
	return false
}

// LocalizedText carries display text in the three supported languages.
// The English entry is the fallback and is expected to always be set.
type LocalizedText struct {
	EN string `json:"en"`
	HI string `json:"hi"`
	ML string `json:"ml"`
}

// Resolve returns the text for lang, falling back to English when the
// localized entry is empty or the language is unknown.
func (t LocalizedText) Resolve(lang Language) string {
	var s string
	switch lang {
	case LanguageHindi:
		s = t.HI
	case LanguageMalayalam:
		s = t.ML
	}
	if s == "" {
		return t.EN
	}
	return s
}
