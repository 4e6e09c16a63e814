package entities

import "strings"

// iso639Names maps the language codes found in other_languages to English
// names. Codes missing here are still returned by queries; presentation
// decides whether to show them.
var iso639Names = map[string]string{
	"ar":  "Arabic",
	"cs":  "Czech",
	"da":  "Danish",
	"de":  "German",
	"el":  "Greek",
	"es":  "Spanish",
	"fa":  "Persian",
	"fi":  "Finnish",
	"fr":  "French",
	"grc": "Ancient Greek",
	"he":  "Hebrew",
	"hi":  "Hindi",
	"hu":  "Hungarian",
	"id":  "Indonesian",
	"it":  "Italian",
	"ja":  "Japanese",
	"ko":  "Korean",
	"la":  "Latin",
	"nl":  "Dutch",
	"no":  "Norwegian",
	"pl":  "Polish",
	"pt":  "Portuguese",
	"ro":  "Romanian",
	"ru":  "Russian",
	"sa":  "Sanskrit",
	"sv":  "Swedish",
	"th":  "Thai",
	"tr":  "Turkish",
	"uk":  "Ukrainian",
	"vi":  "Vietnamese",
	"zh":  "Chinese",
}

// LanguageName returns the English name for an ISO 639 code.
func LanguageName(code string) (string, bool) {
	name, ok := iso639Names[strings.ToLower(strings.TrimSpace(code))]
	return name, ok
}

// Name is LanguageName applied to the row's code.
func (o OtherLanguage) Name() (string, bool) {
	return LanguageName(o.Lang)
}
