package speakable

import "time"

// Language is the closed capability interface implemented once per language.
// Adding a locale means adding one implementation and one builder entry, not
// patching a dispatch chain.
type Language interface {
	// Code returns the specific locale code this rule set was built for.
	Code() string

	PronounceNumber(n Numeral, opts RenderOptions) (string, error)
	NiceNumber(n Numeral, opts RenderOptions) (string, error)
	NiceTime(t time.Time, opts RenderOptions) (string, error)
	NiceDate(t time.Time, opts RenderOptions) (string, error)
	NiceDateTime(t time.Time, opts RenderOptions) (string, error)
	NiceYear(t time.Time, opts RenderOptions) (string, error)
	NiceDuration(d time.Duration, opts RenderOptions) (string, error)
	NiceRelativeTime(when, relativeTo time.Time) (string, error)
}

type languageBuilder func(data *localeData) (Language, error)

// languageBuilders keys rule-set constructors by the language name declared
// in each embedded data table.
var languageBuilders = map[string]languageBuilder{
	"english": newEnglish,
	"spanish": newSpanish,
}
