package speakable

import (
	"sync"
	"time"
)

// The package-level API mirrors the Registry methods on a lazily built
// shared instance, for callers that do not need isolated locale state.

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared registry. The embedded tables are known good,
// so construction cannot fail here.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		registry, err := New()
		if err != nil {
			panic(err)
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// PronounceNumber speaks a number in full words via the shared registry.
func PronounceNumber(n Numeral, options ...Option) (Rendering, error) {
	return Default().PronounceNumber(n, options...)
}

// NiceNumber renders a number as a whole-plus-fraction phrase via the
// shared registry.
func NiceNumber(n Numeral, options ...Option) (Rendering, error) {
	return Default().NiceNumber(n, options...)
}

// NiceTime renders a clock time via the shared registry.
func NiceTime(t time.Time, options ...Option) (string, error) {
	return Default().NiceTime(t, options...)
}

// NiceDate renders a calendar date via the shared registry.
func NiceDate(t time.Time, options ...Option) (string, error) {
	return Default().NiceDate(t, options...)
}

// NiceDateTime renders a date with its clock time via the shared registry.
func NiceDateTime(t time.Time, options ...Option) (string, error) {
	return Default().NiceDateTime(t, options...)
}

// NiceYear renders a year in its spoken form via the shared registry.
func NiceYear(t time.Time, options ...Option) (string, error) {
	return Default().NiceYear(t, options...)
}

// NiceDuration renders a time span via the shared registry.
func NiceDuration(d time.Duration, options ...Option) (string, error) {
	return Default().NiceDuration(d, options...)
}

// NiceRelativeTime renders the distance to a reference instant via the
// shared registry.
func NiceRelativeTime(when time.Time, options ...Option) (string, error) {
	return Default().NiceRelativeTime(when, options...)
}

// LoadLocales activates locales on the shared registry.
func LoadLocales(locales ...string) error {
	return Default().LoadLocales(locales...)
}

// UnloadLocales deactivates locales on the shared registry.
func UnloadLocales(locales ...string) error {
	return Default().UnloadLocales(locales...)
}

// SetDefaultLocale changes the shared registry's default locale.
func SetDefaultLocale(locale string) error {
	return Default().SetDefaultLocale(locale)
}

// ActiveLocales lists the shared registry's active locales.
func ActiveLocales() []string {
	return Default().ActiveLocales()
}

// SupportedLocales lists every locale the embedded tables cover.
func SupportedLocales() []string {
	return Default().SupportedLocales()
}

// PrimaryCode reduces a locale to its base language code.
func PrimaryCode(locale string) string {
	return primaryCode(locale)
}
