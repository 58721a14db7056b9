package speakable

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultLocale is the locale active in a fresh registry.
const DefaultLocale = "en-us"

// Clock supplies the current instant for relative phrasing.
type Clock func() time.Time

// Registry resolves locale codes onto language rule sets and renders spoken
// output. The supported set is fixed at construction from the embedded rule
// tables; the active set and the default locale are mutable and safe for
// concurrent use. Rendering reads a snapshot of the active set, so a
// concurrent Load or Unload never tears an in-flight call.
type Registry struct {
	clock     Clock
	languages map[string]Language
	supported []string

	mu            sync.RWMutex
	active        map[string]struct{}
	defaultLocale string
}

type registryConfig struct {
	clock         Clock
	activeLocales []string
	defaultLocale string
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*registryConfig)

// WithClock replaces the time source used when no explicit reference instant
// is supplied.
func WithClock(clock Clock) RegistryOption {
	return func(c *registryConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithActiveLocales sets the locales active at construction instead of the
// default set.
func WithActiveLocales(locales ...string) RegistryOption {
	return func(c *registryConfig) {
		c.activeLocales = append([]string(nil), locales...)
	}
}

// WithDefaultLocale sets the construction-time default locale. It must be
// among the active locales.
func WithDefaultLocale(locale string) RegistryOption {
	return func(c *registryConfig) {
		c.defaultLocale = locale
	}
}

// New builds a registry backed by the embedded locale tables.
func New(options ...RegistryOption) (*Registry, error) {
	config := registryConfig{
		clock:         time.Now,
		activeLocales: []string{DefaultLocale},
		defaultLocale: "",
	}
	for _, option := range options {
		option(&config)
	}

	tables, err := loadLocaleData()
	if err != nil {
		return nil, err
	}

	languages := make(map[string]Language, len(tables))
	supported := make([]string, 0, len(tables))
	for code, data := range tables {
		build, ok := languageBuilders[data.Language]
		if !ok {
			return nil, fmt.Errorf("%w: no rule set for language %q (%s)",
				ErrMissingLocaleData, data.Language, code)
		}
		lang, err := build(data)
		if err != nil {
			return nil, err
		}
		languages[code] = lang
		supported = append(supported, code)
	}
	sort.Strings(supported)

	r := &Registry{
		clock:     config.clock,
		languages: languages,
		supported: supported,
		active:    make(map[string]struct{}),
	}
	if err := r.LoadLocales(config.activeLocales...); err != nil {
		return nil, err
	}

	defaultLocale := normalizeLocale(config.defaultLocale)
	if defaultLocale == "" {
		if actives := normalizeLocales(config.activeLocales); len(actives) > 0 {
			defaultLocale = actives[0]
		}
	}
	if defaultLocale != "" {
		if err := r.SetDefaultLocale(defaultLocale); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// SupportedLocales lists every locale the embedded tables cover, sorted.
func (r *Registry) SupportedLocales() []string {
	return append([]string(nil), r.supported...)
}

// ActiveLocales lists the locales currently loaded, sorted.
func (r *Registry) ActiveLocales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.active))
	for locale := range r.active {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Default returns the current default locale.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLocale
}

// PrimaryCode reduces a locale to its base language code ("en-us" -> "en").
func (r *Registry) PrimaryCode(locale string) string {
	return primaryCode(locale)
}

// LoadLocales activates locales. Loading an already-active locale is a
// no-op; an unsupported code fails the whole call without activating any.
func (r *Registry) LoadLocales(locales ...string) error {
	normalized := normalizeLocales(locales)
	for _, locale := range normalized {
		if _, ok := r.languages[locale]; !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, locale := range normalized {
		r.active[locale] = struct{}{}
	}
	return nil
}

// UnloadLocales deactivates locales. Unloading an inactive locale is a
// no-op. When the default locale is unloaded the default resets to the
// first remaining active locale in sorted order, or empties with the set.
func (r *Registry) UnloadLocales(locales ...string) error {
	normalized := normalizeLocales(locales)
	for _, locale := range normalized {
		if _, ok := r.languages[locale]; !ok {
			return fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, locale := range normalized {
		delete(r.active, locale)
	}

	if _, ok := r.active[r.defaultLocale]; !ok {
		r.defaultLocale = ""
		remaining := make([]string, 0, len(r.active))
		for locale := range r.active {
			remaining = append(remaining, locale)
		}
		sort.Strings(remaining)
		if len(remaining) > 0 {
			r.defaultLocale = remaining[0]
		}
	}
	return nil
}

// SetDefaultLocale makes an active locale the default.
func (r *Registry) SetDefaultLocale(locale string) error {
	normalized := normalizeLocale(locale)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[normalized]; !ok {
		return fmt.Errorf("%w: %s is not active", ErrUnsupportedLocale, normalized)
	}
	r.defaultLocale = normalized
	return nil
}

// resolve maps a requested locale onto an active rule set: exact match
// first, then parents of the request, then any active locale sharing the
// primary code. An empty request means the default locale.
func (r *Registry) resolve(locale string) (Language, string, bool) {
	r.mu.RLock()
	requested := normalizeLocale(locale)
	if requested == "" {
		requested = r.defaultLocale
	}
	active := make([]string, 0, len(r.active))
	for code := range r.active {
		active = append(active, code)
	}
	r.mu.RUnlock()

	isActive := func(code string) bool {
		for _, candidate := range active {
			if candidate == code {
				return true
			}
		}
		return false
	}

	if isActive(requested) {
		return r.languages[requested], requested, true
	}
	for _, parent := range localeParentChain(requested) {
		if isActive(parent) {
			return r.languages[parent], requested, true
		}
	}

	sort.Strings(active)
	primary := primaryCode(requested)
	if primary != "" {
		for _, candidate := range active {
			if primaryCode(candidate) == primary {
				return r.languages[candidate], requested, true
			}
		}
	}
	return nil, requested, false
}

func buildOptions(options []Option) RenderOptions {
	opts := newRenderOptions()
	for _, option := range options {
		option(&opts)
	}
	return opts
}

// PronounceNumber speaks a number in full words. An unresolvable locale
// degrades to the plain decimal form with a warning instead of failing.
func (r *Registry) PronounceNumber(n Numeral, options ...Option) (Rendering, error) {
	if n.IsNaN() {
		return Rendering{}, ErrInvalidNumeral
	}

	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return Rendering{
			Text:    n.String(),
			Warning: &Warning{Locale: locale, Reason: "unsupported locale, rendering digits"},
		}, nil
	}

	text, err := lang.PronounceNumber(n, opts)
	if err != nil {
		return Rendering{}, err
	}
	return Rendering{Text: text}, nil
}

// NiceNumber renders a number as a whole-plus-fraction phrase. An
// unresolvable locale degrades to the plain decimal form with a warning.
func (r *Registry) NiceNumber(n Numeral, options ...Option) (Rendering, error) {
	if n.IsNaN() {
		return Rendering{}, ErrInvalidNumeral
	}

	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return Rendering{
			Text:    n.String(),
			Warning: &Warning{Locale: locale, Reason: "unsupported locale, rendering digits"},
		}, nil
	}

	text, err := lang.NiceNumber(n, opts)
	if err != nil {
		return Rendering{}, err
	}
	return Rendering{Text: text}, nil
}

// NiceTime renders a clock time, spoken or digital.
func (r *Registry) NiceTime(t time.Time, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return lang.NiceTime(t, opts)
}

// NiceDate renders a calendar date. With a reference instant supplied via
// WithNow, dates within a day of it collapse to today/tomorrow/yesterday
// and the year is omitted when it matches the reference year.
func (r *Registry) NiceDate(t time.Time, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return lang.NiceDate(t, opts)
}

// NiceDateTime renders a date and clock time joined by the locale template.
func (r *Registry) NiceDateTime(t time.Time, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return lang.NiceDateTime(t, opts)
}

// NiceYear renders a year in its spoken form.
func (r *Registry) NiceYear(t time.Time, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return lang.NiceYear(t, opts)
}

// NiceDuration renders a time span, spoken or digital.
func (r *Registry) NiceDuration(d time.Duration, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return lang.NiceDuration(d, opts)
}

// NiceRelativeTime renders the distance between when and a reference
// instant as a single coarse unit. The reference defaults to the registry
// clock and can be pinned with WithNow.
func (r *Registry) NiceRelativeTime(when time.Time, options ...Option) (string, error) {
	opts := buildOptions(options)
	lang, locale, ok := r.resolve(opts.Locale)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}

	relativeTo := r.clock()
	if opts.Now != nil {
		relativeTo = *opts.Now
	}
	return lang.NiceRelativeTime(when, relativeTo)
}
