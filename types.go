package speakable

import "time"

// ScaleConvention selects how powers beyond one million are named.
type ScaleConvention int

const (
	// ShortScale advances scale names every 10^3 (billion = 10^9).
	ShortScale ScaleConvention = iota
	// LongScale advances scale names every 10^6 (billion = 10^12).
	LongScale
)

// Warning is a non-fatal diagnostic attached to a best-effort rendering.
type Warning struct {
	Locale string
	Reason string
}

func (w *Warning) String() string {
	if w == nil {
		return ""
	}
	return "speakable: " + w.Reason + " (locale " + w.Locale + ")"
}

// Rendering carries the output of a soft-degrading call. Text is always
// usable; Warning is non-nil when the engine fell back to a plain form.
type Rendering struct {
	Text    string
	Warning *Warning
}

// RenderOptions is the closed set of switches accepted by the renderers.
// Switches that do not apply to a given renderer are ignored, so any
// combination still produces deterministic output.
type RenderOptions struct {
	Locale       string
	Places       int
	Scale        ScaleConvention
	Scientific   bool
	Ordinals     bool
	DigitPairs   bool
	Speech       bool
	Use24Hour    bool
	UseAmPm      bool
	BC           bool
	Now          *time.Time
	Denominators []int
}

func newRenderOptions() RenderOptions {
	return RenderOptions{
		Places: defaultPlaces,
		Speech: true,
	}
}

const defaultPlaces = 2

// Option mutates RenderOptions during a rendering call.
type Option func(*RenderOptions)

// WithLocale selects an explicit locale instead of the registry default.
func WithLocale(code string) Option {
	return func(o *RenderOptions) { o.Locale = code }
}

// WithPlaces sets how many fractional digits are spoken. Digits beyond the
// cutoff are dropped, not rounded.
func WithPlaces(places int) Option {
	return func(o *RenderOptions) {
		if places >= 0 {
			o.Places = places
		}
	}
}

// WithScale selects the short or long scale naming convention.
func WithScale(scale ScaleConvention) Option {
	return func(o *RenderOptions) { o.Scale = scale }
}

// AsScientific forces scientific notation for number pronunciation.
func AsScientific() Option {
	return func(o *RenderOptions) { o.Scientific = true }
}

// AsOrdinal renders ordinal words instead of cardinals.
func AsOrdinal() Option {
	return func(o *RenderOptions) { o.Ordinals = true }
}

// WithDigitPairs renders a four-digit integer as two spoken pairs
// ("fourteen fifty six"), the phrasing used for years and other
// time-like values.
func WithDigitPairs() Option {
	return func(o *RenderOptions) { o.DigitPairs = true }
}

// Digital switches from spoken output to the compact symbolic form.
func Digital() Option {
	return func(o *RenderOptions) { o.Speech = false }
}

// With24Hour renders clock times on the 24-hour clock.
func With24Hour() Option {
	return func(o *RenderOptions) { o.Use24Hour = true }
}

// WithAmPm appends the locale's am/pm marker where it applies.
func WithAmPm() Option {
	return func(o *RenderOptions) { o.UseAmPm = true }
}

// AsBC appends the locale's before-common-era suffix to year output.
func AsBC() Option {
	return func(o *RenderOptions) { o.BC = true }
}

// WithNow supplies the reference instant for relative phrasing. When absent
// the registry clock is used.
func WithNow(now time.Time) Option {
	return func(o *RenderOptions) { o.Now = &now }
}

// WithDenominators overrides the candidate denominators searched by the
// fraction approximator. Order matters: the first match wins.
func WithDenominators(denominators ...int) Option {
	return func(o *RenderOptions) {
		o.Denominators = append([]int(nil), denominators...)
	}
}
