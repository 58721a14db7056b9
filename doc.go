// Package speakable renders numbers, clock times, dates, years, durations
// and relative offsets as natural-language text, the way a voice interface
// would speak them.
//
// A Registry holds the mutable set of active locales and resolves requests
// onto per-language rule sets built from embedded data tables. The
// package-level functions operate on a shared registry:
//
//	out, _ := speakable.PronounceNumber(speakable.Num(21.234))
//	// out.Text == "twenty one point two three"
//
//	clock, _ := speakable.NiceTime(t, speakable.WithAmPm())
//
// Number pronunciation covers cardinals, ordinals, digit-pair year phrasing
// and scientific notation on the short or long scale; NiceNumber snaps
// decimals onto simple spoken fractions ("4 and a half").
package speakable
