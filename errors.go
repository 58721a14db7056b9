package speakable

import "errors"

// ErrUnsupportedLocale indicates a locale code outside the supported set was
// passed to a registry mutation or to an operation with no plain fallback.
var ErrUnsupportedLocale = errors.New("speakable: unsupported locale")

// ErrMissingLocaleData indicates the rule table for a supported locale lacks
// the entries required by the requested operation.
var ErrMissingLocaleData = errors.New("speakable: missing locale data")

// ErrInvalidNumeral marks values that have no spoken form, such as NaN.
var ErrInvalidNumeral = errors.New("speakable: invalid numeral")
