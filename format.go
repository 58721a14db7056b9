package speakable

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// fractionTolerance is the error budget, in numerator units, allowed when
// snapping a decimal onto a candidate denominator.
const fractionTolerance = 0.01

// defaultDenominators is searched in order; the first denominator within
// tolerance wins.
var defaultDenominators = func() []int {
	denominators := make([]int, 0, 20)
	for d := 1; d <= 20; d++ {
		denominators = append(denominators, d)
	}
	return denominators
}()

// mixedFraction snaps value onto whole + numerator/denominator. ok is false
// when no candidate denominator is within tolerance.
func mixedFraction(value float64, denominators []int) (whole, numerator, denominator int, ok bool) {
	if len(denominators) == 0 {
		denominators = defaultDenominators
	}

	// magnitudes past 2^53 have no fractional part a float64 can carry and
	// would overflow the int conversion
	if math.Abs(value) >= 1<<53 {
		return 0, 0, 0, false
	}
	whole = int(value)
	frac := math.Abs(value - float64(whole))
	if frac == 0 {
		return whole, 0, 1, true
	}

	for _, d := range denominators {
		if d <= 0 {
			continue
		}
		scaled := frac * float64(d)
		if math.Abs(scaled-math.Round(scaled)) < fractionTolerance {
			numerator = int(math.Round(scaled))
			// carry exact-unit matches into the whole part
			if numerator == d || d == 1 {
				if value < 0 {
					return whole - numerator/d, 0, 1, true
				}
				return whole + numerator/d, 0, 1, true
			}
			return whole, numerator, d, true
		}
	}
	return 0, 0, 0, false
}

// plainDecimal renders the three-place decimal fallback used when no simple
// fraction fits ("1.436", "0.027").
func plainDecimal(value float64) string {
	rounded := math.Round(value*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// splitGroups decomposes a non-negative integer into base-10^groupDigits
// groups, least significant first. Each group fits in an int.
func splitGroups(n *big.Int, groupDigits int) []int {
	base := big.NewInt(1000)
	if groupDigits == 6 {
		base = big.NewInt(1000000)
	}

	if n.Sign() == 0 {
		return []int{0}
	}

	var groups []int
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	for rest.Sign() > 0 {
		rest.DivMod(rest, base, mod)
		groups = append(groups, int(mod.Int64()))
	}
	return groups
}

// sciParts normalizes a finite non-zero numeral to mantissa and exponent.
// The mantissa is rounded to six fractional digits and then reduced to its
// shortest form ("2.997925", 8), matching the seven-significant-figure
// precision of the spoken notation.
func sciParts(n Numeral) (mantissa string, exponent int) {
	f := n.Float64()

	var text string
	if !math.IsInf(f, 0) && big.NewFloat(math.Abs(f)).Cmp(n.abs()) == 0 {
		text = strconv.FormatFloat(math.Abs(f), 'e', 6, 64)
	} else {
		text = n.abs().Text('e', 6)
	}

	idx := strings.IndexAny(text, "eE")
	if idx < 0 {
		return text, 0
	}
	mantissa = text[:idx]
	exponent, _ = strconv.Atoi(strings.TrimPrefix(text[idx+1:], "+"))

	if value, err := strconv.ParseFloat(mantissa, 64); err == nil {
		mantissa = strconv.FormatFloat(value, 'f', -1, 64)
	}
	return mantissa, exponent
}

// truncateFraction drops fractional digits beyond places from a decimal
// string; "21.234" with places 2 yields ("21", "23").
func truncateFraction(decimal string, places int) (intPart, fracDigits string) {
	intPart, fracDigits, found := strings.Cut(decimal, ".")
	if !found {
		return intPart, ""
	}
	if places < len(fracDigits) {
		fracDigits = fracDigits[:places]
	}
	return intPart, fracDigits
}

// durationParts cascades a span of seconds through days, hours, minutes and
// seconds. Fractional seconds are truncated.
func durationParts(d time.Duration) (days, hours, minutes, seconds int64) {
	total := int64(d / time.Second)
	if total < 0 {
		total = -total
	}
	days = total / 86400
	hours = total % 86400 / 3600
	minutes = total % 3600 / 60
	seconds = total % 60
	return days, hours, minutes, seconds
}

// digitalDuration renders the compact duration form: "0:01", "1:23:20",
// "5d 18:53:20".
func digitalDuration(d time.Duration) string {
	days, hours, minutes, seconds := durationParts(d)
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	}
}

// digitalTime renders the compact clock form. The 12-hour clock never
// zero-pads the hour; the am/pm marker applies only on the 12-hour clock.
func digitalTime(t time.Time, use24Hour, useAmPm bool, am, pm string) string {
	if use24Hour {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	out := fmt.Sprintf("%d:%02d", hour, t.Minute())
	if useAmPm {
		if t.Hour() >= 12 {
			out += " " + pm
		} else {
			out += " " + am
		}
	}
	return out
}

// relativeUnit selects the single coarsest unit whose raw quotient is at
// least one, then rounds within that unit. unit indexes
// {0 seconds, 1 minutes, 2 hours, 3 days}.
func relativeUnit(delta time.Duration) (count int64, unit int) {
	seconds := math.Abs(delta.Seconds())
	switch {
	case seconds >= 86400:
		return int64(math.Round(seconds / 86400)), 3
	case seconds >= 3600:
		return int64(math.Round(seconds / 3600)), 2
	case seconds >= 60:
		return int64(math.Round(seconds / 60)), 1
	default:
		return int64(math.Round(seconds)), 0
	}
}

// sameCalendarDay reports whether two instants fall on the same civil date.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// relativeDayDelta classifies when against now as -1 (yesterday), 0 (today),
// +1 (tomorrow); ok is false outside that window.
func relativeDayDelta(when, now time.Time) (delta int, ok bool) {
	for _, d := range []int{-1, 0, 1} {
		if sameCalendarDay(when, now.AddDate(0, 0, d)) {
			return d, true
		}
	}
	return 0, false
}
