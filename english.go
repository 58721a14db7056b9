package speakable

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// english implements the Language rule set shared by the en-* locales.
type english struct {
	data *localeData
}

func newEnglish(data *localeData) (Language, error) {
	return &english{data: data}, nil
}

func (e *english) Code() string {
	return e.data.Code
}

// maxGroups caps how many named groups the scale tables cover. Values with
// more groups fall back to scientific notation.
func maxGroupsEN(scale ScaleConvention) int {
	if scale == LongScale {
		// long scale skips "thousand"; groups are six digits wide
		return len(scalesEN)
	}
	return len(scalesEN) + 1
}

func groupDigits(scale ScaleConvention) int {
	if scale == LongScale {
		return 6
	}
	return 3
}

func (e *english) PronounceNumber(n Numeral, opts RenderOptions) (string, error) {
	if n.IsNaN() {
		return "", ErrInvalidNumeral
	}
	if n.IsInf() {
		if n.Negative() {
			return "negative infinity", nil
		}
		return "infinity", nil
	}

	if opts.Scientific || beyondScale(n, opts.Scale) {
		if spoken, ok := e.scientific(n, opts); ok {
			return spoken, nil
		}
	}
	return e.plain(n, opts)
}

// scaleUpperBound is the first magnitude past the named table: 10^150 on
// the short scale, 10^294 on the long scale.
func scaleUpperBound(scale ScaleConvention) *big.Float {
	exp := int64(groupDigits(scale) * maxGroupsEN(scale))
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
	return new(big.Float).SetPrec(uint(bound.BitLen()) + 8).SetInt(bound)
}

// tinyBound is the smallest magnitude still spoken digit by digit; anything
// closer to zero falls back to scientific notation.
var tinyBound = big.NewFloat(1e-9)

// beyondScale reports whether the magnitude escapes the named scale table
// (or is too small to carry any spoken digits), forcing scientific fallback.
func beyondScale(n Numeral, scale ScaleConvention) bool {
	if n.float().Sign() == 0 {
		return false
	}
	abs := n.abs()
	if abs.Cmp(scaleUpperBound(scale)) >= 0 {
		return true
	}
	return !n.IsInt() && abs.Cmp(tinyBound) < 0
}

func (e *english) plain(n Numeral, opts RenderOptions) (string, error) {
	if n.float().Sign() == 0 {
		return onesEN[0], nil
	}

	var sb strings.Builder
	if n.Negative() {
		sb.WriteString("minus ")
	}

	if opts.Ordinals && n.IsInt() {
		sb.WriteString(e.ordinalInt(n.integer(), opts.Scale))
		return sb.String(), nil
	}

	if n.IsInt() && !opts.DigitPairs {
		if word, ok := directScaleEN(n, opts.Scale); ok {
			sb.WriteString(word)
			return sb.String(), nil
		}
	}

	sb.WriteString(e.cardinalInt(n.integer(), opts.Scale, opts.DigitPairs))

	if !n.IsInt() {
		_, fracDigits := truncateFraction(n.decimalText(), opts.Places)
		if fracDigits != "" {
			sb.WriteString(" point")
			for _, digit := range fracDigits {
				sb.WriteString(" ")
				sb.WriteString(onesEN[digit-'0'])
			}
		}
	}
	return sb.String(), nil
}

// directScaleEN matches magnitudes equal to a scale-power float64
// ("one trillion", "one qesvigintillion"). A float written as a power of
// ten names the table entry even when the nearest double is not that
// power exactly, mirroring how callers hand such values in. The shortest
// round-trip form of that double is exactly "1eNN", which sidesteps the
// rounding slop of computed powers at large exponents.
func directScaleEN(n Numeral, scale ScaleConvention) (string, bool) {
	f := math.Abs(n.Float64())
	if big.NewFloat(f).Cmp(n.abs()) != 0 {
		return "", false
	}

	mantissa, expText, found := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	if !found || mantissa != "1" {
		return "", false
	}
	k, err := strconv.Atoi(strings.TrimPrefix(expText, "+"))
	if err != nil || k <= 0 {
		return "", false
	}

	width := groupDigits(scale)
	if k%width != 0 || k >= width*maxGroupsEN(scale) {
		return "", false
	}
	if scale == LongScale {
		return "one " + scalesEN[k/6], true
	}
	return "one " + scalesEN[k/3-1], true
}

// cardinalInt names a non-negative integer under the selected scale.
func (e *english) cardinalInt(value *big.Int, scale ScaleConvention, digitPairs bool) string {
	if value.Sign() == 0 {
		return onesEN[0]
	}

	if digitPairs && value.IsInt64() {
		if v := value.Int64(); v >= 1000 && v <= 9999 {
			return digitPairsEN(int(v))
		}
	}

	groups := splitGroups(value, groupDigits(scale))
	parts := make([]string, 0, len(groups))
	for i, group := range groups {
		if group == 0 {
			continue
		}

		var word string
		if scale == LongScale {
			// six-digit groups reuse the three-digit naming, commas dropped
			word = e.cardinalInt(big.NewInt(int64(group)), ShortScale, false)
			if i > 0 {
				word = strings.ReplaceAll(word, ",", "")
				word += " " + scalesEN[i] // long scale starts at "million"
			}
		} else {
			word = subThousandEN(group)
			if i > 0 {
				word += " " + scalesEN[i-1]
			}
		}
		parts = append(parts, word)
	}

	// most significant group first
	for left, right := 0, len(parts)-1; left < right; left, right = left+1, right-1 {
		parts[left], parts[right] = parts[right], parts[left]
	}
	return strings.Join(parts, ", ")
}

// ordinalInt names a non-negative integer as an ordinal. Exact powers of the
// scale render bare ("hundredth", "thousandth", "millionth").
func (e *english) ordinalInt(value *big.Int, scale ScaleConvention) string {
	if word, ok := exactPowerEN(value, scale); ok {
		return word + "th"
	}

	cardinal := e.cardinalInt(value, scale, false)
	idx := strings.LastIndex(cardinal, " ")
	if idx < 0 {
		return ordinalizeWordEN(cardinal)
	}
	return cardinal[:idx+1] + ordinalizeWordEN(cardinal[idx+1:])
}

// exactPowerEN matches 100 and the pure scale powers (10^3k short,
// 10^6k long) whose coefficient is one.
func exactPowerEN(value *big.Int, scale ScaleConvention) (string, bool) {
	digits := value.String()
	if digits != "1"+strings.Repeat("0", len(digits)-1) {
		return "", false
	}

	zeros := len(digits) - 1
	if zeros == 2 {
		return "hundred", true
	}
	width := groupDigits(scale)
	if zeros == 0 || zeros%width != 0 {
		return "", false
	}
	index := zeros / width
	if scale == LongScale {
		if index < len(scalesEN) {
			return scalesEN[index], true
		}
		return "", false
	}
	if index <= len(scalesEN) {
		return scalesEN[index-1], true
	}
	return "", false
}

func ordinalizeWordEN(word string) string {
	if irregular, ok := irregularOrdinalsEN[word]; ok {
		return irregular
	}
	if strings.HasSuffix(word, "y") {
		return word[:len(word)-1] + "ieth"
	}
	return word + "th"
}

func subThousandEN(n int) string {
	if n >= 100 {
		out := onesEN[n/100] + " hundred"
		if rest := n % 100; rest != 0 {
			out += " and " + subHundredEN(rest)
		}
		return out
	}
	return subHundredEN(n)
}

func subHundredEN(n int) string {
	if n < 20 {
		return onesEN[n]
	}
	out := tensEN[n/10]
	if unit := n % 10; unit != 0 {
		out += " " + onesEN[unit]
	}
	return out
}

// digitPairsEN renders a four-digit value as two spoken pairs, the
// phrasing used for years ("fourteen fifty six", "nineteen oh seven").
func digitPairsEN(n int) string {
	out := subHundredEN(n / 100)
	switch low := n % 100; {
	case low == 0:
		out += " hundred"
	case low < 10:
		out += " oh " + onesEN[low]
	default:
		out += " " + subHundredEN(low)
	}
	return out
}

// scientific renders mantissa-times-ten-to-the-exponent phrasing. ok is
// false when the exponent is zero and plain naming should be used instead.
func (e *english) scientific(n Numeral, opts RenderOptions) (string, bool) {
	if n.float().Sign() == 0 {
		return "", false
	}

	mantissa, exponent := sciParts(n)
	if exponent == 0 {
		return "", false
	}

	var sb strings.Builder
	if n.Negative() {
		sb.WriteString("negative ")
	}
	sb.WriteString(e.decimalWords(mantissa, opts.Places))

	expValue := exponent
	negative := expValue < 0
	if negative {
		expValue = -expValue
	}
	expCardinal := e.cardinalInt(big.NewInt(int64(expValue)), ShortScale, false)

	if opts.Ordinals {
		sb.WriteString(" times ten to the ")
		if negative {
			sb.WriteString("negative ")
		}
		idx := strings.LastIndex(expCardinal, " ")
		if idx < 0 {
			sb.WriteString(ordinalizeWordEN(expCardinal))
		} else {
			sb.WriteString(expCardinal[:idx+1] + ordinalizeWordEN(expCardinal[idx+1:]))
		}
		sb.WriteString(" power")
	} else {
		sb.WriteString(" times ten to the power of ")
		if negative {
			sb.WriteString("negative ")
		}
		sb.WriteString(expCardinal)
	}
	return sb.String(), true
}

// decimalWords speaks a plain decimal string, truncating the fraction at
// places ("2.99792458" -> "two point nine nine").
func (e *english) decimalWords(decimal string, places int) string {
	intPart, fracDigits := truncateFraction(decimal, places)

	value, _ := new(big.Int).SetString(intPart, 10)
	if value == nil {
		value = new(big.Int)
	}
	out := e.cardinalInt(value, ShortScale, false)
	if fracDigits == "" {
		return out
	}

	out += " point"
	for _, digit := range fracDigits {
		out += " " + onesEN[digit-'0']
	}
	return out
}

func (e *english) NiceNumber(n Numeral, opts RenderOptions) (string, error) {
	if n.IsNaN() {
		return "", ErrInvalidNumeral
	}
	if n.IsInf() {
		return e.PronounceNumber(n, opts)
	}
	if n.IsInt() {
		return n.String(), nil
	}

	value := n.Float64()
	whole, numerator, denominator, ok := mixedFraction(value, opts.Denominators)
	if !ok {
		return plainDecimal(value), nil
	}
	if numerator == 0 {
		return strconv.Itoa(whole), nil
	}

	if !opts.Speech {
		return fmt.Sprintf("%d %d/%d", whole, numerator, denominator), nil
	}

	name, ok := fractionNamesEN[denominator]
	if !ok {
		return fmt.Sprintf("%d %d/%d", whole, numerator, denominator), nil
	}

	var out string
	switch {
	case whole == 0 && numerator == 1:
		out = "a " + name
	case whole == 0:
		out = fmt.Sprintf("%d %s", numerator, name)
	case numerator == 1:
		out = fmt.Sprintf("%d and a %s", whole, name)
	default:
		out = fmt.Sprintf("%d and %d %s", whole, numerator, name)
	}
	if numerator > 1 {
		out += "s"
	}
	return out, nil
}

func (e *english) NiceTime(t time.Time, opts RenderOptions) (string, error) {
	if !opts.Speech {
		return digitalTime(t, opts.Use24Hour, opts.UseAmPm, "AM", "PM"), nil
	}
	if opts.Use24Hour {
		return e.spoken24Hour(t), nil
	}
	return e.spoken12Hour(t, opts.UseAmPm), nil
}

func (e *english) spoken24Hour(t time.Time) string {
	hour, minute := t.Hour(), t.Minute()

	var sb strings.Builder
	if hour < 10 {
		sb.WriteString(onesEN[0])
		sb.WriteString(" ")
	}
	sb.WriteString(subHundredEN(hour))

	switch {
	case minute == 0:
		sb.WriteString(" hundred")
	case minute < 10:
		sb.WriteString(" ")
		sb.WriteString(onesEN[0])
		sb.WriteString(" ")
		sb.WriteString(onesEN[minute])
	default:
		sb.WriteString(" ")
		sb.WriteString(subHundredEN(minute))
	}
	return sb.String()
}

func (e *english) spoken12Hour(t time.Time, useAmPm bool) string {
	hour, minute := t.Hour(), t.Minute()
	if hour == 0 && minute == 0 {
		return "midnight"
	}
	if hour == 12 && minute == 0 {
		return "noon"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	hourWord := subHundredEN(hour12)

	var speak string
	switch {
	case minute == 0:
		speak = hourWord
		if !useAmPm {
			speak += " o'clock"
		}
	case minute == 15:
		speak = "quarter past " + hourWord
	case minute == 30:
		speak = "half past " + hourWord
	case minute == 45:
		next := hour12 + 1
		if next > 12 {
			next = 1
		}
		speak = "quarter to " + subHundredEN(next)
	case minute < 10:
		speak = hourWord + " oh " + onesEN[minute]
	default:
		speak = hourWord + " " + subHundredEN(minute)
	}

	if useAmPm {
		if hour >= 12 {
			speak += " " + e.data.PM
		} else {
			speak += " " + e.data.AM
		}
	}
	return speak
}

func (e *english) NiceDate(t time.Time, opts RenderOptions) (string, error) {
	if opts.Now != nil {
		if delta, ok := relativeDayDelta(t, *opts.Now); ok {
			switch delta {
			case 0:
				return e.data.RelativeDays.Today, nil
			case 1:
				return e.data.RelativeDays.Tomorrow, nil
			default:
				return e.data.RelativeDays.Yesterday, nil
			}
		}
	}

	weekday, err := e.data.weekdayName(t)
	if err != nil {
		return "", err
	}
	month, err := e.data.monthName(t)
	if err != nil {
		return "", err
	}

	day := e.ordinalInt(big.NewInt(int64(t.Day())), ShortScale)
	out := weekday + ", " + month + " " + day

	if opts.Now == nil || opts.Now.Year() != t.Year() {
		year, err := e.yearWords(t.Year())
		if err != nil {
			return "", err
		}
		out += ", " + year
	}
	return out, nil
}

func (e *english) NiceDateTime(t time.Time, opts RenderOptions) (string, error) {
	date, err := e.NiceDate(t, opts)
	if err != nil {
		return "", err
	}
	clock, err := e.NiceTime(t, opts)
	if err != nil {
		return "", err
	}

	out := strings.ReplaceAll(e.data.DateTimeTemplate, "{date}", date)
	return strings.ReplaceAll(out, "{time}", clock), nil
}

func (e *english) NiceYear(t time.Time, opts RenderOptions) (string, error) {
	words, err := e.yearWords(t.Year())
	if err != nil {
		return "", err
	}
	if opts.BC {
		words += " " + e.data.BCSuffix
	}
	return words, nil
}

// yearWords follows the spoken-year conventions: paired centuries for
// 1100-1999 and 2010 onward, "two thousand [n]" for 2000-2009, cardinal
// words elsewhere.
func (e *english) yearWords(year int) (string, error) {
	if year >= 1100 && year <= 9999 {
		switch {
		case year%1000 == 0:
			// even millennia read as cardinals: "two thousand"
		case year >= 2000 && year <= 2009:
			// "two thousand nine"
		default:
			return digitPairsEN(year), nil
		}
	}

	magnitude := year
	if magnitude < 0 {
		magnitude = -magnitude
	}
	cardinal := e.cardinalInt(big.NewInt(int64(magnitude)), ShortScale, false)
	return strings.ReplaceAll(cardinal, ",", ""), nil
}

func (e *english) NiceDuration(d time.Duration, opts RenderOptions) (string, error) {
	if !opts.Speech {
		return digitalDuration(d), nil
	}

	days, hours, minutes, seconds := durationParts(d)
	var parts []string
	appendUnit := func(unit int, count int64) {
		if count == 0 {
			return
		}
		words := e.cardinalInt(big.NewInt(count), ShortScale, false)
		words = strings.ReplaceAll(words, ",", "")
		parts = append(parts, words+" "+e.data.unitName(unit, count))
	}
	appendUnit(3, days)
	appendUnit(2, hours)
	appendUnit(1, minutes)
	appendUnit(0, seconds)

	if len(parts) == 0 {
		return onesEN[0] + " " + e.data.unitName(0, 0), nil
	}
	return strings.Join(parts, " "), nil
}

func (e *english) NiceRelativeTime(when, relativeTo time.Time) (string, error) {
	count, unit := relativeUnit(when.Sub(relativeTo))
	return fmt.Sprintf("%d %s", count, e.data.unitName(unit, count)), nil
}
