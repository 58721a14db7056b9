package speakable

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// spanish implements the Language rule set for the es-* locales. Spanish
// always speaks on the long scale; the scale switch is ignored because the
// short-scale vocabulary does not exist in the language.
type spanish struct {
	data *localeData
}

func newSpanish(data *localeData) (Language, error) {
	return &spanish{data: data}, nil
}

func (s *spanish) Code() string {
	return s.data.Code
}

// scaleUpperBoundES is the first magnitude past the named Spanish table.
func scaleUpperBoundES() *big.Float {
	exp := int64(6 * (len(scalesES) + 1))
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
	return new(big.Float).SetPrec(uint(bound.BitLen()) + 8).SetInt(bound)
}

func beyondScaleES(n Numeral) bool {
	if n.float().Sign() == 0 {
		return false
	}
	abs := n.abs()
	if abs.Cmp(scaleUpperBoundES()) >= 0 {
		return true
	}
	return !n.IsInt() && abs.Cmp(tinyBound) < 0
}

func (s *spanish) PronounceNumber(n Numeral, opts RenderOptions) (string, error) {
	if n.IsNaN() {
		return "", ErrInvalidNumeral
	}
	if n.IsInf() {
		if n.Negative() {
			return "menos infinito", nil
		}
		return "infinito", nil
	}

	if opts.Scientific || beyondScaleES(n) {
		if spoken, ok := s.scientific(n, opts); ok {
			return spoken, nil
		}
	}
	return s.plain(n, opts)
}

func (s *spanish) plain(n Numeral, opts RenderOptions) (string, error) {
	if n.float().Sign() == 0 {
		return onesES[0], nil
	}

	var sb strings.Builder
	if n.Negative() {
		sb.WriteString("menos ")
	}

	if opts.Ordinals && n.IsInt() {
		sb.WriteString(ordinalIntES(n.integer()))
		return sb.String(), nil
	}

	sb.WriteString(cardinalIntES(n.integer()))

	if !n.IsInt() {
		_, fracDigits := truncateFraction(n.decimalText(), opts.Places)
		if fracDigits != "" {
			sb.WriteString(" coma")
			for _, digit := range fracDigits {
				sb.WriteString(" ")
				sb.WriteString(onesES[digit-'0'])
			}
		}
	}
	return sb.String(), nil
}

// cardinalIntES names a non-negative integer on the long scale.
func cardinalIntES(value *big.Int) string {
	if value.Sign() == 0 {
		return onesES[0]
	}

	groups := splitGroups(value, 6)
	parts := make([]string, 0, len(groups))
	for i, group := range groups {
		if group == 0 {
			continue
		}

		word := subMillionES(group)
		if i > 0 {
			scale := scalesES[i-1]
			if group == 1 {
				word = "un " + scale
			} else {
				word = apocopeES(word) + " " + strings.TrimSuffix(scale, "ón") + "ones"
			}
		}
		parts = append(parts, word)
	}

	for left, right := 0, len(parts)-1; left < right; left, right = left+1, right-1 {
		parts[left], parts[right] = parts[right], parts[left]
	}
	return strings.Join(parts, " ")
}

// subMillionES names 1..999999, folding the thousands in place ("dos mil
// trescientos cuarenta y cinco").
func subMillionES(n int) string {
	thousands, rest := n/1000, n%1000
	switch {
	case thousands == 0:
		return subThousandES(rest)
	case thousands == 1:
		if rest == 0 {
			return "mil"
		}
		return "mil " + subThousandES(rest)
	default:
		out := apocopeES(subThousandES(thousands)) + " mil"
		if rest != 0 {
			out += " " + subThousandES(rest)
		}
		return out
	}
}

func subThousandES(n int) string {
	if n == 100 {
		return "cien"
	}
	if n >= 100 {
		out := hundredsES[n/100]
		if rest := n % 100; rest != 0 {
			out += " " + subHundredES(rest)
		}
		return out
	}
	return subHundredES(n)
}

func subHundredES(n int) string {
	if n < 30 {
		return onesES[n]
	}
	out := tensES[n/10]
	if unit := n % 10; unit != 0 {
		out += " y " + onesES[unit]
	}
	return out
}

// apocopeES shortens a trailing "uno" before a masculine noun: "veintiuno
// mil" is wrong, "veintiún mil" is right.
func apocopeES(word string) string {
	switch {
	case word == "uno":
		return "un"
	case strings.HasSuffix(word, "veintiuno"):
		return strings.TrimSuffix(word, "veintiuno") + "veintiún"
	case strings.HasSuffix(word, " uno"):
		return strings.TrimSuffix(word, "uno") + "un"
	}
	return word
}

// ordinalIntES names ordinals through ninety-nine plus the bare powers
// (centésimo, milésimo, millonésimo); everything else falls back to the
// cardinal, which is also what the language does in everyday speech.
func ordinalIntES(value *big.Int) string {
	if value.IsInt64() {
		switch v := value.Int64(); {
		case v >= 1 && v < 20:
			return ordinalOnesES[v]
		case v < 100:
			out := ordinalTensES[v/10]
			if unit := v % 10; unit != 0 {
				out += " " + ordinalOnesES[unit]
			}
			return out
		case v == 100:
			return "centésimo"
		case v == 1000:
			return "milésimo"
		case v == 1000000:
			return "millonésimo"
		}
	}
	return cardinalIntES(value)
}

// scientific renders "por diez elevado a" phrasing. ok is false when the
// exponent is zero and plain naming should be used instead.
func (s *spanish) scientific(n Numeral, opts RenderOptions) (string, bool) {
	if n.float().Sign() == 0 {
		return "", false
	}

	mantissa, exponent := sciParts(n)
	if exponent == 0 {
		return "", false
	}

	var sb strings.Builder
	if n.Negative() {
		sb.WriteString("menos ")
	}

	intPart, fracDigits := truncateFraction(mantissa, opts.Places)
	value, _ := new(big.Int).SetString(intPart, 10)
	if value == nil {
		value = new(big.Int)
	}
	sb.WriteString(cardinalIntES(value))
	if fracDigits != "" {
		sb.WriteString(" coma")
		for _, digit := range fracDigits {
			sb.WriteString(" ")
			sb.WriteString(onesES[digit-'0'])
		}
	}

	sb.WriteString(" por diez elevado a ")
	if exponent < 0 {
		sb.WriteString("menos ")
		exponent = -exponent
	}
	sb.WriteString(cardinalIntES(big.NewInt(int64(exponent))))
	return sb.String(), true
}

func (s *spanish) NiceNumber(n Numeral, opts RenderOptions) (string, error) {
	if n.IsNaN() {
		return "", ErrInvalidNumeral
	}
	if n.IsInf() {
		return s.PronounceNumber(n, opts)
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

	name, ok := fractionNamesES[denominator]
	if !ok {
		return fmt.Sprintf("%d %d/%d", whole, numerator, denominator), nil
	}

	var out string
	switch {
	case whole == 0 && numerator == 1:
		out = "un " + name
	case whole == 0:
		out = fmt.Sprintf("%d %s", numerator, name)
	case numerator == 1:
		out = fmt.Sprintf("%d y un %s", whole, name)
	default:
		out = fmt.Sprintf("%d y %d %s", whole, numerator, name)
	}
	if numerator > 1 {
		out += "s"
	}
	return out, nil
}

func (s *spanish) NiceTime(t time.Time, opts RenderOptions) (string, error) {
	if !opts.Speech {
		return digitalTime(t, opts.Use24Hour, opts.UseAmPm, "AM", "PM"), nil
	}
	if opts.Use24Hour {
		return s.spoken24Hour(t), nil
	}
	return s.spoken12Hour(t, opts.UseAmPm), nil
}

// hourArticleES prefixes the feminine article: "la una", "las dos".
func hourArticleES(hour int) string {
	if hour == 1 {
		return "la una"
	}
	return "las " + subHundredES(hour)
}

func (s *spanish) spoken24Hour(t time.Time) string {
	hour, minute := t.Hour(), t.Minute()

	var sb strings.Builder
	sb.WriteString(hourArticleES(hour))
	switch {
	case minute == 0:
	case minute < 10:
		sb.WriteString(" cero ")
		sb.WriteString(onesES[minute])
	default:
		sb.WriteString(" ")
		sb.WriteString(subHundredES(minute))
	}
	return sb.String()
}

func (s *spanish) spoken12Hour(t time.Time, useAmPm bool) string {
	hour, minute := t.Hour(), t.Minute()
	if hour == 0 && minute == 0 {
		return "medianoche"
	}
	if hour == 12 && minute == 0 {
		return "mediodía"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	var speak string
	switch {
	case minute == 0:
		speak = hourArticleES(hour12)
		if !useAmPm {
			speak += " en punto"
		}
	case minute == 15:
		speak = hourArticleES(hour12) + " y cuarto"
	case minute == 30:
		speak = hourArticleES(hour12) + " y media"
	case minute == 45:
		speak = hourArticleES(nextHour12(hour12)) + " menos cuarto"
	case minute > 30:
		speak = hourArticleES(nextHour12(hour12)) + " menos " + subHundredES(60-minute)
	default:
		speak = hourArticleES(hour12) + " y " + subHundredES(minute)
	}

	if useAmPm {
		if hour >= 12 {
			speak += " " + s.data.PM
		} else {
			speak += " " + s.data.AM
		}
	}
	return speak
}

func nextHour12(hour12 int) int {
	if hour12 == 12 {
		return 1
	}
	return hour12 + 1
}

func (s *spanish) NiceDate(t time.Time, opts RenderOptions) (string, error) {
	if opts.Now != nil {
		if delta, ok := relativeDayDelta(t, *opts.Now); ok {
			switch delta {
			case 0:
				return s.data.RelativeDays.Today, nil
			case 1:
				return s.data.RelativeDays.Tomorrow, nil
			default:
				return s.data.RelativeDays.Yesterday, nil
			}
		}
	}

	weekday, err := s.data.weekdayName(t)
	if err != nil {
		return "", err
	}
	month, err := s.data.monthName(t)
	if err != nil {
		return "", err
	}

	// the first of the month is the only ordinal date in Spanish
	day := cardinalIntES(big.NewInt(int64(t.Day())))
	if t.Day() == 1 {
		day = "primero"
	}
	out := weekday + ", " + day + " de " + month

	if opts.Now == nil || opts.Now.Year() != t.Year() {
		out += " de " + s.yearWords(t.Year())
	}
	return out, nil
}

func (s *spanish) NiceDateTime(t time.Time, opts RenderOptions) (string, error) {
	date, err := s.NiceDate(t, opts)
	if err != nil {
		return "", err
	}
	clock, err := s.NiceTime(t, opts)
	if err != nil {
		return "", err
	}

	out := strings.ReplaceAll(s.data.DateTimeTemplate, "{date}", date)
	return strings.ReplaceAll(out, "{time}", clock), nil
}

func (s *spanish) NiceYear(t time.Time, opts RenderOptions) (string, error) {
	words := s.yearWords(t.Year())
	if opts.BC {
		words += " " + s.data.BCSuffix
	}
	return words, nil
}

// yearWords speaks years as plain cardinals; Spanish has no paired-digit
// year convention.
func (s *spanish) yearWords(year int) string {
	magnitude := year
	if magnitude < 0 {
		magnitude = -magnitude
	}
	return cardinalIntES(big.NewInt(int64(magnitude)))
}

func (s *spanish) NiceDuration(d time.Duration, opts RenderOptions) (string, error) {
	if !opts.Speech {
		return digitalDuration(d), nil
	}

	days, hours, minutes, seconds := durationParts(d)
	var parts []string
	appendUnit := func(unit int, count int64) {
		if count == 0 {
			return
		}
		words := cardinalIntES(big.NewInt(count))
		if count == 1 {
			// "una hora" but "un día", "un minuto", "un segundo"
			words = "un"
			if unit == 2 {
				words = "una"
			}
		}
		parts = append(parts, words+" "+s.data.unitName(unit, count))
	}
	appendUnit(3, days)
	appendUnit(2, hours)
	appendUnit(1, minutes)
	appendUnit(0, seconds)

	if len(parts) == 0 {
		return onesES[0] + " " + s.data.unitName(0, 0), nil
	}
	return strings.Join(parts, " "), nil
}

func (s *spanish) NiceRelativeTime(when, relativeTo time.Time) (string, error) {
	count, unit := relativeUnit(when.Sub(relativeTo))
	return fmt.Sprintf("%d %s", count, s.data.unitName(unit, count)), nil
}
