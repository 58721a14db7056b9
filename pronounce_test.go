package speakable

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := New(
		WithActiveLocales("en-us", "en-gb", "es-es"),
		WithDefaultLocale("en-us"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return registry
}

func pronounce(t *testing.T, r *Registry, n Numeral, options ...Option) string {
	t.Helper()
	out, err := r.PronounceNumber(n, options...)
	if err != nil {
		t.Fatalf("PronounceNumber(%v): %v", n, err)
	}
	if out.Warning != nil {
		t.Fatalf("PronounceNumber(%v): unexpected warning %v", n, out.Warning)
	}
	return out.Text
}

func TestPronounceIntegers(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		value int64
		want  string
	}{
		{0, "zero"},
		{1, "one"},
		{10, "ten"},
		{15, "fifteen"},
		{20, "twenty"},
		{27, "twenty seven"},
		{30, "thirty"},
		{33, "thirty three"},
		{-1, "minus one"},
		{-10, "minus ten"},
		{-15, "minus fifteen"},
		{-20, "minus twenty"},
		{-27, "minus twenty seven"},
		{-30, "minus thirty"},
		{-33, "minus thirty three"},
	}
	for _, tc := range tests {
		if got := pronounce(t, r, Int(tc.value)); got != tc.want {
			t.Fatalf("PronounceNumber(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestPronounceDecimals(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		value  float64
		places int
		want   string
	}{
		{0.05, defaultPlaces, "zero point zero five"},
		{-0.05, defaultPlaces, "minus zero point zero five"},
		{1.234, defaultPlaces, "one point two three"},
		{21.234, defaultPlaces, "twenty one point two three"},
		{21.234, 1, "twenty one point two"},
		{21.234, 0, "twenty one"},
		{21.234, 3, "twenty one point two three four"},
		{21.234, 4, "twenty one point two three four"},
		{21.234, 5, "twenty one point two three four"},
		{-1.234, defaultPlaces, "minus one point two three"},
		{-21.234, defaultPlaces, "minus twenty one point two three"},
		{-21.234, 1, "minus twenty one point two"},
		{-21.234, 0, "minus twenty one"},
		{-21.234, 3, "minus twenty one point two three four"},
		{-21.234, 5, "minus twenty one point two three four"},
	}
	for _, tc := range tests {
		got := pronounce(t, r, Num(tc.value), WithPlaces(tc.places))
		if got != tc.want {
			t.Fatalf("PronounceNumber(%v, places=%d) = %q, want %q",
				tc.value, tc.places, got, tc.want)
		}
	}
}

func TestPronounceHundreds(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		value int64
		want  string
	}{
		{100, "one hundred"},
		{666, "six hundred and sixty six"},
		{1456, "one thousand, four hundred and fifty six"},
		{209996, "two hundred and nine thousand, nine hundred and ninety six"},
		{1512457, "one million, five hundred and twelve thousand, four hundred and fifty seven"},
		{103254654, "one hundred and three million, two hundred and fifty four thousand, six hundred and fifty four"},
	}
	for _, tc := range tests {
		if got := pronounce(t, r, Int(tc.value)); got != tc.want {
			t.Fatalf("PronounceNumber(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestPronounceDigitPairs(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		value int64
		want  string
	}{
		{1456, "fourteen fifty six"},
		{1500, "fifteen hundred"},
		{1907, "nineteen oh seven"},
		{1984, "nineteen eighty four"},
	}
	for _, tc := range tests {
		got := pronounce(t, r, Int(tc.value), WithDigitPairs())
		if got != tc.want {
			t.Fatalf("PronounceNumber(%d, digit pairs) = %q, want %q",
				tc.value, got, tc.want)
		}
	}
}

func TestPronounceLargeNumbers(t *testing.T) {
	r := testRegistry(t)

	huge, ok := new(big.Int).SetString("100034000000299792458", 10)
	if !ok {
		t.Fatal("SetString failed")
	}

	tests := []struct {
		name  string
		value Numeral
		scale ScaleConvention
		want  string
	}{
		{"short c", Int(299792458), ShortScale,
			"two hundred and ninety nine million, seven hundred and ninety two thousand, four hundred and fifty eight"},
		{"long c", Int(299792458), LongScale,
			"two hundred and ninety nine million, seven hundred and ninety two thousand, four hundred and fifty eight"},
		{"short huge", BigInt(huge), ShortScale,
			"one hundred quintillion, thirty four quadrillion, two hundred and ninety nine million, seven hundred and ninety two thousand, four hundred and fifty eight"},
		{"long huge", BigInt(huge), LongScale,
			"one hundred trillion, thirty four thousand billion, two hundred and ninety nine million, seven hundred and ninety two thousand, four hundred and fifty eight"},
		{"ten billion", Int(10000000000), ShortScale, "ten billion"},
		{"one trillion", Int(1000000000000), ShortScale, "one trillion"},
		{"long trillion", Int(1000000000000), LongScale, "one billion"},
		{"million and one", Int(1000001), ShortScale, "one million, one"},
		{"short mixed", Int(95505896639631893), ShortScale,
			"ninety five quadrillion, five hundred and five trillion, eight hundred and ninety six billion, six hundred and thirty nine million, six hundred and thirty one thousand, eight hundred and ninety three"},
		{"long mixed", Int(95505896639631893), LongScale,
			"ninety five thousand five hundred and five billion, eight hundred and ninety six thousand six hundred and thirty nine million, six hundred and thirty one thousand, eight hundred and ninety three"},
		{"power float", Num(10e80), ShortScale, "one qesvigintillion"},
		{"power float small", Num(1e147), ShortScale, "one millinillion"},
		{"power float nonillion", Num(1e30), ShortScale, "one nonillion"},
		{"power float long", Num(1e18), LongScale, "one trillion"},
	}
	for _, tc := range tests {
		got := pronounce(t, r, tc.value, WithScale(tc.scale))
		if got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPronounceGiantFloatExpansion(t *testing.T) {
	r := testRegistry(t)

	want := "one hundred and ninety eight quinquavigintillion, " +
		"seven hundred and forty five quattuorvigintillion, " +
		"two hundred and twenty five tresvigintillion, " +
		"seven hundred and nine uuovigintillion, " +
		"nine hundred and ninety nine unvigintillion, " +
		"nine hundred and eighty nine vigintillion, " +
		"seven hundred and thirty novendecillion, " +
		"nine hundred and nineteen octodecillion, " +
		"nine hundred and ninety nine septendecillion, " +
		"nine hundred and fifty five sedecillion, " +
		"four hundred and ninety eight quinquadecillion, " +
		"two hundred and fourteen quattuordecillion, " +
		"eight hundred and forty five tredecillion, " +
		"four hundred and twenty nine duodecillion, " +
		"four hundred and forty four undecillion, " +
		"three hundred and thirty six decillion, " +
		"seven hundred and twenty four nonillion, " +
		"five hundred and sixty nine octillion, " +
		"three hundred and seventy five septillion, " +
		"two hundred and thirty nine sextillion, " +
		"six hundred and seventy quintillion, " +
		"five hundred and seventy four quadrillion, " +
		"seven hundred and thirty nine trillion, " +
		"seven hundred and forty eight billion, " +
		"four hundred and seventy million, " +
		"nine hundred and fifteen thousand, seventy two"

	got := pronounce(t, r, Num(1.9874522571e80), WithPlaces(9))
	if got != want {
		t.Fatalf("PronounceNumber(1.9874522571e80) = %q, want %q", got, want)
	}
}

func TestPronounceScaleBoundary(t *testing.T) {
	r := testRegistry(t)

	// the nearest double below 10^150 still expands in full words
	inTable := pronounce(t, r, Num(1.00000000000000001e150))
	if !strings.HasPrefix(inTable, "nine hundred and ninety nine millinillion") {
		t.Fatalf("expected full expansion, got %q...", inTable[:80])
	}
	if strings.Contains(inTable, "times ten") {
		t.Fatalf("expected no scientific fallback, got %q...", inTable[:80])
	}

	// the exact magnitude 10^150 escapes the table
	exact, err := ParseNumeral("1e150")
	if err != nil {
		t.Fatalf("ParseNumeral: %v", err)
	}
	got := pronounce(t, r, exact)
	want := "one times ten to the power of one hundred and fifty"
	if got != want {
		t.Fatalf("PronounceNumber(1e150) = %q, want %q", got, want)
	}

	// an exact in-table power parses and names directly
	named, err := ParseNumeral("1e147")
	if err != nil {
		t.Fatalf("ParseNumeral: %v", err)
	}
	if got := pronounce(t, r, named); got != "one millinillion" {
		t.Fatalf("PronounceNumber(1e147) = %q, want %q", got, "one millinillion")
	}
}

func TestPronounceScientific(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		name    string
		value   float64
		places  int
		ordinal bool
		want    string
	}{
		{"zero", 0, defaultPlaces, false, "zero"},
		{"33", 33, defaultPlaces, false,
			"three point three times ten to the power of one"},
		{"c", 299792458, defaultPlaces, false,
			"two point nine nine times ten to the power of eight"},
		{"c six places", 299792458, 6, false,
			"two point nine nine seven nine two five times ten to the power of eight"},
		{"proton mass", 1.672e-27, 3, false,
			"one point six seven two times ten to the power of negative twenty seven"},
		{"proton mass ordinal", 1.672e-27, 3, true,
			"one point six seven two times ten to the negative twenty seventh power"},
	}
	for _, tc := range tests {
		options := []Option{AsScientific(), WithPlaces(tc.places)}
		if tc.ordinal {
			options = append(options, AsOrdinal())
		}
		got := pronounce(t, r, Num(tc.value), options...)
		if got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPronounceAutoScientific(t *testing.T) {
	r := testRegistry(t)

	got := pronounce(t, r, Num(1.1e-150))
	want := "one point one times ten to the power of negative one hundred and fifty"
	if got != want {
		t.Fatalf("PronounceNumber(1.1e-150) = %q, want %q", got, want)
	}
}

func TestPronounceOrdinals(t *testing.T) {
	r := testRegistry(t)

	tests := []struct {
		value Numeral
		scale ScaleConvention
		want  string
	}{
		{Int(1), ShortScale, "first"},
		{Int(10), ShortScale, "tenth"},
		{Int(15), ShortScale, "fifteenth"},
		{Int(20), ShortScale, "twentieth"},
		{Int(27), ShortScale, "twenty seventh"},
		{Int(30), ShortScale, "thirtieth"},
		{Int(33), ShortScale, "thirty third"},
		{Int(100), ShortScale, "hundredth"},
		{Int(1000), ShortScale, "thousandth"},
		{Int(10000), ShortScale, "ten thousandth"},
		{Int(18691), ShortScale, "eighteen thousand, six hundred and ninety first"},
		{Int(1567), ShortScale, "one thousand, five hundred and sixty seventh"},
		{Num(18e6), ShortScale, "eighteen millionth"},
		{Num(18e12), ShortScale, "eighteen trillionth"},
		{Num(18e12), LongScale, "eighteen billionth"},
		{Num(18e18), LongScale, "eighteen trillionth"},
	}
	for _, tc := range tests {
		got := pronounce(t, r, tc.value, AsOrdinal(), WithScale(tc.scale))
		if got != tc.want {
			t.Fatalf("ordinal %v = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestPronounceSpecialValues(t *testing.T) {
	r := testRegistry(t)

	if got := pronounce(t, r, Num(math.Inf(1))); got != "infinity" {
		t.Fatalf("PronounceNumber(+Inf) = %q", got)
	}
	if got := pronounce(t, r, Num(math.Inf(-1))); got != "negative infinity" {
		t.Fatalf("PronounceNumber(-Inf) = %q", got)
	}

	if _, err := r.PronounceNumber(NaN()); !errors.Is(err, ErrInvalidNumeral) {
		t.Fatalf("PronounceNumber(NaN) error = %v, want ErrInvalidNumeral", err)
	}
}
