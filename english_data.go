package speakable

// Number-word tables for the English variant. Kept as Go source next to the
// implementation; the calendar tables live in data/en-*.yaml.

var onesEN = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensEN = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scalesEN names the short-scale group at index i-1 for group position i,
// i.e. scalesEN[0] covers 10^3 and scalesEN[48] covers 10^147. The long
// scale reuses the same names from "million" onward, one name per 10^6.
// Spellings such as "uuovigintillion" and "qesvigintillion" are the
// historical table entries and are kept verbatim.
var scalesEN = []string{
	"thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion",
	"decillion", "undecillion", "duodecillion", "tredecillion",
	"quattuordecillion", "quinquadecillion", "sedecillion",
	"septendecillion", "octodecillion", "novendecillion", "vigintillion",
	"unvigintillion", "uuovigintillion", "tresvigintillion",
	"quattuorvigintillion", "quinquavigintillion", "qesvigintillion",
	"septemvigintillion", "octovigintillion", "novemvigintillion",
	"trigintillion", "untrigintillion", "duotrigintillion",
	"trestrigintillion", "quattuortrigintillion", "quinquatrigintillion",
	"sestrigintillion", "septentrigintillion", "octotrigintillion",
	"noventrigintillion", "quadragintillion", "quinquagintillion",
	"sexagintillion", "septuagintillion", "octogintillion", "nonagintillion",
	"centillion", "uncentillion", "millinillion",
}

// irregularOrdinalsEN maps cardinal words whose ordinal form is not a plain
// "th" suffix.
var irregularOrdinalsEN = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// fractionNamesEN names spoken denominators. The misspelled entries are the
// historical table spellings, kept verbatim.
var fractionNamesEN = map[int]string{
	2:  "half",
	3:  "third",
	4:  "forth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "eigth",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelveth",
	13: "thirteenth",
	14: "fourteenth",
	15: "fifteenth",
	16: "sixteenth",
	17: "seventeenth",
	18: "eighteenth",
	19: "nineteenth",
	20: "twentyith",
}
