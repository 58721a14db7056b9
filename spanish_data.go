package speakable

// Number-word tables for the Spanish variant. Spanish names 21-29 as single
// words, so the ones table runs to twenty-nine; the calendar tables live in
// data/es-*.yaml.

var onesES = []string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho",
	"nueve", "diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var tensES = []string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta",
	"ochenta", "noventa",
}

// hundredsES[i] names i*100; exactly 100 reads "cien" instead of "ciento".
var hundredsES = []string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// scalesES names the long-scale group at index i-1 for six-digit group
// position i, i.e. scalesES[0] covers 10^6. Plurals swap the -ón ending
// for -ones.
var scalesES = []string{
	"millón", "billón", "trillón", "cuatrillón", "quintillón", "sextillón",
	"septillón", "octillón", "nonillón", "decillón",
}

// ordinalOnesES names ordinals one through nineteen.
var ordinalOnesES = []string{
	"", "primero", "segundo", "tercero", "cuarto", "quinto", "sexto",
	"séptimo", "octavo", "noveno", "décimo", "undécimo", "duodécimo",
	"decimotercero", "decimocuarto", "decimoquinto", "decimosexto",
	"decimoséptimo", "decimoctavo", "decimonoveno",
}

// ordinalTensES[i] names the ordinal of i*10 for i >= 2.
var ordinalTensES = []string{
	"", "", "vigésimo", "trigésimo", "cuadragésimo", "quincuagésimo",
	"sexagésimo", "septuagésimo", "octogésimo", "nonagésimo",
}

// fractionNamesES names spoken denominators.
var fractionNamesES = map[int]string{
	2:  "medio",
	3:  "tercio",
	4:  "cuarto",
	5:  "quinto",
	6:  "sexto",
	7:  "séptimo",
	8:  "octavo",
	9:  "noveno",
	10: "décimo",
	11: "onceavo",
	12: "doceavo",
	13: "treceavo",
	14: "catorceavo",
	15: "quinceavo",
	16: "dieciseisavo",
	17: "diecisieteavo",
	18: "dieciochoavo",
	19: "diecinueveavo",
	20: "veinteavo",
}
