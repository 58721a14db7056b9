package speakable

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Numeral is a signed real number with enough precision to distinguish an
// exact integer from a decimal at any magnitude the scale tables can name.
// The zero value is the number zero.
type Numeral struct {
	nan bool
	val *big.Float
}

// Num builds a Numeral from a float64, including ±Inf and NaN.
func Num(v float64) Numeral {
	if math.IsNaN(v) {
		return Numeral{nan: true}
	}
	return Numeral{val: big.NewFloat(v)}
}

// Int builds a Numeral from an int64.
func Int(v int64) Numeral {
	return Numeral{val: new(big.Float).SetPrec(64).SetInt64(v)}
}

// BigInt builds an exact Numeral from an arbitrary-magnitude integer.
func BigInt(v *big.Int) Numeral {
	prec := uint(v.BitLen()) + 8
	if prec < 64 {
		prec = 64
	}
	return Numeral{val: new(big.Float).SetPrec(prec).SetInt(v)}
}

// Inf returns positive infinity when sign >= 0, negative infinity otherwise.
func Inf(sign int) Numeral {
	return Numeral{val: big.NewFloat(math.Inf(sign))}
}

// NaN returns the not-a-number Numeral.
func NaN() Numeral {
	return Numeral{nan: true}
}

// ParseNumeral parses a decimal string, optionally with an exponent
// ("1e147"), into an exact Numeral.
func ParseNumeral(s string) (Numeral, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "nan") {
		return NaN(), nil
	}

	// enough mantissa bits for every decimal digit supplied, counting the
	// digits an exponent shifts in (a shade over 3.33 bits per digit)
	digits := len(trimmed)
	if idx := strings.IndexAny(trimmed, "eE"); idx >= 0 {
		digits = idx
		if exp, err := strconv.Atoi(strings.TrimPrefix(trimmed[idx+1:], "+")); err == nil {
			if exp < 0 {
				exp = -exp
			}
			digits += exp
		}
	}
	prec := uint(digits)*4 + 64

	val, _, err := big.ParseFloat(trimmed, 10, prec, big.ToNearestEven)
	if err != nil {
		return Numeral{}, fmt.Errorf("speakable: parse numeral %q: %w", s, err)
	}
	return Numeral{val: val}, nil
}

// IsNaN reports whether the value is not a number.
func (n Numeral) IsNaN() bool {
	return n.nan
}

// IsInf reports whether the value is ±infinity.
func (n Numeral) IsInf() bool {
	return !n.nan && n.float().IsInf()
}

// Negative reports whether the value carries a negative sign.
func (n Numeral) Negative() bool {
	return !n.nan && n.float().Signbit()
}

// IsInt reports whether the value is an exact integer.
func (n Numeral) IsInt() bool {
	return !n.nan && !n.IsInf() && n.float().IsInt()
}

// Float64 returns the nearest float64.
func (n Numeral) Float64() float64 {
	if n.nan {
		return math.NaN()
	}
	v, _ := n.float().Float64()
	return v
}

// String renders the plain decimal form, the representation used when a
// rendering call degrades for an unknown locale.
func (n Numeral) String() string {
	switch {
	case n.nan:
		return "NaN"
	case n.IsInf():
		if n.Negative() {
			return "-Inf"
		}
		return "Inf"
	case n.IsInt():
		i, _ := n.float().Int(nil)
		return i.String()
	default:
		return n.float().Text('f', -1)
	}
}

func (n Numeral) float() *big.Float {
	if n.val == nil {
		return new(big.Float)
	}
	return n.val
}

// abs returns the magnitude as a big.Float, never nil.
func (n Numeral) abs() *big.Float {
	return new(big.Float).SetPrec(n.float().Prec()).Abs(n.float())
}

// integer returns the magnitude truncated toward zero.
func (n Numeral) integer() *big.Int {
	i, _ := n.abs().Int(nil)
	if i == nil {
		i = new(big.Int)
	}
	return i
}

// decimalText returns the shortest decimal expansion of the magnitude,
// e.g. "21.234". Integers come back without a point.
func (n Numeral) decimalText() string {
	if n.IsInt() {
		return n.integer().String()
	}
	return n.abs().Text('f', -1)
}
