package notation

import "strings"

const superscriptMinus = '⁻'

// superscriptPlus is tolerated on input and dropped.
const superscriptPlus = '⁺'

var superscriptDigits = map[rune]byte{
	'⁰': '0',
	'¹': '1',
	'²': '2',
	'³': '3',
	'⁴': '4',
	'⁵': '5',
	'⁶': '6',
	'⁷': '7',
	'⁸': '8',
	'⁹': '9',
}

// IsSuperscriptDigit reports whether r is one of ⁰¹²³⁴⁵⁶⁷⁸⁹.
func IsSuperscriptDigit(r rune) bool {
	_, ok := superscriptDigits[r]
	return ok
}

// NormalizeSuperscripts rewrites every run of superscript digits, optionally
// preceded by a superscript sign, into an ASCII exponent: "kg⁻¹" becomes
// "kg^-1" and "m²" becomes "m^2". A sign that is not followed by a digit is
// left untouched.
func NormalizeSuperscripts(s string) string {
	if !strings.ContainsFunc(s, isSuperscript) {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		sign := r == superscriptMinus || r == superscriptPlus
		start := i
		if sign {
			start++
		}
		end := start
		for end < len(runes) && IsSuperscriptDigit(runes[end]) {
			end++
		}
		if end == start {
			b.WriteRune(r)
			continue
		}

		b.WriteByte('^')
		if r == superscriptMinus {
			b.WriteByte('-')
		}
		for _, d := range runes[start:end] {
			b.WriteByte(superscriptDigits[d])
		}
		i = end - 1
	}
	return b.String()
}

func isSuperscript(r rune) bool {
	return r == superscriptMinus || r == superscriptPlus || IsSuperscriptDigit(r)
}
