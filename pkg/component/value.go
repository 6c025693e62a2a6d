package component

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Quantity selects the physical quantity a value string describes. It
// disambiguates the "M" suffix, which SPICE tradition overloads: mega for
// resistance, milli for everything else. This package commits to that
// convention instead of guessing per call site.
type Quantity int

const (
	// QuantityGeneral covers voltages, currents, times and frequencies.
	QuantityGeneral Quantity = iota

	// QuantityResistance treats "M" as mega (1e6).
	QuantityResistance
)

// valueLexer tokenizes SPICE-style value strings: a decimal number followed
// by an optional single-letter suffix. Anything beyond that makes the value
// opaque text.
var valueLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`},
	{Name: "Suffix", Pattern: `(?i)[KMUNPVA]`},
	{Name: "Rest", Pattern: `\S+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var valueSymbols = valueLexer.Symbols()

// ParseValue parses a value string into a float with its suffix scale
// applied. The recognized suffixes are K (1e3), M (mega or milli per the
// Quantity), U (1e-6), N (1e-9), P (1e-12) and the unit markers V and A
// (scale 1). Returns ok=false when the string is not a plain number plus
// optional suffix; callers then treat the value as opaque text.
func ParseValue(value string, q Quantity) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}

	toks, err := lexTokens(trimmed)
	if err != nil {
		return 0, false
	}

	var number string
	var suffix string
	for _, tok := range toks {
		switch tok.Type {
		case valueSymbols["Number"]:
			if number != "" {
				return 0, false
			}
			number = tok.Value
		case valueSymbols["Suffix"]:
			if number == "" || suffix != "" {
				return 0, false
			}
			suffix = tok.Value
		case valueSymbols["Whitespace"]:
			// ignore
		default:
			return 0, false
		}
	}
	if number == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	return f * suffixScale(suffix, q), true
}

// NormalizeValue renders a value string as a bare decimal with the suffix
// scale applied, for consumers that cannot interpret suffixes. It never
// fails: input that does not parse is returned unchanged, leaving the
// simulator to accept or reject it.
func NormalizeValue(value string, q Quantity) string {
	f, ok := ParseValue(value, q)
	if !ok {
		return value
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func lexTokens(input string) ([]lexer.Token, error) {
	lx, err := valueLexer.LexString("", input)
	if err != nil {
		return nil, err
	}
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func suffixScale(suffix string, q Quantity) float64 {
	switch strings.ToUpper(suffix) {
	case "K":
		return 1e3
	case "M":
		if q == QuantityResistance {
			return 1e6
		}
		return 1e-3
	case "U":
		return 1e-6
	case "N":
		return 1e-9
	case "P":
		return 1e-12
	default:
		// "", "V", "A"
		return 1
	}
}
