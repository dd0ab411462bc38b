package colormath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseHex decodes "#RRGGBB" (opaque) or "#AARRGGBB" (alpha first).
// Digits are case-insensitive.
func ParseHex(text string) (Color, error) {
	c, _, err := parseHex(text)
	return c, err
}

// ParseHexWithAlpha decodes a hex color and applies alpha when the text carries
// no alpha of its own. The components are assembled in A,R,G,B order, so
// "#102030" with alpha 128 becomes ARGB(128, 0x10, 0x20, 0x30). An eight-digit
// input keeps its embedded alpha.
func ParseHexWithAlpha(text string, alpha uint8) (Color, error) {
	c, hasAlpha, err := parseHex(text)
	if err != nil {
		return Empty, err
	}
	if hasAlpha {
		return c, nil
	}
	return ARGB(alpha, c.R, c.G, c.B), nil
}

func parseHex(text string) (Color, bool, error) {
	if !strings.HasPrefix(text, "#") {
		return Empty, false, &FormatError{Input: text, Reason: "missing # prefix"}
	}
	digits := text[1:]

	switch len(digits) {
	case 6, 8:
	default:
		return Empty, false, &FormatError{Input: text, Reason: "expected 6 or 8 hex digits"}
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Empty, false, &FormatError{Input: text, Reason: "invalid hex digit", Err: err}
	}

	if len(digits) == 6 {
		return FromARGB(uint32(val) | 0xFF000000), false, nil
	}
	return FromARGB(uint32(val)), true, nil
}

// ParseComma decodes "r,g,b" (opaque) or "r,g,b,a". Tokens must be bare
// base-10 integers in 0-255; whitespace is not trimmed here (Parse trims it).
func ParseComma(text string) (Color, error) {
	return parseComma(text, false)
}

func parseComma(text string, trim bool) (Color, error) {
	tokens := strings.Split(text, ",")
	if len(tokens) != 3 && len(tokens) != 4 {
		return Empty, &FormatError{Input: text, Reason: "expected 3 or 4 comma-separated values"}
	}
	if trim {
		tokens = lo.Map(tokens, func(t string, _ int) string { return strings.TrimSpace(t) })
	}

	vals := make([]int, len(tokens))
	for i, t := range tokens {
		v, err := strconv.Atoi(t)
		if err != nil {
			return Empty, &FormatError{Input: text, Reason: "value " + strconv.Quote(t) + " is not an integer", Err: err}
		}
		vals[i] = v
	}

	if len(vals) == 3 {
		vals = append(vals, 255)
	}
	c, reason := argbFromInts(vals[3], vals[0], vals[1], vals[2])
	if reason != "" {
		return Empty, &FormatError{Input: text, Reason: reason}
	}
	return c, nil
}

// ARGBFromInts builds a color from int components in A,R,G,B order, rejecting
// any component outside 0-255.
func ARGBFromInts(a, r, g, b int) (Color, error) {
	c, reason := argbFromInts(a, r, g, b)
	if reason != "" {
		return Empty, &FormatError{Input: fmt.Sprintf("%d,%d,%d,%d", a, r, g, b), Reason: reason}
	}
	return c, nil
}

func argbFromInts(a, r, g, b int) (Color, string) {
	for _, v := range [...]int{a, r, g, b} {
		if v != ClampInt(v) {
			return Empty, fmt.Sprintf("component %d outside 0-255", v)
		}
	}
	return ARGB(uint8(a), uint8(r), uint8(g), uint8(b)), ""
}

// Parse dispatches on the shape of text:
//   - leading "#": ParseHex
//   - contains ",": comma form with each token trimmed
//   - otherwise: case-insensitive color name
//
// A name that is not recognized yields *UnknownColorNameError; malformed hex or
// comma text yields *FormatError.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	switch {
	case s == "":
		return Empty, &FormatError{Input: text, Reason: "empty color"}
	case strings.HasPrefix(s, "#"):
		return ParseHex(s)
	case strings.Contains(s, ","):
		return parseComma(s, true)
	}

	if c, ok := Named(s); ok {
		return c, nil
	}
	return Empty, &UnknownColorNameError{Name: s}
}

// HexToDecimal parses a base-16 string (optional 0x prefix) as a 32-bit signed
// integer. Eight-digit values above 0x7FFFFFFF wrap to negative two's complement;
// anything wider than 32 bits is rejected.
func HexToDecimal(hex string) (int32, error) {
	s := hex
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if s == "" {
		return 0, &FormatError{Input: hex, Reason: "no hex digits"}
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, &FormatError{Input: hex, Reason: "not a 32-bit hex number", Err: err}
	}
	return int32(uint32(v)), nil
}
