// Package colorparse parses the CSS colour strings accepted as canvas paints.
package colorparse

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Parse converts s to a non-premultiplied colour. It accepts CSS keywords,
// "transparent", #rgb, #rgba, #rrggbb, #rrggbbaa, rgb() and rgba() with
// numbers or percentages, and the legacy "0" for opaque black.
func Parse(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, false
	}
	if s == "0" {
		return color.NRGBA{A: 0xff}, true
	}
	if s[0] == '#' {
		return parseHex(s)
	}

	key := cases.Fold().String(s)
	if key == "transparent" {
		return color.NRGBA{}, true
	}
	if c, ok := colornames.Map[key]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	if args, ok := functional(key); ok {
		return parseRGBFunc(args)
	}
	return color.NRGBA{}, false
}

func parseHex(s string) (color.NRGBA, bool) {
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if !isHex(digits[i]) {
			return color.NRGBA{}, false
		}
	}

	alpha := uint8(0xff)
	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(digits[3:]+digits[3:], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha, digits = uint8(a), digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, false
		}
		alpha, digits = uint8(a), digits[:6]
	}

	if len(digits) != 3 && len(digits) != 6 {
		return color.NRGBA{}, false
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// functional splits "rgb(...)" or "rgba(...)" into its arguments.
func functional(s string) ([]string, bool) {
	var body string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body = s[len("rgb(") : len(s)-1]
	default:
		return nil, false
	}

	// Both the legacy comma form and the space form with "/ alpha".
	body = strings.ReplaceAll(body, "/", " ")
	body = strings.ReplaceAll(body, ",", " ")
	return strings.Fields(body), true
}

func parseRGBFunc(args []string) (color.NRGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, pct, ok := number(args[i])
		if !ok {
			return color.NRGBA{}, false
		}
		if pct {
			v = v * 255 / 100
		}
		ch[i] = clamp255(v)
	}

	alpha := uint8(0xff)
	if len(args) == 4 {
		v, pct, ok := number(args[3])
		if !ok {
			return color.NRGBA{}, false
		}
		if pct {
			v /= 100
		}
		alpha = clamp255(v * 255)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}

// number parses a CSS number with an optional trailing percent sign.
func number(s string) (v float64, percent bool, ok bool) {
	if strings.HasSuffix(s, "%") {
		s, percent = s[:len(s)-1], true
	}
	v, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) || math.IsNaN(v) {
		return 0, false, false
	}
	return v, percent, true
}

func clamp255(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
