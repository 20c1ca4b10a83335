// Package color provides the small color helpers used by arbor's styles:
// hex inversion for contrasting text, validity checks and random colors.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidFormat is returned for hex colors that are not 3 or 6 digits.
var ErrInvalidFormat = errors.New("invalid hex color")

// luminanceThreshold separates light from dark colors in black/white mode.
const luminanceThreshold = 186

// expand returns the 6-digit form of a 3- or 6-digit hex color, with or
// without the leading '#'.
func expand(hex string) (string, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return "", fmt.Errorf("%q: %w", hex, ErrInvalidFormat)
	}
	return "#" + h, nil
}

func parseHex(hex string) (colorful.Color, error) {
	h, err := expand(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", hex, ErrInvalidFormat)
	}
	return c, nil
}

// Invert returns the inverse of a 3- or 6-digit hex color as "#rrggbb".
// With bw set it instead returns "#000000" for light colors and "#FFFFFF"
// for dark ones. Other lengths return an error wrapping ErrInvalidFormat.
func Invert(hex string, bw bool) (string, error) {
	c, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	if bw {
		if 0.299*float64(r)+0.587*float64(g)+0.114*float64(b) > luminanceThreshold {
			return "#000000", nil
		}
		return "#FFFFFF", nil
	}
	inv := colorful.Color{
		R: float64(255-r) / 255,
		G: float64(255-g) / 255,
		B: float64(255-b) / 255,
	}
	return inv.Hex(), nil
}

// IsValid reports whether s is a hex color or a CSS color name.
func IsValid(s string) bool {
	if s == "" || s == "none" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		_, err := parseHex(s)
		return err == nil
	}
	_, ok := colornames.Map[strings.ToLower(s)]
	return ok
}

// Random returns a random opaque color as "#RRGGBB".
func Random() string {
	return fmt.Sprintf("#%06X", rand.IntN(0x1000000))
}

// Parse converts a hex color or CSS color name to an RGBA value.
func Parse(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
}
