package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultBackground is the window background behind the card.
const DefaultBackground = "#b4ddc7"

var namedColors = map[string]color.RGBA{
	"red":   {R: 230, G: 41, B: 55, A: 255},
	"green": {R: 0, G: 158, B: 47, A: 255},
	"blue":  {R: 0, G: 121, B: 241, A: 255},
	"black": {R: 0, G: 0, B: 0, A: 255},
	"white": {R: 245, G: 245, B: 245, A: 255},
	"gray":  {R: 130, G: 130, B: 130, A: 255},
}

// ParseColor maps a color name or #rrggbb hex string to an RGBA value.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, errR := strconv.ParseUint(name[1:3], 16, 8)
		g, errG := strconv.ParseUint(name[3:5], 16, 8)
		b, errB := strconv.ParseUint(name[5:7], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}
