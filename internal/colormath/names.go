package colormath

import (
	"strings"

	"golang.org/x/image/colornames"
)

// transparent is the one named color absent from the CSS table.
const transparent = "transparent"

var namesByColor map[Color]string

func init() {
	namesByColor = make(map[Color]string, len(colornames.Names))
	// colornames.Names is sorted, so aliases (aqua/cyan, gray/grey) resolve to the first spelling.
	for _, name := range colornames.Names {
		c := FromColor(colornames.Map[name])
		if _, ok := namesByColor[c]; !ok {
			namesByColor[c] = name
		}
	}
}

// Named looks up a CSS/SVG color name, ignoring case.
func Named(name string) (Color, bool) {
	key := strings.ToLower(name)
	if key == transparent {
		return ARGB(0, 255, 255, 255), true
	}
	rgba, ok := colornames.Map[key]
	if !ok {
		return Empty, false
	}
	return FromColor(rgba), true
}

// NameOf returns the lowercase name of c if it exactly matches a named color.
func NameOf(c Color) (string, bool) {
	if c == ARGB(0, 255, 255, 255) {
		return transparent, true
	}
	name, ok := namesByColor[c]
	return name, ok
}
