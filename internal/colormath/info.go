package colormath

// Info describes a color in every form the tools report.
type Info struct {
	Hex        string `json:"hex"`            // "#RRGGBB" (alpha excluded)
	HexARGB    string `json:"hex_argb"`       // "#AARRGGBB"
	Text       string `json:"text"`           // "r,g,b,a"
	Name       string `json:"name,omitempty"` // Named color, when one matches exactly
	RGBA       Color  `json:"rgba"`
	Brightness int    `json:"brightness"` // PerceivedBrightness
	Luminosity int    `json:"luminosity"` // 0-240
	TextColor  string `json:"text_color"` // Hex of VisibleTextColor
	Empty      bool   `json:"empty,omitempty"`
}

// Describe computes the Info for c.
func Describe(c Color) Info {
	name, _ := NameOf(c)
	return Info{
		Hex:        c.Hex(),
		HexARGB:    c.HexARGB(),
		Text:       c.String(),
		Name:       name,
		RGBA:       c,
		Brightness: PerceivedBrightness(c),
		Luminosity: Luminosity(c),
		TextColor:  VisibleTextColor(c).Hex(),
		Empty:      c.IsEmpty(),
	}
}
