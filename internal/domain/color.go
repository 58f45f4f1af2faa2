package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Color is a liquid colour. Empty is only used for display and serialization.
type Color uint8

const (
	Empty Color = iota
	Blue
	Red
	Gray
	Orange
	Brown
	Yellow
	Green
	Magenta
	Lime
	Teal
	Purple
	LightBlue
	Peach
	Olive
)

var ErrUnknownColor = errors.New("unknown color")

// colorInfo is the display and wire mapping for one colour.
type colorInfo struct {
	name string
	tag  string
	code byte
	hex  string
}

var colorTable = map[Color]colorInfo{
	Empty:     {"empty", "--", 0, "#FFFFFF"},
	Blue:      {"blue", "BL", 1, "#000080"},
	Red:       {"red", "RE", 2, "#FB0606"},
	Gray:      {"gray", "GY", 3, "#808080"},
	Orange:    {"orange", "OR", 4, "#F08000"},
	Brown:     {"brown", "BR", 5, "#7B2525"},
	Yellow:    {"yellow", "YE", 6, "#F0F000"},
	Green:     {"green", "GR", 7, "#008000"},
	Magenta:   {"magenta", "MA", 8, "#7F1894"},
	Lime:      {"lime", "LI", 9, "#7AA402"},
	Teal:      {"teal", "TE", 10, "#55B08D"},
	Purple:    {"purple", "PU", 11, "#AB64D4"},
	LightBlue: {"lightblue", "LB", 12, "#2688AB"},
	Peach:     {"peach", "PE", 13, "#CB9486"},
	Olive:     {"olive", "OL", 14, "#194E24"},
}

// Palette lists the playable colours in serialization-code order.
var Palette = []Color{Blue, Red, Gray, Orange, Brown, Yellow, Green, Magenta, Lime, Teal, Purple, LightBlue, Peach, Olive}

func (c Color) valid() bool {
	_, ok := colorTable[c]
	return ok && c != Empty
}

func (c Color) String() string {
	if info, ok := colorTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Tag is the two letter label used by text renderings.
func (c Color) Tag() string {
	if info, ok := colorTable[c]; ok {
		return info.tag
	}
	return "??"
}

// Code is the stable byte written by Board.Bottles.
func (c Color) Code() byte { return colorTable[c].code }

// Hex is the display colour used by terminal renderers.
func (c Color) Hex() string { return colorTable[c].hex }

// ParseColor resolves a colour name, ignoring case, spaces, dashes and underscores.
func ParseColor(s string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	for _, c := range Palette {
		if colorTable[c].name == norm {
			return c, nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// ColorFromCode is the inverse of Code.
func ColorFromCode(code byte) (Color, error) {
	for c, info := range colorTable {
		if info.code == code {
			return c, nil
		}
	}
	return Empty, fmt.Errorf("%w: code %d", ErrUnknownColor, code)
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
