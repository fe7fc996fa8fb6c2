package model

// StandardKeys is the 24 canonical rekordbox musical keys, in the order
// rekordbox itself assigns ids 1-24. The keys table is always populated
// with exactly these rows regardless of input (spec section 4.3).
var StandardKeys = []string{
	"Cmaj", "C#maj", "Dmaj", "D#maj", "Emaj", "Fmaj",
	"F#maj", "Gmaj", "G#maj", "Amaj", "A#maj", "Bmaj",
	"Cmin", "C#min", "Dmin", "D#min", "Emin", "Fmin",
	"F#min", "Gmin", "G#min", "Amin", "A#min", "Bmin",
}

// StandardColor names one of the eight non-"no color" track color slots.
type StandardColor struct {
	ID   uint16
	Name string
}

// StandardColors is the fixed eight-entry color table plus the implicit
// id=0 "no color" entry (spec section 4.3). ColorSlot 0 on a Track means no
// color_row reference; ColorSlot 1-8 indexes into this slice at [slot-1].
var StandardColors = []StandardColor{
	{ID: 1, Name: "Pink"},
	{ID: 2, Name: "Red"},
	{ID: 3, Name: "Orange"},
	{ID: 4, Name: "Yellow"},
	{ID: 5, Name: "Green"},
	{ID: 6, Name: "Aqua"},
	{ID: 7, Name: "Blue"},
	{ID: 8, Name: "Purple"},
}

// HotCueSlotColor returns the canonical default color for hot-cue slot n
// (0-based), cycling through the eight standard slot colors as spec section
// 4.7's default_for_slot(n mod 8) describes.
func HotCueSlotColor(slot int) StandardColor {
	return StandardColors[slot%len(StandardColors)]
}

// HotCuePalette is the fixed 63-entry hot-cue color palette referenced by
// PCO2 entries (spec section 4.7 / 4.6). Only the six named anchor indices
// are given meaningful names in the spec; every other index is filled from
// an evenly spaced hue ramp (hue = index/63). The ramp is not checked
// against the anchors, so index 0x15 decodes to the same pure green as
// anchor 0x00.
//
// PCO2 itself only ever writes a ColorSlot index, never these RGB values;
// the table exists for callers that want to render or preview a track's
// cue color without reimplementing the hue ramp.
var HotCuePalette = buildHotCuePalette()

type PaletteColor struct {
	R, G, B uint8
}

func buildHotCuePalette() [63]PaletteColor {
	var p [63]PaletteColor
	anchors := map[int]PaletteColor{
		0x00: {0, 255, 0},     // Green
		0x09: {0, 255, 255},   // Cyan
		0x22: {255, 165, 0},   // Orange
		0x2A: {255, 0, 0},     // Red
		0x32: {255, 255, 0},   // Yellow
		0x3E: {160, 32, 240},  // Purple
	}
	for i := range p {
		if c, ok := anchors[i]; ok {
			p[i] = c
			continue
		}
		// Fill the gaps between anchors with a simple hue ramp.
		hue := float64(i) / float64(len(p))
		p[i] = hueToRGB(hue)
	}
	return p
}

func hueToRGB(h float64) PaletteColor {
	i := int(h * 6)
	f := h*6 - float64(i)
	q := 1 - f
	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = f, 0, 1
	case 5:
		r, g, b = 1, 0, q
	}
	return PaletteColor{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
