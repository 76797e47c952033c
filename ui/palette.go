package ui

import "image/color"

type Palette struct {
	Name  string
	Dead  color.Color
	Alive color.Color
}

var palettes = []Palette{
	{Name: "Classic", Dead: color.RGBA{0, 0, 0, 255}, Alive: color.RGBA{255, 255, 255, 255}},
	{Name: "Ocean", Dead: color.RGBA{8, 24, 58, 255}, Alive: color.RGBA{0, 200, 230, 255}},
	{Name: "Fire", Dead: color.RGBA{30, 0, 0, 255}, Alive: color.RGBA{255, 150, 0, 255}},
	{Name: "Matrix", Dead: color.RGBA{0, 0, 0, 255}, Alive: color.RGBA{0, 220, 60, 255}},
}

// PaletteNames lists the palettes in display order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// PaletteByName returns the named palette, or Classic and false if unknown.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return palettes[0], false
}

func (p Palette) cellColor(v uint8) color.Color {
	if v == 0 {
		return p.Dead
	}
	return p.Alive
}
