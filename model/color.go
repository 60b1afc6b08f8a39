package model

import "image/color"

// agePalette holds the fixed colors of counters 1 through 8
var agePalette = [...]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 0, G: 100, B: 255, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 0, B: 230, A: 255},
	{R: 0, G: 0, B: 200, A: 255},
	{R: 0, G: 0, B: 150, A: 255},
	{R: 0, G: 0, B: 100, A: 255},
}

// ColorOf maps a cell counter onto the darkening blue ramp
func ColorOf(counter uint8) color.RGBA {
	if counter >= 1 && int(counter) <= len(agePalette) {
		return agePalette[counter-1]
	}
	var blue uint8
	if counter < 100 {
		blue = 100 - counter
	}
	return color.RGBA{B: blue, A: 255}
}
