// pkg/render/color.go
package render

import "image/color"

// HUDColors holds the colors used by the text overlays.
type HUDColors struct {
	Text   color.RGBA
	Shadow color.RGBA
}

// NewHUDColors derives the shadow from the text color.
func NewHUDColors(text color.RGBA) HUDColors {
	return HUDColors{Text: text, Shadow: DarkenColor(text)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ToRGBA converts any color to 8-bit RGBA, as raylib and friends expect.
func ToRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
