package retained

import "github.com/gogpu/gputypes"

// ColorF represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is not premultiplied.
type ColorF struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: a}
}

// Premultiply returns a premultiplied color.
func (c ColorF) Premultiply() ColorF {
	return ColorF{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// IsOpaque returns true if the color is fully opaque.
func (c ColorF) IsOpaque() bool {
	return c.A >= 1.0
}

// IsVisible returns true if the color contributes any coverage.
func (c ColorF) IsVisible() bool {
	return c.A > 0
}

// ToGPU converts the color to the WebGPU clear-color shape used by
// render-pass setup in GoGPU backends.
func (c ColorF) ToGPU() gputypes.Color {
	return gputypes.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}
