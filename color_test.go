package retained

import "testing"

func TestColorPremultiply(t *testing.T) {
	c := RGBA(1.0, 0.5, 0.25, 0.5)
	p := c.Premultiply()
	if p.R != 0.5 || p.G != 0.25 || p.B != 0.125 || p.A != 0.5 {
		t.Errorf("Premultiply() = %+v", p)
	}
}

func TestColorOpacity(t *testing.T) {
	if !RGB(1, 0, 0).IsOpaque() {
		t.Error("RGB should be opaque")
	}
	if RGBA(0, 0, 0, 0).IsVisible() {
		t.Error("fully transparent color should not be visible")
	}
	if !RGBA(0, 0, 0, 0.1).IsVisible() {
		t.Error("partially transparent color should be visible")
	}
}

func TestColorToGPU(t *testing.T) {
	c := RGBA(0.25, 0.5, 0.75, 1.0)
	got := c.ToGPU()
	if got.R != 0.25 || got.G != 0.5 || got.B != 0.75 || got.A != 1.0 {
		t.Errorf("ToGPU() = %+v", got)
	}
}
