package retained

// LayoutSize represents a size in layout coordinates.
type LayoutSize struct {
	Width, Height float32
}

// Size is a convenience function to create a LayoutSize.
func Size(width, height float32) LayoutSize {
	return LayoutSize{Width: width, Height: height}
}

// IsEmpty returns true if the size encloses no area.
func (s LayoutSize) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
