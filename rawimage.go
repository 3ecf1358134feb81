package rawcolor

// RawImage re-exposes a host pixel buffer in the legacy convention.
type RawImage struct {
	img Image
}

// WrapImage builds the raw facade over a host image.
func WrapImage(img Image) *RawImage {
	return &RawImage{img: img}
}

// Image returns the wrapped host image.
func (r *RawImage) Image() Image {
	return r.img
}

// GetPixel returns the color at (x, y) in the legacy range. Coordinate
// validation is the host's; out-of-range behavior is whatever the host
// does.
func (r *RawImage) GetPixel(x, y int) Legacy {
	return r.img.GetPixel(x, y).Legacy()
}

// SetPixel replaces the color at (x, y) with a legacy-range color.
func (r *RawImage) SetPixel(x, y int, l Legacy) {
	r.img.SetPixel(x, y, l.Normalized())
}

// MapPixel invokes fn for every pixel with legacy-range channels and
// stores its result back. The host supplies normalized channels, so every
// pixel pays two conversions: host to legacy before fn, legacy back to
// normalized after. For large images prefer working in the host's range
// directly.
func (r *RawImage) MapPixel(fn func(x, y int, l Legacy) Legacy) {
	r.img.MapPixel(func(x, y int, c Color) Color {
		return fn(x, y, c.Legacy()).Normalized()
	})
}
