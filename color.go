package rawcolor

import (
	"image/color"
	"math"
)

// Color is a color in the host's normalized convention: each channel in
// the range [0, 1]. Alpha is optional; a Color built with RGB carries no
// alpha and reports none through every conversion.
type Color struct {
	R, G, B float64
	A       float64

	hasAlpha bool
}

// RGB creates a normalized color without an alpha channel.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA creates a normalized color with an alpha channel.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a, hasAlpha: true}
}

// HasAlpha reports whether the color carries an alpha channel.
func (c Color) HasAlpha() bool {
	return c.hasAlpha
}

// Alpha returns the alpha channel and whether it is present.
func (c Color) Alpha() (float64, bool) {
	return c.A, c.hasAlpha
}

// Channels unpacks the color into positional form. When hasAlpha is false
// the a result is zero and must be ignored.
func (c Color) Channels() (r, g, b, a float64, hasAlpha bool) {
	return c.R, c.G, c.B, c.A, c.hasAlpha
}

// Legacy converts each present channel to the legacy [0, 255] range.
// Alpha presence is preserved.
func (c Color) Legacy() Legacy {
	if !c.hasAlpha {
		return RGB255(ChannelToLegacy(c.R), ChannelToLegacy(c.G), ChannelToLegacy(c.B))
	}
	return RGBA255(ChannelToLegacy(c.R), ChannelToLegacy(c.G), ChannelToLegacy(c.B), ChannelToLegacy(c.A))
}

// RGBA implements the color.Color interface, returning alpha-premultiplied
// 16-bit channels. A color without an alpha channel is treated as opaque
// here; this is interop only, conversions in this package never default an
// absent alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	af := 1.0
	if c.hasAlpha {
		af = c.A
	}
	r = uint32(math.Floor(c.R*af*65535 + 0.5))
	g = uint32(math.Floor(c.G*af*65535 + 0.5))
	b = uint32(math.Floor(c.B*af*65535 + 0.5))
	a = uint32(math.Floor(af*65535 + 0.5))
	return
}

// FromColor converts a standard color.Color to a normalized Color.
// The result always carries an alpha channel, since color.Color has one.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return RGBA(
		float64(r)/65535,
		float64(g)/65535,
		float64(b)/65535,
		float64(a)/65535,
	)
}

// Legacy is a color in the legacy convention: each channel an integer in
// the range [0, 255]. Alpha is optional, as in Color.
type Legacy struct {
	R, G, B int
	A       int

	hasAlpha bool
}

// RGB255 creates a legacy color without an alpha channel.
func RGB255(r, g, b int) Legacy {
	return Legacy{R: r, G: g, B: b}
}

// RGBA255 creates a legacy color with an alpha channel.
func RGBA255(r, g, b, a int) Legacy {
	return Legacy{R: r, G: g, B: b, A: a, hasAlpha: true}
}

// HasAlpha reports whether the color carries an alpha channel.
func (l Legacy) HasAlpha() bool {
	return l.hasAlpha
}

// Alpha returns the alpha channel and whether it is present.
func (l Legacy) Alpha() (int, bool) {
	return l.A, l.hasAlpha
}

// Channels unpacks the color into positional form. When hasAlpha is false
// the a result is zero and must be ignored.
func (l Legacy) Channels() (r, g, b, a int, hasAlpha bool) {
	return l.R, l.G, l.B, l.A, l.hasAlpha
}

// Normalized converts each present channel to the normalized [0, 1] range.
// Alpha presence is preserved.
func (l Legacy) Normalized() Color {
	if !l.hasAlpha {
		return RGB(ChannelToNormalized(l.R), ChannelToNormalized(l.G), ChannelToNormalized(l.B))
	}
	return RGBA(ChannelToNormalized(l.R), ChannelToNormalized(l.G), ChannelToNormalized(l.B), ChannelToNormalized(l.A))
}

// RGBA implements the color.Color interface. As with Color.RGBA, an absent
// alpha is treated as opaque for interop only.
func (l Legacy) RGBA() (r, g, b, a uint32) {
	return l.Normalized().RGBA()
}

// ChannelToLegacy converts a single normalized channel to the legacy range.
// Rounds to the nearest integer, ties up.
func ChannelToLegacy(c float64) int {
	return int(math.Floor(c*255 + 0.5))
}

// ChannelToNormalized converts a single legacy channel to the normalized
// range.
func ChannelToNormalized(c int) float64 {
	return float64(c) / 255
}

// clamp255 restricts a value to the [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
