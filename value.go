package rawcolor

import "math"

// Encoding discriminates the two forms a color argument can take at an API
// boundary: separate channel arguments, or a single container value.
type Encoding uint8

const (
	// Positional marks channels supplied as separate numeric arguments.
	Positional Encoding = iota

	// Container marks channels supplied as a single container value.
	Container
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case Positional:
		return "positional"
	case Container:
		return "container"
	}
	return "unknown"
}

// Value is a color argument together with the encoding it was supplied in.
// Channels are stored as float64 regardless of range: the consuming
// function decides whether they are read as normalized or legacy values,
// mirroring the untyped numeric arguments of the wrapped API. The encoding
// is checked exactly once, by the conversion that consumes the value.
type Value struct {
	enc      Encoding
	r, g, b  float64
	a        float64
	hasAlpha bool
}

// Channels builds a positional-encoded value without alpha.
func Channels(r, g, b float64) Value {
	return Value{enc: Positional, r: r, g: g, b: b}
}

// ChannelsAlpha builds a positional-encoded value with alpha.
func ChannelsAlpha(r, g, b, a float64) Value {
	return Value{enc: Positional, r: r, g: g, b: b, a: a, hasAlpha: true}
}

// Packed builds a container-encoded value from a normalized color.
func Packed(c Color) Value {
	return Value{enc: Container, r: c.R, g: c.G, b: c.B, a: c.A, hasAlpha: c.hasAlpha}
}

// Packed255 builds a container-encoded value from a legacy color.
func Packed255(l Legacy) Value {
	return Value{
		enc: Container,
		r:   float64(l.R), g: float64(l.G), b: float64(l.B), a: float64(l.A),
		hasAlpha: l.hasAlpha,
	}
}

// Encoding returns the encoding the value was supplied in.
func (v Value) Encoding() Encoding {
	return v.enc
}

// HasAlpha reports whether the value carries an alpha channel.
func (v Value) HasAlpha() bool {
	return v.hasAlpha
}

// ToLegacy reads the value's channels as normalized and converts each to
// the legacy range. Both encodings produce identical results for identical
// channel values.
func ToLegacy(v Value) Legacy {
	if !v.hasAlpha {
		return RGB255(ChannelToLegacy(v.r), ChannelToLegacy(v.g), ChannelToLegacy(v.b))
	}
	return RGBA255(ChannelToLegacy(v.r), ChannelToLegacy(v.g), ChannelToLegacy(v.b), ChannelToLegacy(v.a))
}

// ToNormalized reads the value's channels as legacy integers and converts
// each to the normalized range.
func ToNormalized(v Value) Color {
	if !v.hasAlpha {
		return RGB(v.r/255, v.g/255, v.b/255)
	}
	return RGBA(v.r/255, v.g/255, v.b/255, v.a/255)
}

// AsColor reads the value's channels as already normalized, without any
// range conversion. This is how the module-level getters are read before
// Patch is applied.
func (v Value) AsColor() Color {
	if !v.hasAlpha {
		return RGB(v.r, v.g, v.b)
	}
	return RGBA(v.r, v.g, v.b, v.a)
}

// AsLegacy reads the value's channels as already legacy, without any range
// conversion, rounding each to the nearest integer. This is how the
// module-level getters are read after Patch is applied.
func (v Value) AsLegacy() Legacy {
	if !v.hasAlpha {
		return RGB255(roundChannel(v.r), roundChannel(v.g), roundChannel(v.b))
	}
	return RGBA255(roundChannel(v.r), roundChannel(v.g), roundChannel(v.b), roundChannel(v.a))
}

// roundChannel rounds a channel to the nearest integer, ties up.
func roundChannel(c float64) int {
	return int(math.Floor(c + 0.5))
}
