package rawcolor

// RawGraphics re-exposes a Host's global color surfaces in the legacy
// [0, 255] convention. Every method converts its arguments, delegates to
// the wrapped host, and converts any result back; no validation, logging
// or retry is added on the way through.
//
// A RawGraphics is cheap and stateless beyond the host reference. Programs
// that prefer transparent substitution over an explicit facade can use
// RegisterHost and Patch instead.
type RawGraphics struct {
	host Host
}

// Wrap builds the raw facade over a host.
func Wrap(h Host) *RawGraphics {
	return &RawGraphics{host: h}
}

// Host returns the wrapped host.
func (g *RawGraphics) Host() Host {
	return g.host
}

// SetColor sets the drawing color from legacy-range channels, in either
// encoding.
func (g *RawGraphics) SetColor(v Value) {
	g.host.SetColor(ToNormalized(v))
}

// GetColor returns the drawing color in the legacy range.
func (g *RawGraphics) GetColor() Legacy {
	return g.host.GetColor().Legacy()
}

// SetBackgroundColor sets the background color from legacy-range channels.
func (g *RawGraphics) SetBackgroundColor(v Value) {
	g.host.SetBackgroundColor(ToNormalized(v))
}

// GetBackgroundColor returns the background color in the legacy range.
func (g *RawGraphics) GetBackgroundColor() Legacy {
	return g.host.GetBackgroundColor().Legacy()
}

// SetColorMask sets the channel write mask from legacy-range values. Mask
// values are numeric and travel through the same conversion as colors.
func (g *RawGraphics) SetColorMask(v Value) {
	g.host.SetColorMask(ToNormalized(v))
}

// GetColorMask returns the channel write mask in the legacy range.
func (g *RawGraphics) GetColorMask() Legacy {
	return g.host.GetColorMask().Legacy()
}

// Clear clears the active render target. Color and bare-channel arguments
// are given in the legacy range and converted; boolean flags are forwarded
// exactly as supplied. A call with no arguments, or whose first argument
// is a flag, is forwarded untouched so the host's flag-clearing call form
// is preserved.
func (g *RawGraphics) Clear(vals ...ClearValue) {
	if len(vals) == 0 || vals[0].Kind() == ClearKindFlag {
		g.host.Clear(vals...)
		return
	}
	converted := make([]ClearValue, len(vals))
	for i, v := range vals {
		converted[i] = convertClearValue(v)
	}
	g.host.Clear(converted...)
}

// convertClearValue converts one legacy-range Clear argument to the
// normalized range. Flags pass through unchanged.
func convertClearValue(v ClearValue) ClearValue {
	switch v.Kind() {
	case ClearKindColor:
		c := v.Color()
		if a, ok := c.Alpha(); ok {
			return ClearColor(RGBA(c.R/255, c.G/255, c.B/255, a/255))
		}
		return ClearColor(RGB(c.R/255, c.G/255, c.B/255))
	case ClearKindChannel:
		return ClearChannel(v.Channel() / 255)
	}
	return v
}
