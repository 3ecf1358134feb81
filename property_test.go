package rawcolor

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_ChannelRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("legacy to normalized and back is the identity", prop.ForAll(
		func(n int) bool {
			return ChannelToLegacy(ChannelToNormalized(n)) == n
		},
		gen.IntRange(0, 255),
	))

	properties.TestingRun(t)
}

func TestProperty_ChannelPrecision(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("normalized round trip stays within half a step", prop.ForAll(
		func(f float64) bool {
			back := ChannelToNormalized(ChannelToLegacy(f))
			return math.Abs(back*255-f*255) <= 0.5+1e-9
		},
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestProperty_AlphaPresencePreserved(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("alpha presence survives every conversion", prop.ForAll(
		func(r, g, b, a float64, hasAlpha bool) bool {
			var c Color
			if hasAlpha {
				c = RGBA(r, g, b, a)
			} else {
				c = RGB(r, g, b)
			}
			l := c.Legacy()
			back := l.Normalized()
			return l.HasAlpha() == hasAlpha && back.HasAlpha() == hasAlpha
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperty_EncodingEquivalence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("both encodings convert to the same legacy color", prop.ForAll(
		func(r, g, b, a float64) bool {
			positional := ToLegacy(ChannelsAlpha(r, g, b, a))
			container := ToLegacy(Packed(RGBA(r, g, b, a)))
			return positional == container
		},
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestProperty_RawSetGetRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("raw set then raw get returns the input color", prop.ForAll(
		func(r, g, b, a int) bool {
			gfx := Wrap(NewSoftwareHost())
			gfx.SetColor(Packed255(RGBA255(r, g, b, a)))
			return gfx.GetColor() == RGBA255(r, g, b, a)
		},
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
		gen.IntRange(0, 255),
	))

	properties.TestingRun(t)
}
