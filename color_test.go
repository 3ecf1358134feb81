package rawcolor

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that both containers implement color.Color.
var (
	_ color.Color = Color{}
	_ color.Color = Legacy{}
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func TestChannelToLegacy(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{name: "zero", input: 0, want: 0},
		{name: "one", input: 1, want: 255},
		{name: "tie rounds up", input: 0.5, want: 128},
		{name: "just below the tie", input: 127.0 / 255, want: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChannelToLegacy(tt.input); got != tt.want {
				t.Errorf("ChannelToLegacy(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestChannelRoundTrip(t *testing.T) {
	for n := 0; n <= 255; n++ {
		if got := ChannelToLegacy(ChannelToNormalized(n)); got != n {
			t.Errorf("round trip of %d = %d", n, got)
		}
	}
}

func TestColorLegacy(t *testing.T) {
	tests := []struct {
		name  string
		input Color
		want  Legacy
	}{
		{
			name:  "without alpha",
			input: RGB(1, 0.5, 0),
			want:  RGB255(255, 128, 0),
		},
		{
			name:  "with alpha",
			input: RGBA(1, 0.5, 0, 1),
			want:  RGBA255(255, 128, 0, 255),
		},
		{
			name:  "black without alpha",
			input: RGB(0, 0, 0),
			want:  RGB255(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Legacy()
			if got != tt.want {
				t.Errorf("Legacy() = %+v, want %+v", got, tt.want)
			}
			if got.HasAlpha() != tt.input.HasAlpha() {
				t.Errorf("alpha presence changed: in %v, out %v", tt.input.HasAlpha(), got.HasAlpha())
			}
		})
	}
}

func TestLegacyNormalized(t *testing.T) {
	got := RGBA255(255, 0, 128, 255).Normalized()
	if absDiff(got.R, 1) > 1e-12 || absDiff(got.G, 0) > 1e-12 || absDiff(got.B, 0.50196) > 0.0001 {
		t.Errorf("Normalized() = %+v", got)
	}
	a, ok := got.Alpha()
	if !ok || absDiff(a, 1) > 1e-12 {
		t.Errorf("alpha = (%v, %v), want (1, true)", a, ok)
	}

	noAlpha := RGB255(10, 20, 30).Normalized()
	if noAlpha.HasAlpha() {
		t.Error("alpha appeared out of nowhere")
	}
}

func TestColorAlphaAbsence(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.HasAlpha() {
		t.Fatal("RGB must not carry alpha")
	}
	if _, ok := c.Alpha(); ok {
		t.Error("Alpha() reported a value for an absent channel")
	}
	// Absent in, absent out: through both directions.
	if c.Legacy().HasAlpha() || c.Legacy().Normalized().HasAlpha() {
		t.Error("alpha presence not preserved through conversion")
	}
}

func TestChannelsUnpack(t *testing.T) {
	r, g, b, a, ok := RGBA(0.1, 0.2, 0.3, 0.4).Channels()
	if r != 0.1 || g != 0.2 || b != 0.3 || a != 0.4 || !ok {
		t.Errorf("Channels() = (%v, %v, %v, %v, %v)", r, g, b, a, ok)
	}

	lr, lg, lb, _, lok := RGB255(9, 8, 7).Channels()
	if lr != 9 || lg != 8 || lb != 7 || lok {
		t.Errorf("Channels() = (%d, %d, %d, _, %v)", lr, lg, lb, lok)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 128, A: 255})
	if absDiff(got.R, 1) > 0.001 || absDiff(got.G, 0) > 0.001 || absDiff(got.B, 0.502) > 0.001 {
		t.Errorf("FromColor = %+v", got)
	}
	if !got.HasAlpha() {
		t.Error("FromColor must always carry alpha")
	}
}

func TestColorRGBAInterop(t *testing.T) {
	r, g, b, a := RGBA(1, 0, 0, 1).RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}

	// Absent alpha reads as opaque through the interop interface only.
	_, _, _, a = RGB(0, 1, 0).RGBA()
	if a != 65535 {
		t.Errorf("interop alpha = %d, want 65535", a)
	}
}

func TestConversionDoesNotMutate(t *testing.T) {
	in := RGBA(0.25, 0.5, 0.75, 1)
	before := in
	_ = in.Legacy()
	if in != before {
		t.Errorf("input mutated: %+v -> %+v", before, in)
	}
}
