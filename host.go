package rawcolor

// Host is the engine color API being wrapped, in its native normalized
// convention. The shim never implements rendering itself; every raw entry
// point converts at the boundary and delegates to one of these methods.
//
// Implementations are provided by engine adapters (see ebitenhost) and by
// the in-memory SoftwareHost.
type Host interface {
	// SetColor sets the global drawing color.
	SetColor(c Color)

	// GetColor returns the global drawing color.
	GetColor() Color

	// SetBackgroundColor sets the background color used when clearing.
	SetBackgroundColor(c Color)

	// GetBackgroundColor returns the background color.
	GetBackgroundColor() Color

	// SetColorMask sets the per-channel write mask. Mask values travel
	// through the same numeric conversion as colors.
	SetColorMask(c Color)

	// GetColorMask returns the per-channel write mask.
	GetColorMask() Color

	// Clear clears the active render target. With no arguments the
	// background color is used; otherwise each argument clears one
	// buffer, boolean flags addressing the non-color buffers.
	Clear(vals ...ClearValue)
}

// Image is a host pixel buffer with per-pixel access in the normalized
// convention.
type Image interface {
	// GetPixel returns the color at (x, y).
	GetPixel(x, y int) Color

	// SetPixel replaces the color at (x, y).
	SetPixel(x, y int, c Color)

	// MapPixel invokes fn for every pixel and stores its result back.
	MapPixel(fn func(x, y int, c Color) Color)
}

// ParticleSystem is a host particle emitter whose particles fade across a
// sequence of colors.
type ParticleSystem interface {
	// SetColors replaces the color sequence.
	SetColors(colors ...Color)

	// GetColors returns the color sequence.
	GetColors() []Color
}

// SpriteBatch is a host sprite batch with an optional global color. When
// no color is set, sprites use their native per-vertex color.
type SpriteBatch interface {
	// SetColor sets the global batch color.
	SetColor(c Color)

	// ClearColor removes the global batch color.
	ClearColor()

	// GetColor returns the global batch color. ok is false when no color
	// is set.
	GetColor() (c Color, ok bool)
}

// Shader is a host shader accepting color uniform uploads.
type Shader interface {
	// SendColors uploads colors to the named uniform, one per array
	// element. The host validates the uniform name.
	SendColors(name string, colors ...Color) error
}

// ClearKind discriminates the forms a Clear argument can take.
type ClearKind uint8

const (
	// ClearKindColor is a color container argument.
	ClearKindColor ClearKind = iota

	// ClearKindChannel is a bare numeric channel argument.
	ClearKindChannel

	// ClearKindFlag is a boolean flag addressing a non-color buffer.
	ClearKindFlag
)

// ClearValue is one argument to Clear: a color container, a bare numeric
// channel, or a boolean buffer flag. Flags are never range-converted.
type ClearValue struct {
	kind ClearKind
	c    Color
	n    float64
	b    bool
}

// ClearColor wraps a color container as a Clear argument.
func ClearColor(c Color) ClearValue {
	return ClearValue{kind: ClearKindColor, c: c}
}

// ClearChannel wraps a bare numeric channel as a Clear argument.
func ClearChannel(n float64) ClearValue {
	return ClearValue{kind: ClearKindChannel, n: n}
}

// ClearFlag wraps a boolean buffer flag as a Clear argument.
func ClearFlag(b bool) ClearValue {
	return ClearValue{kind: ClearKindFlag, b: b}
}

// Kind returns the argument form.
func (v ClearValue) Kind() ClearKind {
	return v.kind
}

// Color returns the color container. Valid only for ClearKindColor.
func (v ClearValue) Color() Color {
	return v.c
}

// Channel returns the bare channel value. Valid only for ClearKindChannel.
func (v ClearValue) Channel() float64 {
	return v.n
}

// Flag returns the boolean flag. Valid only for ClearKindFlag.
func (v ClearValue) Flag() bool {
	return v.b
}
