package rawcolor

import (
	"fmt"
	"image"
	"slices"
)

// Compile-time checks that the software types satisfy the host interfaces.
var (
	_ Host           = (*SoftwareHost)(nil)
	_ Image          = (*SoftwareImage)(nil)
	_ ParticleSystem = (*SoftwareParticleSystem)(nil)
	_ SpriteBatch    = (*SoftwareSpriteBatch)(nil)
	_ Shader         = (*SoftwareShader)(nil)
)

// SoftwareHost is an in-memory implementation of Host. It carries the
// global color state and records Clear calls so callers (and the test
// suite) can observe exactly what reached the host. It performs no
// rendering.
type SoftwareHost struct {
	drawColor  Color
	background Color
	mask       Color
	lastClear  []ClearValue
	clearCount int
}

// NewSoftwareHost creates a host with the engine defaults: opaque white
// drawing color and mask, opaque black background.
func NewSoftwareHost() *SoftwareHost {
	return &SoftwareHost{
		drawColor:  RGBA(1, 1, 1, 1),
		background: RGBA(0, 0, 0, 1),
		mask:       RGBA(1, 1, 1, 1),
	}
}

// SetColor sets the drawing color.
func (h *SoftwareHost) SetColor(c Color) { h.drawColor = c }

// GetColor returns the drawing color.
func (h *SoftwareHost) GetColor() Color { return h.drawColor }

// SetBackgroundColor sets the background color.
func (h *SoftwareHost) SetBackgroundColor(c Color) { h.background = c }

// GetBackgroundColor returns the background color.
func (h *SoftwareHost) GetBackgroundColor() Color { return h.background }

// SetColorMask sets the channel write mask.
func (h *SoftwareHost) SetColorMask(c Color) { h.mask = c }

// GetColorMask returns the channel write mask.
func (h *SoftwareHost) GetColorMask() Color { return h.mask }

// Clear records the call. A color argument also replaces nothing: the
// host has no framebuffer of its own, targets are SoftwareImages cleared
// through their own methods.
func (h *SoftwareHost) Clear(vals ...ClearValue) {
	h.lastClear = slices.Clone(vals)
	h.clearCount++
}

// LastClear returns the arguments of the most recent Clear call exactly
// as they arrived.
func (h *SoftwareHost) LastClear() []ClearValue { return h.lastClear }

// ClearCount returns how many times Clear has been called.
func (h *SoftwareHost) ClearCount() int { return h.clearCount }

// SoftwareImage is an in-memory Image backed by an RGBA8 pixel buffer,
// 4 bytes per pixel, row by row.
type SoftwareImage struct {
	width  int
	height int
	data   []uint8
}

// NewSoftwareImage creates an image with the given dimensions, fully
// transparent.
func NewSoftwareImage(width, height int) *SoftwareImage {
	return &SoftwareImage{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the image.
func (p *SoftwareImage) Width() int { return p.width }

// Height returns the height of the image.
func (p *SoftwareImage) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *SoftwareImage) Data() []uint8 { return p.data }

// GetPixel returns the color at (x, y). Out-of-range coordinates read as
// transparent black. The result always carries an alpha channel, since
// the buffer stores one.
func (p *SoftwareImage) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGBA(0, 0, 0, 0)
	}
	i := (y*p.width + x) * 4
	return RGBA(
		float64(p.data[i+0])/255,
		float64(p.data[i+1])/255,
		float64(p.data[i+2])/255,
		float64(p.data[i+3])/255,
	)
}

// SetPixel replaces the color at (x, y). Out-of-range coordinates are
// ignored. A color without an alpha channel stores as opaque; that is
// buffer storage, not a conversion default.
func (p *SoftwareImage) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	a := 1.0
	if c.hasAlpha {
		a = c.A
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = storeChannel(c.R)
	p.data[i+1] = storeChannel(c.G)
	p.data[i+2] = storeChannel(c.B)
	p.data[i+3] = storeChannel(a)
}

// storeChannel quantizes a normalized channel for the byte buffer. Rounds
// rather than truncates so a read-back value re-stores to the same byte.
func storeChannel(c float64) uint8 {
	return uint8(clamp255(float64(ChannelToLegacy(c))))
}

// MapPixel invokes fn for every pixel and stores its result back, top-left
// to bottom-right.
func (p *SoftwareImage) MapPixel(fn func(x, y int, c Color) Color) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, fn(x, y, p.GetPixel(x, y)))
		}
	}
}

// ToImage converts the buffer to an image.RGBA.
func (p *SoftwareImage) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a SoftwareImage from a standard image.
func FromImage(img image.Image) *SoftwareImage {
	bounds := img.Bounds()
	p := NewSoftwareImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return p
}

// SoftwareParticleSystem is an in-memory ParticleSystem holding only the
// color sequence.
type SoftwareParticleSystem struct {
	colors []Color
}

// NewSoftwareParticleSystem creates an empty particle system.
func NewSoftwareParticleSystem() *SoftwareParticleSystem {
	return &SoftwareParticleSystem{}
}

// SetColors replaces the color sequence. The arguments are copied.
func (s *SoftwareParticleSystem) SetColors(colors ...Color) {
	s.colors = slices.Clone(colors)
}

// GetColors returns a copy of the color sequence.
func (s *SoftwareParticleSystem) GetColors() []Color {
	return slices.Clone(s.colors)
}

// SoftwareSpriteBatch is an in-memory SpriteBatch holding only the
// optional global color.
type SoftwareSpriteBatch struct {
	color Color
	set   bool
}

// NewSoftwareSpriteBatch creates a sprite batch with no color set.
func NewSoftwareSpriteBatch() *SoftwareSpriteBatch {
	return &SoftwareSpriteBatch{}
}

// SetColor sets the global batch color.
func (s *SoftwareSpriteBatch) SetColor(c Color) {
	s.color = c
	s.set = true
}

// ClearColor removes the global batch color.
func (s *SoftwareSpriteBatch) ClearColor() {
	s.color = Color{}
	s.set = false
}

// GetColor returns the global batch color, ok false when none is set.
func (s *SoftwareSpriteBatch) GetColor() (Color, bool) {
	return s.color, s.set
}

// SoftwareShader is an in-memory Shader with a fixed set of declared
// uniform names.
type SoftwareShader struct {
	uniforms map[string][]Color
}

// NewSoftwareShader creates a shader declaring the given uniform names.
func NewSoftwareShader(names ...string) *SoftwareShader {
	u := make(map[string][]Color, len(names))
	for _, n := range names {
		u[n] = nil
	}
	return &SoftwareShader{uniforms: u}
}

// SendColors uploads colors to the named uniform. Unknown names error,
// standing in for the device validation a real shader performs.
func (s *SoftwareShader) SendColors(name string, colors ...Color) error {
	if _, ok := s.uniforms[name]; !ok {
		return fmt.Errorf("rawcolor: unknown shader uniform %q", name)
	}
	s.uniforms[name] = slices.Clone(colors)
	return nil
}

// Uniform returns the colors last sent to the named uniform.
func (s *SoftwareShader) Uniform(name string) []Color {
	return slices.Clone(s.uniforms[name])
}
