package ebitenhost

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rawcolor"
)

// Compile-time checks that the adapters satisfy the host interfaces.
var (
	_ rawcolor.Host           = (*Host)(nil)
	_ rawcolor.Image          = (*Image)(nil)
	_ rawcolor.ParticleSystem = (*ParticleSystem)(nil)
	_ rawcolor.SpriteBatch    = (*SpriteBatch)(nil)
	_ rawcolor.Shader         = (*Shader)(nil)
)

// ParticleSystem holds the color ramp for a CPU particle emitter. Ebiten
// ships no particle system; emitters built on it sample the ramp with
// ColorAt when tinting each particle.
type ParticleSystem struct {
	colors []rawcolor.Color
}

// NewParticleSystem creates an emitter ramp with no colors.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// SetColors replaces the color ramp. The arguments are copied.
func (s *ParticleSystem) SetColors(colors ...rawcolor.Color) {
	s.colors = slices.Clone(colors)
}

// GetColors returns a copy of the color ramp.
func (s *ParticleSystem) GetColors() []rawcolor.Color {
	return slices.Clone(s.colors)
}

// ColorAt samples the ramp at t in [0, 1], interpolating linearly between
// neighboring entries. An empty ramp samples as opaque white.
func (s *ParticleSystem) ColorAt(t float64) rawcolor.Color {
	switch len(s.colors) {
	case 0:
		return rawcolor.RGBA(1, 1, 1, 1)
	case 1:
		return s.colors[0]
	}
	if t <= 0 {
		return s.colors[0]
	}
	if t >= 1 {
		return s.colors[len(s.colors)-1]
	}
	f := t * float64(len(s.colors)-1)
	i := int(f)
	return lerp(s.colors[i], s.colors[i+1], f-float64(i))
}

// lerp interpolates between two ramp entries. The result carries an alpha
// channel when either endpoint does, with 1 standing in for an absent one.
func lerp(a, b rawcolor.Color, t float64) rawcolor.Color {
	aa, aok := a.Alpha()
	ba, bok := b.Alpha()
	if !aok && !bok {
		return rawcolor.RGB(
			a.R+(b.R-a.R)*t,
			a.G+(b.G-a.G)*t,
			a.B+(b.B-a.B)*t,
		)
	}
	if !aok {
		aa = 1
	}
	if !bok {
		ba = 1
	}
	return rawcolor.RGBA(
		a.R+(b.R-a.R)*t,
		a.G+(b.G-a.G)*t,
		a.B+(b.B-a.B)*t,
		aa+(ba-aa)*t,
	)
}

// SpriteBatch holds the optional global tint for a batch of sprite draws.
type SpriteBatch struct {
	color rawcolor.Color
	set   bool
}

// NewSpriteBatch creates a batch with no color set.
func NewSpriteBatch() *SpriteBatch {
	return &SpriteBatch{}
}

// SetColor sets the batch tint.
func (s *SpriteBatch) SetColor(c rawcolor.Color) {
	s.color = c
	s.set = true
}

// ClearColor removes the batch tint so sprites draw with their own colors.
func (s *SpriteBatch) ClearColor() {
	s.color = rawcolor.Color{}
	s.set = false
}

// GetColor returns the batch tint, ok false when none is set.
func (s *SpriteBatch) GetColor() (rawcolor.Color, bool) {
	return s.color, s.set
}

// Apply scales the options' color by the batch tint, if one is set.
func (s *SpriteBatch) Apply(op *ebiten.DrawImageOptions) {
	if s.set {
		scaleByColor(op, s.color)
	}
}

// Shader adapts an *ebiten.Shader for color uniform upload. Colors become
// flat vec4 float32 data in the uniform map passed to DrawRectShader;
// Ebiten validates uniform names at draw time, so SendColors itself never
// fails.
type Shader struct {
	shader   *ebiten.Shader
	uniforms map[string]any
}

// WrapShader adapts an Ebiten shader.
func WrapShader(sh *ebiten.Shader) *Shader {
	return &Shader{
		shader:   sh,
		uniforms: make(map[string]any),
	}
}

// Ebiten returns the wrapped shader.
func (s *Shader) Ebiten() *ebiten.Shader {
	return s.shader
}

// Uniforms returns the uniform map for DrawRectShaderOptions. The map is
// live: later SendColors calls update it.
func (s *Shader) Uniforms() map[string]any {
	return s.uniforms
}

// SendColors stores colors under the named uniform as a flat []float32 of
// vec4s. An absent alpha uploads as 1.
func (s *Shader) SendColors(name string, colors ...rawcolor.Color) error {
	flat := make([]float32, 0, len(colors)*4)
	for _, c := range colors {
		a, ok := c.Alpha()
		if !ok {
			a = 1
		}
		flat = append(flat, float32(c.R), float32(c.G), float32(c.B), float32(a))
	}
	s.uniforms[name] = flat
	return nil
}
