package rawcolor

// RawParticleSystem re-exposes a host particle system's color sequence in
// the legacy convention.
type RawParticleSystem struct {
	ps ParticleSystem
}

// WrapParticleSystem builds the raw facade over a host particle system.
func WrapParticleSystem(ps ParticleSystem) *RawParticleSystem {
	return &RawParticleSystem{ps: ps}
}

// ParticleSystem returns the wrapped host particle system.
func (r *RawParticleSystem) ParticleSystem() ParticleSystem {
	return r.ps
}

// SetColors replaces the color sequence with legacy-range containers, each
// converted independently.
func (r *RawParticleSystem) SetColors(colors ...Legacy) {
	converted := make([]Color, len(colors))
	for i, l := range colors {
		converted[i] = l.Normalized()
	}
	r.ps.SetColors(converted...)
}

// SetColorChannels replaces the color sequence from a flat legacy-range
// channel list, consecutive groups of four forming one RGBA color. A
// trailing partial group is ignored. This is the positional counterpart of
// SetColors; a single call uses one form or the other, never a mixture.
func (r *RawParticleSystem) SetColorChannels(channels ...int) {
	converted := make([]Color, 0, len(channels)/4)
	for i := 0; i+3 < len(channels); i += 4 {
		converted = append(converted, RGBA255(
			channels[i], channels[i+1], channels[i+2], channels[i+3],
		).Normalized())
	}
	r.ps.SetColors(converted...)
}

// GetColors returns the color sequence with each container converted to
// the legacy range. The returned slice is freshly allocated.
func (r *RawParticleSystem) GetColors() []Legacy {
	colors := r.ps.GetColors()
	converted := make([]Legacy, len(colors))
	for i, c := range colors {
		converted[i] = c.Legacy()
	}
	return converted
}
