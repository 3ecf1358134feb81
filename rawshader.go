package rawcolor

// RawShader re-exposes a host shader's color uniform upload in the legacy
// convention.
type RawShader struct {
	sh Shader
}

// WrapShader builds the raw facade over a host shader.
func WrapShader(sh Shader) *RawShader {
	return &RawShader{sh: sh}
}

// Shader returns the wrapped host shader.
func (r *RawShader) Shader() Shader {
	return r.sh
}

// SendColors uploads legacy-range colors to the named uniform, converting
// each container independently. The host's error, if any, is returned
// unchanged.
func (r *RawShader) SendColors(name string, colors ...Legacy) error {
	converted := make([]Color, len(colors))
	for i, l := range colors {
		converted[i] = l.Normalized()
	}
	return r.sh.SendColors(name, converted...)
}
