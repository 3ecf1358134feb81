package rawcolor

// RawSpriteBatch re-exposes a host sprite batch's global color in the
// legacy convention. The "no color set" state is forwarded in both
// directions rather than converted from a sentinel: clearing the color
// restores the sprites' native per-vertex colors, and GetColor reports
// absence through its second result.
type RawSpriteBatch struct {
	sb SpriteBatch
}

// WrapSpriteBatch builds the raw facade over a host sprite batch.
func WrapSpriteBatch(sb SpriteBatch) *RawSpriteBatch {
	return &RawSpriteBatch{sb: sb}
}

// SpriteBatch returns the wrapped host sprite batch.
func (r *RawSpriteBatch) SpriteBatch() SpriteBatch {
	return r.sb
}

// SetColor sets the batch color from legacy-range channels.
func (r *RawSpriteBatch) SetColor(v Value) {
	r.sb.SetColor(ToNormalized(v))
}

// ClearColor removes the batch color so sprites use their native
// per-vertex colors. No conversion is involved.
func (r *RawSpriteBatch) ClearColor() {
	r.sb.ClearColor()
}

// GetColor returns the batch color in the legacy range. ok is false when
// the host reports no explicit color set.
func (r *RawSpriteBatch) GetColor() (l Legacy, ok bool) {
	c, ok := r.sb.GetColor()
	if !ok {
		return Legacy{}, false
	}
	return c.Legacy(), true
}
