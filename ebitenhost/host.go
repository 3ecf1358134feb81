// Package ebitenhost adapts an Ebiten game to the rawcolor host
// interfaces, so programs written against the legacy 0-255 convention can
// drive Ebiten through the rawcolor facades.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rawcolor"
)

// Host carries the global color state of an Ebiten game and implements
// rawcolor.Host. Ebiten has no global drawing color of its own, so the
// host keeps the state and games consume it when building draw options
// (see ApplyDrawColor).
type Host struct {
	drawColor  rawcolor.Color
	background rawcolor.Color
	mask       rawcolor.Color
	screen     *ebiten.Image
}

// Option configures a Host during creation.
type Option func(*Host)

// WithBackground sets the initial background color.
func WithBackground(c rawcolor.Color) Option {
	return func(h *Host) {
		h.background = c
	}
}

// WithScreen sets the initial render target. Games usually call SetScreen
// each frame instead.
func WithScreen(screen *ebiten.Image) Option {
	return func(h *Host) {
		h.screen = screen
	}
}

// New creates a host with the engine defaults: opaque white drawing color
// and mask, opaque black background.
func New(opts ...Option) *Host {
	h := &Host{
		drawColor:  rawcolor.RGBA(1, 1, 1, 1),
		background: rawcolor.RGBA(0, 0, 0, 1),
		mask:       rawcolor.RGBA(1, 1, 1, 1),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetScreen points the host at the current frame's render target. Call it
// at the top of the game's Draw method.
func (h *Host) SetScreen(screen *ebiten.Image) {
	h.screen = screen
}

// SetColor sets the drawing color.
func (h *Host) SetColor(c rawcolor.Color) { h.drawColor = c }

// GetColor returns the drawing color.
func (h *Host) GetColor() rawcolor.Color { return h.drawColor }

// SetBackgroundColor sets the background color used by Clear.
func (h *Host) SetBackgroundColor(c rawcolor.Color) { h.background = c }

// GetBackgroundColor returns the background color.
func (h *Host) GetBackgroundColor() rawcolor.Color { return h.background }

// SetColorMask sets the channel write mask, applied multiplicatively by
// ApplyDrawColor.
func (h *Host) SetColorMask(c rawcolor.Color) { h.mask = c }

// GetColorMask returns the channel write mask.
func (h *Host) GetColorMask() rawcolor.Color { return h.mask }

// Clear fills the current render target. With no arguments the background
// color is used. A color argument, or up to four leading bare-channel
// arguments, selects the fill color instead. Boolean flags address depth
// and stencil buffers, which Ebiten does not expose; they are accepted and
// ignored.
func (h *Host) Clear(vals ...rawcolor.ClearValue) {
	if h.screen == nil {
		return
	}
	h.screen.Fill(clearFill(h.background, vals))
}

// ApplyDrawColor scales the options' color by the host's drawing color
// and write mask. Games call this when building their own draw options so
// the state set through rawcolor takes effect.
func (h *Host) ApplyDrawColor(op *ebiten.DrawImageOptions) {
	scaleByColor(op, h.drawColor)
	scaleByColor(op, h.mask)
}

// clearFill resolves the fill color for a Clear call.
func clearFill(background rawcolor.Color, vals []rawcolor.ClearValue) rawcolor.Color {
	var channels []float64
	for _, v := range vals {
		switch v.Kind() {
		case rawcolor.ClearKindColor:
			return v.Color()
		case rawcolor.ClearKindChannel:
			if len(channels) < 4 {
				channels = append(channels, v.Channel())
			}
		}
	}
	switch len(channels) {
	case 3:
		return rawcolor.RGB(channels[0], channels[1], channels[2])
	case 4:
		return rawcolor.RGBA(channels[0], channels[1], channels[2], channels[3])
	}
	return background
}

// scaleByColor multiplies the options' color scale by c. An absent alpha
// scales alpha by 1.
func scaleByColor(op *ebiten.DrawImageOptions, c rawcolor.Color) {
	a, ok := c.Alpha()
	if !ok {
		a = 1
	}
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(a))
}
