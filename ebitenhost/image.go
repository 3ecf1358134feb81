package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rawcolor"
)

// Image adapts an *ebiten.Image to rawcolor.Image.
//
// Per-pixel access on an Ebiten image synchronizes with the GPU, so
// GetPixel, SetPixel and especially MapPixel are slow paths meant for
// setup and tooling, not the frame loop.
type Image struct {
	img *ebiten.Image
}

// WrapImage adapts an Ebiten image.
func WrapImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// Ebiten returns the wrapped image.
func (p *Image) Ebiten() *ebiten.Image {
	return p.img
}

// GetPixel returns the color at (x, y).
func (p *Image) GetPixel(x, y int) rawcolor.Color {
	return rawcolor.FromColor(p.img.At(x, y))
}

// SetPixel replaces the color at (x, y).
func (p *Image) SetPixel(x, y int, c rawcolor.Color) {
	p.img.Set(x, y, c)
}

// MapPixel invokes fn for every pixel and stores its result back, top-left
// to bottom-right over the image's bounds.
func (p *Image) MapPixel(fn func(x, y int, c rawcolor.Color) rawcolor.Color) {
	b := p.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.img.Set(x, y, fn(x, y, rawcolor.FromColor(p.img.At(x, y))))
		}
	}
}
