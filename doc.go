// Package rawcolor restores the legacy [0, 255] color convention on top of
// a graphics engine that moved to normalized [0.0, 1.0] channels.
//
// # Overview
//
// Engines in the GoGPU ecosystem express color channels as floats in
// [0, 1]. Programs written against the older integer convention can keep
// their 0-255 call sites by going through this package: every affected
// entry point has a raw counterpart that accepts and returns legacy-range
// values, converting transparently on the way to and from the host.
//
// # Quick Start
//
//	import "github.com/gogpu/rawcolor"
//
//	// Wrap an engine host explicitly:
//	gfx := rawcolor.Wrap(host)
//	gfx.SetColor(rawcolor.Channels(255, 0, 0))
//	c := gfx.GetColor() // rawcolor.Legacy{R: 255, ...}
//
//	// Or patch the module-level API, process-wide and one-way:
//	rawcolor.RegisterHost(host)
//	rawcolor.Patch()
//	rawcolor.SetColor(rawcolor.Channels(255, 0, 0))
//
// # Architecture
//
// The package has three layers:
//   - Conversion library: Color and Legacy containers, single-channel
//     conversions, and the encoding-tagged Value form.
//   - Raw facades: RawGraphics plus per-object wrappers (RawImage,
//     RawParticleSystem, RawSpriteBatch, RawShader) over the Host
//     interfaces.
//   - Patch mechanism: RegisterHost and Patch, which switch the
//     module-level functions from the normalized to the legacy range.
//
// # Conventions
//
// Alpha is optional everywhere: a color built without an alpha channel
// stays without one through every conversion, never defaulted. Conversions
// are pure and allocate fresh containers. Legacy values round to the
// nearest integer with ties up, so legacy -> normalized -> legacy is the
// identity on [0, 255].
//
// Hosts are provided by engine adapters; SoftwareHost in this package is
// an in-memory reference used by the tests, and the ebitenhost subpackage
// adapts an Ebiten game.
package rawcolor
