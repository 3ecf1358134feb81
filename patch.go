package rawcolor

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoHost indicates that Patch or a module-level color function was used
// before RegisterHost installed an engine host.
var ErrNoHost = errors.New("rawcolor: no host registered")

// binding routes the module-level color functions to the registered host.
// The native binding passes channel values through in the host's
// normalized range; the raw binding, installed by Patch, converts them
// from the legacy range instead. The host reference is captured at
// registration time and never re-resolved, so repeated patching cannot
// recurse into the wrappers themselves.
type binding struct {
	host Host
	raw  *RawGraphics // nil until Patch
}

var (
	patchMu    sync.Mutex
	bindingPtr atomic.Pointer[binding]
)

// RegisterHost installs the engine host behind the module-level color
// functions. Call it once at startup, before Patch and before any
// module-level call. Registering again replaces the host; an already
// applied patch stays applied over the new host.
func RegisterHost(h Host) {
	patchMu.Lock()
	defer patchMu.Unlock()

	b := &binding{host: h}
	if prev := bindingPtr.Load(); prev != nil && prev.raw != nil {
		b.raw = Wrap(h)
	}
	bindingPtr.Store(b)
	Logger().Info("host registered", "patched", b.raw != nil)
}

// Patch switches the module-level color functions from the host's
// normalized convention to the legacy [0, 255] convention, process-wide
// and one-way; there is no unpatch. The returned facade is the same raw
// surface the module-level functions now delegate to, handed back for
// callers that prefer explicit use. Calling Patch again is a no-op that
// returns the same facade.
func Patch() (*RawGraphics, error) {
	patchMu.Lock()
	defer patchMu.Unlock()

	b := bindingPtr.Load()
	if b == nil || b.host == nil {
		return nil, ErrNoHost
	}
	if b.raw != nil {
		return b.raw, nil
	}
	patched := &binding{host: b.host, raw: Wrap(b.host)}
	bindingPtr.Store(patched)
	Logger().Info("legacy color range patch applied")
	return patched.raw, nil
}

// Patched reports whether Patch has been applied.
func Patched() bool {
	b := bindingPtr.Load()
	return b != nil && b.raw != nil
}

// current returns the active binding. Using the module-level functions
// without a registered host is a programming error, reported by panic
// since there is no host to propagate an error from.
func current() *binding {
	b := bindingPtr.Load()
	if b == nil || b.host == nil {
		panic(ErrNoHost)
	}
	return b
}

// SetColor sets the drawing color. Channels are read in the normalized
// range before Patch and in the legacy range after.
func SetColor(v Value) {
	b := current()
	if b.raw != nil {
		b.raw.SetColor(v)
		return
	}
	b.host.SetColor(v.AsColor())
}

// GetColor returns the drawing color as a container-encoded value in the
// active binding's range.
func GetColor() Value {
	b := current()
	if b.raw != nil {
		return Packed255(b.raw.GetColor())
	}
	return Packed(b.host.GetColor())
}

// SetBackgroundColor sets the background color in the active binding's
// range.
func SetBackgroundColor(v Value) {
	b := current()
	if b.raw != nil {
		b.raw.SetBackgroundColor(v)
		return
	}
	b.host.SetBackgroundColor(v.AsColor())
}

// GetBackgroundColor returns the background color as a container-encoded
// value in the active binding's range.
func GetBackgroundColor() Value {
	b := current()
	if b.raw != nil {
		return Packed255(b.raw.GetBackgroundColor())
	}
	return Packed(b.host.GetBackgroundColor())
}

// SetColorMask sets the channel write mask in the active binding's range.
func SetColorMask(v Value) {
	b := current()
	if b.raw != nil {
		b.raw.SetColorMask(v)
		return
	}
	b.host.SetColorMask(v.AsColor())
}

// GetColorMask returns the channel write mask as a container-encoded value
// in the active binding's range.
func GetColorMask() Value {
	b := current()
	if b.raw != nil {
		return Packed255(b.raw.GetColorMask())
	}
	return Packed(b.host.GetColorMask())
}

// Clear clears the active render target. Color and channel arguments are
// read in the active binding's range; flags pass through either way.
func Clear(vals ...ClearValue) {
	b := current()
	if b.raw != nil {
		b.raw.Clear(vals...)
		return
	}
	b.host.Clear(vals...)
}
