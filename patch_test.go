package rawcolor

import (
	"errors"
	"testing"
)

// resetPatchState clears the process-wide binding between tests. The
// public API is deliberately one-way; tests reach behind it.
func resetPatchState() {
	bindingPtr.Store(nil)
}

func TestPatchWithoutHost(t *testing.T) {
	resetPatchState()

	if _, err := Patch(); !errors.Is(err, ErrNoHost) {
		t.Fatalf("Patch() error = %v, want ErrNoHost", err)
	}
	if Patched() {
		t.Error("Patched() = true after failed patch")
	}
}

func TestModuleFunctionsBeforePatch(t *testing.T) {
	resetPatchState()
	host := NewSoftwareHost()
	RegisterHost(host)

	// Channels pass through in the host's normalized range.
	SetColor(Channels(1, 0.5, 0))
	if got := host.GetColor(); got != RGB(1, 0.5, 0) {
		t.Errorf("host color = %+v", got)
	}

	got := GetColor()
	if got.Encoding() != Container {
		t.Errorf("GetColor encoding = %v", got.Encoding())
	}
	if c := got.AsColor(); c != RGB(1, 0.5, 0) {
		t.Errorf("GetColor = %+v", c)
	}
}

func TestPatchSwitchesRange(t *testing.T) {
	resetPatchState()
	host := NewSoftwareHost()
	RegisterHost(host)

	gfx, err := Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !Patched() {
		t.Fatal("Patched() = false after patch")
	}

	// The same module-level name now reads channels in the legacy range.
	SetColor(Channels(255, 0, 0))
	if got := host.GetColor(); got != RGB(1, 0, 0) {
		t.Errorf("host color = %+v", got)
	}
	if got := GetColor().AsLegacy(); got != RGB255(255, 0, 0) {
		t.Errorf("GetColor = %+v", got)
	}

	// And behaves identically to the facade it returned.
	gfx.SetColor(Channels(0, 128, 255))
	viaFacade := gfx.GetColor()
	SetColor(Channels(0, 128, 255))
	viaModule := GetColor().AsLegacy()
	if viaFacade != viaModule {
		t.Errorf("facade %+v != module %+v", viaFacade, viaModule)
	}
}

func TestPatchTwiceIsNoOp(t *testing.T) {
	resetPatchState()
	RegisterHost(NewSoftwareHost())

	first, err := Patch()
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	second, err := Patch()
	if err != nil {
		t.Fatalf("second Patch: %v", err)
	}
	if first != second {
		t.Error("repeated Patch returned a different facade")
	}
}

func TestPatchedClearAndMask(t *testing.T) {
	resetPatchState()
	host := NewSoftwareHost()
	RegisterHost(host)
	if _, err := Patch(); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	SetColorMask(ChannelsAlpha(255, 255, 0, 255))
	if got := host.GetColorMask(); got != RGBA(1, 1, 0, 1) {
		t.Errorf("mask = %+v", got)
	}

	// Boolean clear arguments still bypass conversion after the patch.
	Clear(ClearFlag(true))
	got := host.LastClear()
	if len(got) != 1 || got[0].Flag() != true {
		t.Errorf("host received %+v", got)
	}
}

func TestRegisterHostAfterPatch(t *testing.T) {
	resetPatchState()
	RegisterHost(NewSoftwareHost())
	if _, err := Patch(); err != nil {
		t.Fatalf("Patch: %v", err)
	}

	// Swapping hosts keeps the patch applied; the lifecycle stays one-way.
	replacement := NewSoftwareHost()
	RegisterHost(replacement)
	if !Patched() {
		t.Fatal("patch lost on host replacement")
	}
	SetColor(Channels(255, 255, 255))
	if got := replacement.GetColor(); got != RGB(1, 1, 1) {
		t.Errorf("replacement host color = %+v", got)
	}
}

func TestBackgroundThroughModuleAPI(t *testing.T) {
	resetPatchState()
	host := NewSoftwareHost()
	RegisterHost(host)

	SetBackgroundColor(ChannelsAlpha(0, 0.25, 0.5, 1))
	if got := GetBackgroundColor().AsColor(); got != RGBA(0, 0.25, 0.5, 1) {
		t.Errorf("background = %+v", got)
	}

	if _, err := Patch(); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	SetBackgroundColor(ChannelsAlpha(0, 64, 128, 255))
	if got := GetBackgroundColor().AsLegacy(); got != RGBA255(0, 64, 128, 255) {
		t.Errorf("background after patch = %+v", got)
	}
}
