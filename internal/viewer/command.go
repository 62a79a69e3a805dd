package viewer

import "markerview/internal/assets"

// Command is one unit of input for the loop. Input handlers only build
// commands; Viewer.Dispatch is the single place that applies them.
type Command interface {
	command()
}

// Click is a primary-button press at viewport pixel (X, Y).
type Click struct{ X, Y float32 }

// PointerMove reports the pointer position for hover feedback.
type PointerMove struct{ X, Y float32 }

// Drag rotates the orbit controls by a pointer delta in pixels.
type Drag struct{ DX, DY float32 }

// Pan slides the orbit target by a pointer delta in pixels. It is a no-op
// unless panning is enabled.
type Pan struct{ DX, DY float32 }

// Zoom carries a wheel movement; positive moves in.
type Zoom struct{ Wheel float32 }

// Resize is the new drawable size in pixels.
type Resize struct{ Width, Height int }

// AssetLoaded carries the outcome of the background model read.
type AssetLoaded struct{ Result assets.Result }

// FlyToMarker flies to the marker with the given label.
type FlyToMarker struct{ Label string }

// ResetView flies back to the starting pose.
type ResetView struct{}

// ToggleDebug shows or hides the debug overlay.
type ToggleDebug struct{}

func (Click) command()       {}
func (PointerMove) command() {}
func (Drag) command()        {}
func (Pan) command()         {}
func (Zoom) command()        {}
func (Resize) command()      {}
func (AssetLoaded) command() {}
func (FlyToMarker) command() {}
func (ResetView) command()   {}
func (ToggleDebug) command() {}
