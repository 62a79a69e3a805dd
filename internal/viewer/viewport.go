package viewer

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}
