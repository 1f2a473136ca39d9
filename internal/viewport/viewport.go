// Package viewport tracks the pan offset and zoom scale for rendering the
// laid-out skill graph. It is UI-toolkit agnostic: the shell translates
// its pointer/wheel/key events into the calls here and combines the
// transform with layout coordinates at draw time. The viewport stores no
// node data.
package viewport

// Scale bounds and input sensitivity.
const (
	MinScale = 0.35
	MaxScale = 3.0

	// WheelSensitivity converts a raw wheel delta into a scale change.
	WheelSensitivity = 0.0015
)

// Viewport is the pan/zoom state. Zero value is not usable; construct
// with New so the default scale is recorded for Reset.
type Viewport struct {
	TranslateX float64
	TranslateY float64
	Scale      float64

	defaultScale float64

	dragging bool
	lastX    float64
	lastY    float64
}

// New creates a viewport at the origin with the given default scale.
// The default is clamped like every other scale update.
func New(defaultScale float64) *Viewport {
	v := &Viewport{defaultScale: clamp(defaultScale)}
	v.Scale = v.defaultScale
	return v
}

// PointerDown begins a drag at the given canvas position.
func (v *Viewport) PointerDown(x, y float64) {
	v.dragging = true
	v.lastX = x
	v.lastY = y
}

// PointerMove pans by the raw pixel delta from the previous pointer
// position. No-op unless a drag is in progress.
func (v *Viewport) PointerMove(x, y float64) {
	if !v.dragging {
		return
	}
	v.TranslateX += x - v.lastX
	v.TranslateY += y - v.lastY
	v.lastX = x
	v.lastY = y
}

// PointerUp ends the drag.
func (v *Viewport) PointerUp() {
	v.dragging = false
}

// PointerLeave ends the drag when the pointer exits the canvas.
func (v *Viewport) PointerLeave() {
	v.dragging = false
}

// Dragging reports whether a drag is in progress.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// Wheel applies a raw wheel delta: scale decreases as delta grows,
// clamped on every update.
func (v *Viewport) Wheel(delta float64) {
	v.Scale = clamp(v.Scale - delta*WheelSensitivity)
}

// ZoomBy applies a direct scale change (keyboard zoom), clamped.
func (v *Viewport) ZoomBy(delta float64) {
	v.Scale = clamp(v.Scale + delta)
}

// Pan applies a direct pan delta (keyboard pan).
func (v *Viewport) Pan(dx, dy float64) {
	v.TranslateX += dx
	v.TranslateY += dy
}

// Reset restores the origin translation and the default scale.
func (v *Viewport) Reset() {
	v.TranslateX = 0
	v.TranslateY = 0
	v.Scale = v.defaultScale
	v.dragging = false
}

// Apply transforms a layout coordinate into canvas space.
func (v *Viewport) Apply(x, y float64) (float64, float64) {
	return x*v.Scale + v.TranslateX, y*v.Scale + v.TranslateY
}

func clamp(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
