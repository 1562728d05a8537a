package gizmokit

import "github.com/go-gl/mathgl/mgl32"

// Rect is a screen-space rectangle in pixels, origin at the top-left.
type Rect struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

func NewRect(x, y, width, height float32) Rect {
	return Rect{Min: mgl32.Vec2{x, y}, Max: mgl32.Vec2{x + width, y + height}}
}

func (r Rect) Width() float32  { return r.Max.X() - r.Min.X() }
func (r Rect) Height() float32 { return r.Max.Y() - r.Min.Y() }

func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() < r.Max.X() && p.Y() >= r.Min.Y() && p.Y() < r.Max.Y()
}

// Visuals controls how handles are sized and colored.
type Visuals struct {
	// Width of handle strokes in pixels.
	StrokeWidth float32
	// Length of the axis handles in pixels.
	GizmoSize      float32
	InactiveAlpha  float32
	HighlightAlpha float32
	XColor         [4]float32
	YColor         [4]float32
	ZColor         [4]float32
	CenterColor    [4]float32
}

func DefaultVisuals() Visuals {
	return Visuals{
		StrokeWidth:    4,
		GizmoSize:      75,
		InactiveAlpha:  0.5,
		HighlightAlpha: 0.9,
		XColor:         [4]float32{1, 0, 0.25, 1},
		YColor:         [4]float32{0.3, 1, 0, 1},
		ZColor:         [4]float32{0, 0.55, 1, 1},
		CenterColor:    [4]float32{1, 1, 1, 1},
	}
}

// Config is everything a Gizmo is built from.
type Config struct {
	Name        string
	Model       mgl32.Mat4
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	Mode        GizmoMode
	Orientation GizmoOrientation
	Viewport    Rect

	Snapping     bool
	SnapDistance float32
	// Degrees.
	SnapAngle float32
	SnapScale float32

	Visuals Visuals
}

func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		Model:        mgl32.Ident4(),
		View:         mgl32.Ident4(),
		Projection:   mgl32.Ident4(),
		Mode:         GizmoTranslate,
		Orientation:  GizmoGlobal,
		SnapDistance: 0.5,
		SnapAngle:    15,
		SnapScale:    0.1,
		Visuals:      DefaultVisuals(),
	}
}
