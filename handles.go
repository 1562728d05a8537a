package gizmokit

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleTranslateAxis
	// Free translation on the camera-facing plane.
	HandleTranslateView
	HandleRotateAxis
	HandleScaleAxis
	HandleScaleUniform
)

func (k HandleKind) String() string {
	switch k {
	case HandleNone:
		return "none"
	case HandleTranslateAxis:
		return "translate-axis"
	case HandleTranslateView:
		return "translate-view"
	case HandleRotateAxis:
		return "rotate-axis"
	case HandleScaleAxis:
		return "scale-axis"
	case HandleScaleUniform:
		return "scale-uniform"
	}
	return fmt.Sprintf("HandleKind(%d)", int(k))
}

// Handle identifies one grabbable part of a gizmo. Axis is 0, 1 or 2 for
// X, Y and Z, and -1 for center handles.
type Handle struct {
	Kind HandleKind
	Axis int
}

func (h Handle) String() string {
	if h.Axis < 0 {
		return h.Kind.String()
	}
	return fmt.Sprintf("%s[%c]", h.Kind, "xyz"[h.Axis])
}

const (
	axisLength    = 1.0
	axisReach     = 1.1
	axisTolerance = 0.125
	ringTolerance = 0.2
	centerRadius  = 0.2
)

// frame is the world-space layout of a gizmo for one set of matrices.
type frame struct {
	vp       mgl32.Mat4
	viewport Rect

	origin    mgl32.Vec3
	rotation  mgl32.Quat
	scale     mgl32.Vec3
	axes      [3]mgl32.Vec3
	localAxes [3]mgl32.Vec3
	forward   mgl32.Vec3
	right     mgl32.Vec3
	size      float32

	mode GizmoMode
}

var unitAxes = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (g Gizmo) frame() (*frame, error) {
	cfg := g.config
	if cfg.Viewport.Empty() {
		return nil, ErrEmptyViewport
	}
	vp := cfg.Projection.Mul4(cfg.View)
	if singular(vp) {
		return nil, ErrSingularMatrix
	}

	f := &frame{
		vp:       vp,
		viewport: cfg.Viewport,
		mode:     cfg.Mode,
	}
	f.origin, f.rotation, f.scale = decompose(cfg.Model)

	for i, axis := range unitAxes {
		f.localAxes[i] = f.rotation.Rotate(axis).Normalize()
		if cfg.Orientation == GizmoLocal {
			f.axes[i] = f.localAxes[i]
		} else {
			f.axes[i] = axis
		}
	}

	invView := cfg.View.Inv()
	f.forward = invView.Col(2).Vec3().Mul(-1).Normalize()
	f.right = invView.Col(0).Vec3().Normalize()

	// World size of GizmoSize pixels at the gizmo's depth
	f.size = 1
	a, okA := worldToScreen(vp, cfg.Viewport, f.origin)
	b, okB := worldToScreen(vp, cfg.Viewport, f.origin.Add(f.right))
	if okA && okB {
		if px := b.Sub(a).Len(); px > 1e-6 {
			f.size = cfg.Visuals.GizmoSize / px
		}
	}
	return f, nil
}

func (f *frame) handles() []Handle {
	switch f.mode {
	case GizmoRotate:
		return []Handle{
			{Kind: HandleRotateAxis, Axis: 0},
			{Kind: HandleRotateAxis, Axis: 1},
			{Kind: HandleRotateAxis, Axis: 2},
		}
	case GizmoScale:
		return []Handle{
			{Kind: HandleScaleUniform, Axis: -1},
			{Kind: HandleScaleAxis, Axis: 0},
			{Kind: HandleScaleAxis, Axis: 1},
			{Kind: HandleScaleAxis, Axis: 2},
		}
	default:
		return []Handle{
			{Kind: HandleTranslateView, Axis: -1},
			{Kind: HandleTranslateAxis, Axis: 0},
			{Kind: HandleTranslateAxis, Axis: 1},
			{Kind: HandleTranslateAxis, Axis: 2},
		}
	}
}

// axis returns the world direction a handle works along.
func (f *frame) axis(h Handle) mgl32.Vec3 {
	if h.Axis < 0 {
		return f.forward.Mul(-1)
	}
	// Scaling a rotated object only makes sense along its own axes
	if h.Kind == HandleScaleAxis {
		return f.localAxes[h.Axis]
	}
	return f.axes[h.Axis]
}

// hit tests a single handle and returns the distance along the ray.
func (f *frame) hit(h Handle, ray Ray) (float32, bool) {
	switch h.Kind {
	case HandleTranslateAxis, HandleScaleAxis:
		t, s, d := closestPoints(ray.Origin, ray.Direction, f.origin, f.axis(h))
		if t > 0 && s >= centerRadius*f.size && s <= axisReach*f.size && d < axisTolerance*f.size {
			return t, true
		}
	case HandleRotateAxis:
		axis := f.axis(h)
		t, ok := rayPlane(ray, f.origin, axis)
		if ok && t > 0 {
			dist := ray.At(t).Sub(f.origin).Len()
			if math.Abs(float64(dist-f.size)) < float64(ringTolerance*f.size) {
				return t, true
			}
		}
	case HandleTranslateView, HandleScaleUniform:
		t := f.origin.Sub(ray.Origin).Dot(ray.Direction)
		if t > 0 && ray.At(t).Sub(f.origin).Len() < centerRadius*f.size {
			return t, true
		}
	}
	return 0, false
}

// pick returns the nearest handle under the ray.
func (f *frame) pick(ray Ray) Handle {
	best := Handle{Kind: HandleNone, Axis: -1}
	minT := float32(math.MaxFloat32)
	for _, h := range f.handles() {
		if t, ok := f.hit(h, ray); ok && t < minT {
			minT = t
			best = h
		}
	}
	return best
}
