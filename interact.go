package gizmokit

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Input is the pointer state for one frame. Cursor is in pixels from the
// top-left corner of the window.
type Input struct {
	Cursor      mgl32.Vec2
	PrimaryDown bool
}

// Result is the outcome of an active drag. The deltas are measured against
// the model matrix at the moment the drag started.
type Result struct {
	Transform   mgl32.Mat4
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3

	DeltaTranslation mgl32.Vec3
	DeltaRotation    mgl32.Quat
	DeltaScale       mgl32.Vec3

	Mode   GizmoMode
	Handle Handle
}

type drag struct {
	handle Handle
	axis   mgl32.Vec3
	origin mgl32.Vec3
	normal mgl32.Vec3

	startTranslation mgl32.Vec3
	startRotation    mgl32.Quat
	startScale       mgl32.Vec3

	startAxisParam float32
	startHit       mgl32.Vec3
	startDir       mgl32.Vec3
	startCursor    mgl32.Vec2

	last Result
}

type interaction struct {
	hovered     Handle
	active      *drag
	primaryDown bool
}

// Memory holds per-gizmo interaction state between frames, keyed by
// Gizmo.ID. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	states map[uuid.UUID]*interaction
	logger Logger
}

func NewMemory(logger Logger) *Memory {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Memory{
		states: make(map[uuid.UUID]*interaction),
		logger: logger,
	}
}

func (m *Memory) state(id uuid.UUID) *interaction {
	st, ok := m.states[id]
	if !ok {
		st = &interaction{hovered: Handle{Kind: HandleNone, Axis: -1}}
		m.states[id] = st
	}
	return st
}

// Hovered returns the handle under the cursor as of the last Interact call.
// While dragging it is the dragged handle.
func (m *Memory) Hovered(g Gizmo) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[g.ID()]
	if !ok {
		return Handle{Kind: HandleNone, Axis: -1}
	}
	if st.active != nil {
		return st.active.handle
	}
	return st.hovered
}

func (m *Memory) Dragging(g Gizmo) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[g.ID()]
	return ok && st.active != nil
}

// Forget drops the state of a gizmo, cancelling any drag in progress.
func (m *Memory) Forget(g Gizmo) {
	m.mu.Lock()
	delete(m.states, g.ID())
	m.mu.Unlock()
}

// Interact advances the gizmo by one frame of input. It reports a Result
// only while a handle is being dragged. A nil mem never interacts.
func (g Gizmo) Interact(mem *Memory, in Input) (Result, bool) {
	if mem == nil {
		return Result{}, false
	}
	mem.mu.Lock()
	defer mem.mu.Unlock()

	st := mem.state(g.ID())
	justPressed := in.PrimaryDown && !st.primaryDown
	justReleased := !in.PrimaryDown && st.primaryDown
	st.primaryDown = in.PrimaryDown

	if justReleased && st.active != nil {
		mem.logger.Debugf("gizmo %q: released %s", g.config.Name, st.active.handle)
		st.active = nil
	}

	f, err := g.frame()
	if err != nil {
		mem.logger.Debugf("gizmo %q: no interaction: %v", g.config.Name, err)
		st.hovered = Handle{Kind: HandleNone, Axis: -1}
		st.active = nil
		return Result{}, false
	}
	ray, err := ScreenToWorldRay(in.Cursor, g.config.Viewport, g.config.View, g.config.Projection)
	if err != nil {
		mem.logger.Debugf("gizmo %q: no interaction: %v", g.config.Name, err)
		return Result{}, false
	}

	if st.active == nil {
		st.hovered = Handle{Kind: HandleNone, Axis: -1}
		if g.config.Viewport.Contains(in.Cursor) {
			st.hovered = f.pick(ray)
		}
		if justPressed && st.hovered.Kind != HandleNone {
			st.active = f.beginDrag(st.hovered, ray, in.Cursor)
			st.active.last = f.result(st.active, f.origin, f.rotation, f.scale)
			mem.logger.Debugf("gizmo %q: grabbed %s", g.config.Name, st.hovered)
		}
	}

	if st.active == nil || !in.PrimaryDown {
		return Result{}, false
	}

	if res, ok := g.updateDrag(f, st.active, ray, in.Cursor); ok {
		st.active.last = res
	}
	return st.active.last, true
}

func (f *frame) beginDrag(h Handle, ray Ray, cursor mgl32.Vec2) *drag {
	d := &drag{
		handle:           h,
		axis:             f.axis(h),
		origin:           f.origin,
		normal:           f.forward.Mul(-1),
		startTranslation: f.origin,
		startRotation:    f.rotation,
		startScale:       f.scale,
		startCursor:      cursor,
	}

	switch h.Kind {
	case HandleTranslateAxis, HandleScaleAxis:
		_, s, _ := closestPoints(ray.Origin, ray.Direction, d.origin, d.axis)
		d.startAxisParam = s
	case HandleRotateAxis:
		if t, ok := rayPlane(ray, d.origin, d.axis); ok {
			d.startDir = ray.At(t).Sub(d.origin).Normalize()
		}
	case HandleTranslateView:
		if t, ok := rayPlane(ray, d.origin, d.normal); ok {
			d.startHit = ray.At(t)
		} else {
			d.startHit = d.origin
		}
	}
	return d
}

// Scale drags never collapse or mirror the object.
const minScaleFactor = 1e-3

func (g Gizmo) updateDrag(f *frame, d *drag, ray Ray, cursor mgl32.Vec2) (Result, bool) {
	cfg := g.config
	translation := d.startTranslation
	rotation := d.startRotation
	scale := d.startScale

	switch d.handle.Kind {
	case HandleTranslateAxis:
		s, ok := axisParam(ray, d.origin, d.axis)
		if !ok {
			return Result{}, false
		}
		delta := s - d.startAxisParam
		if cfg.Snapping {
			delta = snap(delta, cfg.SnapDistance)
		}
		translation = d.startTranslation.Add(d.axis.Mul(delta))

	case HandleTranslateView:
		t, ok := rayPlane(ray, d.origin, d.normal)
		if !ok {
			return Result{}, false
		}
		delta := ray.At(t).Sub(d.startHit)
		if cfg.Snapping {
			delta = mgl32.Vec3{
				snap(delta.X(), cfg.SnapDistance),
				snap(delta.Y(), cfg.SnapDistance),
				snap(delta.Z(), cfg.SnapDistance),
			}
		}
		translation = d.startTranslation.Add(delta)

	case HandleRotateAxis:
		t, ok := rayPlane(ray, d.origin, d.axis)
		if !ok || t <= 0 {
			return Result{}, false
		}
		current := ray.At(t).Sub(d.origin)
		if current.Len() < 1e-6 || d.startDir.Len() < 1e-6 {
			return Result{}, false
		}
		current = current.Normalize()

		cosTheta := mgl32.Clamp(current.Dot(d.startDir), -1.0, 1.0)
		angle := float32(math.Acos(float64(cosTheta)))
		if d.startDir.Cross(current).Dot(d.axis) < 0 {
			angle = -angle
		}
		if cfg.Snapping {
			angle = snap(angle, mgl32.DegToRad(cfg.SnapAngle))
		}
		rotation = mgl32.QuatRotate(angle, d.axis).Mul(d.startRotation).Normalize()

	case HandleScaleAxis:
		s, ok := axisParam(ray, d.origin, d.axis)
		if !ok || d.startAxisParam <= 1e-6 {
			return Result{}, false
		}
		factor := s / d.startAxisParam
		if cfg.Snapping {
			factor = 1 + snap(factor-1, cfg.SnapScale)
		}
		factor = max(factor, minScaleFactor)
		scale[d.handle.Axis] = d.startScale[d.handle.Axis] * factor

	case HandleScaleUniform:
		factor := 1 + (cursor.X()-d.startCursor.X())/cfg.Visuals.GizmoSize
		if cfg.Snapping {
			factor = 1 + snap(factor-1, cfg.SnapScale)
		}
		factor = max(factor, minScaleFactor)
		scale = d.startScale.Mul(factor)

	default:
		return Result{}, false
	}

	return f.result(d, translation, rotation, scale), true
}

func (f *frame) result(d *drag, translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) Result {
	deltaScale := mgl32.Vec3{1, 1, 1}
	for i := 0; i < 3; i++ {
		if d.startScale[i] != 0 {
			deltaScale[i] = scale[i] / d.startScale[i]
		}
	}
	return Result{
		Transform:        compose(translation, rotation, scale),
		Translation:      translation,
		Rotation:         rotation,
		Scale:            scale,
		DeltaTranslation: translation.Sub(d.startTranslation),
		DeltaRotation:    rotation.Mul(d.startRotation.Inverse()).Normalize(),
		DeltaScale:       deltaScale,
		Mode:             f.mode,
		Handle:           d.handle,
	}
}

// axisParam projects the ray onto the axis line. Rays nearly parallel to the
// axis are rejected.
func axisParam(ray Ray, origin, axis mgl32.Vec3) (float32, bool) {
	r := ray.Origin.Sub(origin)
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(axis)
	e := axis.Dot(axis)
	f := axis.Dot(r)
	det := a*e - b*b
	if det <= 0.01 {
		return 0, false
	}
	c := ray.Direction.Dot(r)
	return (a*f - b*c) / det, true
}

func snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	return float32(math.Round(float64(v/step))) * step
}
