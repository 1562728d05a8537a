package gizmokit

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var gizmoNamespace = uuid.MustParse("6f1c2f0e-3a52-4b8e-9d44-1d0c8f6b7a21")

// Gizmo is a transform gizmo configuration. Every setter returns a copy with
// one field changed, so calls can be chained:
//
//	g := New("test_gizmo").
//		ViewMatrix(view).
//		ProjectionMatrix(proj).
//		ModelMatrix(model).
//		Mode(GizmoRotate).
//		Orientation(GizmoGlobal)
type Gizmo struct {
	config Config
}

func New(name string) Gizmo {
	return Gizmo{config: DefaultConfig(name)}
}

func FromConfig(cfg Config) Gizmo {
	return Gizmo{config: cfg}
}

func (g Gizmo) ViewMatrix(m mgl32.Mat4) Gizmo {
	g.config.View = m
	return g
}

func (g Gizmo) ProjectionMatrix(m mgl32.Mat4) Gizmo {
	g.config.Projection = m
	return g
}

func (g Gizmo) ModelMatrix(m mgl32.Mat4) Gizmo {
	g.config.Model = m
	return g
}

func (g Gizmo) Mode(mode GizmoMode) Gizmo {
	g.config.Mode = mode
	return g
}

func (g Gizmo) Orientation(orientation GizmoOrientation) Gizmo {
	g.config.Orientation = orientation
	return g
}

// Viewport sets the screen rectangle the projection maps onto.
func (g Gizmo) Viewport(r Rect) Gizmo {
	g.config.Viewport = r
	return g
}

func (g Gizmo) Snapping(enabled bool) Gizmo {
	g.config.Snapping = enabled
	return g
}

func (g Gizmo) SnapDistance(distance float32) Gizmo {
	g.config.SnapDistance = distance
	return g
}

// SnapAngle sets the rotation snap increment in degrees.
func (g Gizmo) SnapAngle(degrees float32) Gizmo {
	g.config.SnapAngle = degrees
	return g
}

func (g Gizmo) SnapScale(step float32) Gizmo {
	g.config.SnapScale = step
	return g
}

func (g Gizmo) Visuals(v Visuals) Gizmo {
	g.config.Visuals = v
	return g
}

func (g Gizmo) Config() Config {
	return g.config
}

// ID identifies the gizmo's interaction state in a Memory. Gizmos with the
// same name share state.
func (g Gizmo) ID() uuid.UUID {
	return uuid.NewSHA1(gizmoNamespace, []byte(g.config.Name))
}
