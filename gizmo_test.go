package gizmokit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New("defaults").Config()

	assert.Equal(t, "defaults", cfg.Name)
	assert.Equal(t, mgl32.Ident4(), cfg.Model)
	assert.Equal(t, mgl32.Ident4(), cfg.View)
	assert.Equal(t, mgl32.Ident4(), cfg.Projection)
	assert.Equal(t, GizmoTranslate, cfg.Mode)
	assert.Equal(t, GizmoGlobal, cfg.Orientation)
	assert.True(t, cfg.Viewport.Empty())
	assert.False(t, cfg.Snapping)
	assert.Equal(t, DefaultVisuals(), cfg.Visuals)
}

func TestBuilder_RoundTrip(t *testing.T) {
	model := mgl32.Translate3D(1, 2, 3)
	view := mgl32.Translate3D(0, 0, -5)
	proj := mgl32.Perspective(1, 1.5, 0.1, 10)
	viewport := NewRect(10, 20, 640, 480)

	g := New("round_trip").
		ViewMatrix(view).
		ProjectionMatrix(proj).
		ModelMatrix(model).
		Mode(GizmoScale).
		Orientation(GizmoLocal).
		Viewport(viewport).
		Snapping(true).
		SnapDistance(0.25).
		SnapAngle(5).
		SnapScale(0.5)

	cfg := g.Config()
	assert.Equal(t, "round_trip", cfg.Name)
	assert.Equal(t, model, cfg.Model)
	assert.Equal(t, view, cfg.View)
	assert.Equal(t, proj, cfg.Projection)
	assert.Equal(t, GizmoScale, cfg.Mode)
	assert.Equal(t, GizmoLocal, cfg.Orientation)
	assert.Equal(t, viewport, cfg.Viewport)
	assert.True(t, cfg.Snapping)
	assert.Equal(t, float32(0.25), cfg.SnapDistance)
	assert.Equal(t, float32(5), cfg.SnapAngle)
	assert.Equal(t, float32(0.5), cfg.SnapScale)

	assert.Equal(t, g, FromConfig(cfg))
}

func TestBuilder_DoesNotMutateReceiver(t *testing.T) {
	base := New("base")
	rotated := base.Mode(GizmoRotate)
	local := rotated.Orientation(GizmoLocal)

	assert.Equal(t, GizmoTranslate, base.Config().Mode)
	assert.Equal(t, GizmoRotate, rotated.Config().Mode)
	assert.Equal(t, GizmoGlobal, rotated.Config().Orientation)
	assert.Equal(t, GizmoLocal, local.Config().Orientation)
}

func TestGizmo_ID(t *testing.T) {
	a := New("a")
	assert.Equal(t, a.ID(), New("a").Mode(GizmoScale).ID())
	assert.NotEqual(t, a.ID(), New("b").ID())
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	assert.Equal(t, float32(100), r.Width())
	assert.Equal(t, float32(50), r.Height())
	assert.True(t, r.Contains(mgl32.Vec2{10, 20}))
	assert.False(t, r.Contains(mgl32.Vec2{110, 20}))
	assert.True(t, Rect{}.Empty())
}
