package gizmokit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenToWorldRay_Center(t *testing.T) {
	cfg := testGizmo(GizmoTranslate).Config()

	ray, err := ScreenToWorldRay(mgl32.Vec2{400, 400}, cfg.Viewport, cfg.View, cfg.Projection)
	require.NoError(t, err)
	assert.InDelta(t, 9.9, ray.Origin.Z(), 1e-3)
	assert.True(t, ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "direction %v", ray.Direction)
}

func TestScreenToWorldRay_IdentityProjection(t *testing.T) {
	view := mgl32.Translate3D(0, 0, -5)

	ray, err := ScreenToWorldRay(mgl32.Vec2{50, 50}, NewRect(0, 0, 100, 100), view, mgl32.Ident4())
	require.NoError(t, err)
	assert.True(t, ray.Origin.ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, 1e-5), "origin %v", ray.Origin)
	assert.True(t, ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5), "direction %v", ray.Direction)
}

func TestScreenToWorldRay_Errors(t *testing.T) {
	_, err := ScreenToWorldRay(mgl32.Vec2{}, Rect{}, mgl32.Ident4(), mgl32.Ident4())
	assert.ErrorIs(t, err, ErrEmptyViewport)

	_, err = ScreenToWorldRay(mgl32.Vec2{}, NewRect(0, 0, 10, 10), mgl32.Ident4(), mgl32.Mat4{})
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestWorldToScreen(t *testing.T) {
	cfg := testGizmo(GizmoTranslate).Config()
	vp := cfg.Projection.Mul4(cfg.View)

	p, ok := worldToScreen(vp, cfg.Viewport, mgl32.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 400+pxPerUnit, p.X(), 1e-2)
	assert.InDelta(t, 400, p.Y(), 1e-3)

	_, ok = worldToScreen(vp, cfg.Viewport, mgl32.Vec3{0, 0, 20})
	assert.False(t, ok)
}

func TestClosestPoints(t *testing.T) {
	// Ray along -Z crossing the X axis at x=2, one unit above it
	tRay, s, d := closestPoints(mgl32.Vec3{2, 1, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 5, tRay, 1e-5)
	assert.InDelta(t, 2, s, 1e-5)
	assert.InDelta(t, 1, d, 1e-5)

	// Parallel lines fall back to the origin distance
	_, _, d = closestPoints(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 3, d, 1e-5)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, float32(1.5), snap(1.4, 0.5))
	assert.Equal(t, float32(-1), snap(-1.2, 0.5))
	assert.Equal(t, float32(0.3), snap(0.3, 0))
}
