package gizmokit

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrSingularMatrix = errors.New("view-projection matrix is not invertible")
	ErrEmptyViewport  = errors.New("viewport is empty")
)

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToWorldRay casts a ray from the near plane through the cursor.
// Direction is normalized.
func ScreenToWorldRay(cursor mgl32.Vec2, viewport Rect, view, proj mgl32.Mat4) (Ray, error) {
	if viewport.Empty() {
		return Ray{}, ErrEmptyViewport
	}
	vp := proj.Mul4(view)
	if singular(vp) {
		return Ray{}, ErrSingularMatrix
	}
	inv := vp.Inv()

	ndcX := 2*(cursor.X()-viewport.Min.X())/viewport.Width() - 1
	ndcY := 1 - 2*(cursor.Y()-viewport.Min.Y())/viewport.Height()

	near := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	dir := far.Sub(near)
	if dir.Len() < 1e-12 {
		return Ray{}, ErrSingularMatrix
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, nil
}

func unproject(inv mgl32.Mat4, clip mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(clip)
	if p.W() != 0 {
		return p.Vec3().Mul(1 / p.W())
	}
	return p.Vec3()
}

// worldToScreen projects p into viewport pixels. ok is false for points at
// or behind the camera plane.
func worldToScreen(vp mgl32.Mat4, viewport Rect, p mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := viewport.Min.X() + (ndc.X()+1)*0.5*viewport.Width()
	y := viewport.Min.Y() + (1-ndc.Y())*0.5*viewport.Height()
	return mgl32.Vec2{x, y}, true
}

// closestPoints returns the ray parameter t, the axis parameter s and the
// distance between the two closest points of ray (ro, rd) and line (ao, ad).
func closestPoints(ro, rd, ao, ad mgl32.Vec3) (float32, float32, float32) {
	r := ro.Sub(ao)
	a := rd.Dot(rd)
	b := rd.Dot(ad)
	e := ad.Dot(ad)
	f := ad.Dot(r)

	det := a*e - b*b
	if det < 1e-6 {
		return 0, 0, r.Len()
	}

	c := rd.Dot(r)
	t := (b*f - c*e) / det
	s := (a*f - b*c) / det

	p1 := ro.Add(rd.Mul(t))
	p2 := ao.Add(ad.Mul(s))
	return t, s, p1.Sub(p2).Len()
}

// rayPlane intersects a ray with the plane through point with the given
// normal. ok is false when the ray is parallel to the plane.
func rayPlane(ray Ray, point, normal mgl32.Vec3) (float32, bool) {
	denom := ray.Direction.Dot(normal)
	if math.Abs(float64(denom)) < 1e-6 {
		return 0, false
	}
	return point.Sub(ray.Origin).Dot(normal) / denom, true
}
