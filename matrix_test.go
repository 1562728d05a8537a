package gizmokit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMat4FromColumns(t *testing.T) {
	m := Mat4FromColumns([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, -5, 1},
	})

	assert.Equal(t, mgl32.Translate3D(0, 0, -5), m)
	assert.Equal(t, float32(-5), m.At(2, 3))
	assert.Equal(t, [4][4]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, -5, 1}}, Mat4Columns(m))
}

func TestDecompose(t *testing.T) {
	translation := mgl32.Vec3{1, -2, 3}
	rotation := mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize())
	scale := mgl32.Vec3{2, 3, 4}

	tr, rot, sc := decompose(compose(translation, rotation, scale))

	assert.True(t, tr.ApproxEqualThreshold(translation, 1e-5), "translation %v", tr)
	assert.True(t, sc.ApproxEqualThreshold(scale, 1e-4), "scale %v", sc)
	assert.True(t, rot.OrientationEqualThreshold(rotation, 1e-4), "rotation %v", rot)
}

func TestDecompose_Identity(t *testing.T) {
	tr, rot, sc := decompose(mgl32.Ident4())
	assert.Equal(t, mgl32.Vec3{}, tr)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, sc)
	assert.True(t, rot.OrientationEqualThreshold(mgl32.QuatIdent(), 1e-6))
}
