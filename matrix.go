package gizmokit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mat4FromColumns builds a matrix from four column arrays. A literal written
// row by row in source therefore reads as the transposed matrix, with the
// translation in the last inner array.
func Mat4FromColumns(cols [4][4]float32) mgl32.Mat4 {
	var m mgl32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = cols[c][r]
		}
	}
	return m
}

// Mat4Columns is the inverse of Mat4FromColumns.
func Mat4Columns(m mgl32.Mat4) [4][4]float32 {
	var cols [4][4]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			cols[c][r] = m[c*4+r]
		}
	}
	return cols
}

// decompose splits an affine matrix into translation, rotation and scale.
// Shear is discarded.
func decompose(m mgl32.Mat4) (mgl32.Vec3, mgl32.Quat, mgl32.Vec3) {
	translation := m.Col(3).Vec3()

	x := m.Col(0).Vec3()
	y := m.Col(1).Vec3()
	z := m.Col(2).Vec3()
	scale := mgl32.Vec3{x.Len(), y.Len(), z.Len()}

	// Mirrored bases keep their handedness in the scale
	if x.Cross(y).Dot(z) < 0 {
		scale[0] = -scale[0]
	}

	rot := mgl32.Ident3()
	for i, axis := range [3]mgl32.Vec3{x, y, z} {
		if math.Abs(float64(scale[i])) < 1e-8 {
			continue
		}
		axis = axis.Mul(1.0 / scale[i])
		rot.SetCol(i, axis)
	}

	return translation, mgl32.Mat4ToQuat(rot.Mat4()).Normalize(), scale
}

// compose builds T * R * S.
func compose(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())
	r := rotation.Mat4()
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(r).Mul4(s)
}

func singular(m mgl32.Mat4) bool {
	return math.Abs(float64(m.Det())) < 1e-12
}
