// Command gizmodemo builds a gizmo configuration from fixed matrices and
// reports that the library links and constructs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmokit"
)

func demoModelMatrix() mgl32.Mat4 {
	return gizmokit.Mat4FromColumns([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// demoViewMatrix moves the world 5 units away from the camera.
func demoViewMatrix() mgl32.Mat4 {
	return gizmokit.Mat4FromColumns([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, -5, 1},
	})
}

// demoProjectionMatrix is a placeholder identity, not a usable camera.
func demoProjectionMatrix() mgl32.Mat4 {
	return gizmokit.Mat4FromColumns([4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func buildGizmo() gizmokit.Gizmo {
	return gizmokit.New("test_gizmo").
		ViewMatrix(demoViewMatrix()).
		ProjectionMatrix(demoProjectionMatrix()).
		ModelMatrix(demoModelMatrix()).
		Mode(gizmokit.GizmoRotate).
		Orientation(gizmokit.GizmoGlobal)
}

func run(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Gizmo library compiled successfully!"); err != nil {
		return err
	}
	_ = buildGizmo()
	_, err := fmt.Fprintln(w, "Gizmo created successfully!")
	return err
}

func main() {
	logger := gizmokit.NewDefaultLogger("gizmodemo", false)
	if err := run(os.Stdout); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
