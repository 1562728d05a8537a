package gizmokit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode        = errors.New("invalid gizmo mode")
	ErrInvalidOrientation = errors.New("invalid gizmo orientation")
)

// GizmoMode selects the manipulation a gizmo performs.
type GizmoMode int

const (
	GizmoTranslate GizmoMode = iota
	GizmoRotate
	GizmoScale
)

var modeNames = map[GizmoMode]string{
	GizmoTranslate: "translate",
	GizmoRotate:    "rotate",
	GizmoScale:     "scale",
}

func (m GizmoMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GizmoMode(%d)", int(m))
}

func (m GizmoMode) MarshalText() ([]byte, error) {
	name, ok := modeNames[m]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(name), nil
}

func (m *GizmoMode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, text)
}

// GizmoOrientation selects the frame the handles are aligned to.
type GizmoOrientation int

const (
	GizmoGlobal GizmoOrientation = iota
	GizmoLocal
)

var orientationNames = map[GizmoOrientation]string{
	GizmoGlobal: "global",
	GizmoLocal:  "local",
}

func (o GizmoOrientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("GizmoOrientation(%d)", int(o))
}

func (o GizmoOrientation) MarshalText() ([]byte, error) {
	name, ok := orientationNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return []byte(name), nil
}

func (o *GizmoOrientation) UnmarshalText(text []byte) error {
	for orientation, name := range orientationNames {
		if name == string(text) {
			*o = orientation
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidOrientation, text)
}
