package gizmokit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

// configFile is the on-disk layout of a Config. Matrices are written as four
// column arrays, the same layout Mat4FromColumns takes.
type configFile struct {
	Name        string        `toml:"name" json:"name"`
	Model       [4][4]float32 `toml:"model" json:"model"`
	View        [4][4]float32 `toml:"view" json:"view"`
	Projection  [4][4]float32 `toml:"projection" json:"projection"`
	Mode        string        `toml:"mode" json:"mode"`
	Orientation string        `toml:"orientation" json:"orientation"`
	Viewport    [4]float32    `toml:"viewport" json:"viewport"`

	Snapping     bool    `toml:"snapping" json:"snapping"`
	SnapDistance float32 `toml:"snap_distance" json:"snap_distance"`
	SnapAngle    float32 `toml:"snap_angle" json:"snap_angle"`
	SnapScale    float32 `toml:"snap_scale" json:"snap_scale"`

	Visuals visualsFile `toml:"visuals" json:"visuals"`
}

type visualsFile struct {
	StrokeWidth    float32    `toml:"stroke_width" json:"stroke_width"`
	GizmoSize      float32    `toml:"gizmo_size" json:"gizmo_size"`
	InactiveAlpha  float32    `toml:"inactive_alpha" json:"inactive_alpha"`
	HighlightAlpha float32    `toml:"highlight_alpha" json:"highlight_alpha"`
	XColor         [4]float32 `toml:"x_color" json:"x_color"`
	YColor         [4]float32 `toml:"y_color" json:"y_color"`
	ZColor         [4]float32 `toml:"z_color" json:"z_color"`
	CenterColor    [4]float32 `toml:"center_color" json:"center_color"`
}

func toFile(cfg Config) (configFile, error) {
	mode, err := cfg.Mode.MarshalText()
	if err != nil {
		return configFile{}, err
	}
	orientation, err := cfg.Orientation.MarshalText()
	if err != nil {
		return configFile{}, err
	}
	v := cfg.Visuals
	return configFile{
		Name:        cfg.Name,
		Model:       Mat4Columns(cfg.Model),
		View:        Mat4Columns(cfg.View),
		Projection:  Mat4Columns(cfg.Projection),
		Mode:        string(mode),
		Orientation: string(orientation),
		Viewport: [4]float32{
			cfg.Viewport.Min.X(), cfg.Viewport.Min.Y(),
			cfg.Viewport.Width(), cfg.Viewport.Height(),
		},
		Snapping:     cfg.Snapping,
		SnapDistance: cfg.SnapDistance,
		SnapAngle:    cfg.SnapAngle,
		SnapScale:    cfg.SnapScale,
		Visuals: visualsFile{
			StrokeWidth:    v.StrokeWidth,
			GizmoSize:      v.GizmoSize,
			InactiveAlpha:  v.InactiveAlpha,
			HighlightAlpha: v.HighlightAlpha,
			XColor:         v.XColor,
			YColor:         v.YColor,
			ZColor:         v.ZColor,
			CenterColor:    v.CenterColor,
		},
	}, nil
}

// Mode and orientation are parsed here rather than by the decoders so that
// errors keep wrapping ErrInvalidMode and ErrInvalidOrientation.
func (f configFile) config() (Config, error) {
	var mode GizmoMode
	if err := mode.UnmarshalText([]byte(f.Mode)); err != nil {
		return Config{}, err
	}
	var orientation GizmoOrientation
	if err := orientation.UnmarshalText([]byte(f.Orientation)); err != nil {
		return Config{}, err
	}
	v := f.Visuals
	return Config{
		Name:         f.Name,
		Model:        Mat4FromColumns(f.Model),
		View:         Mat4FromColumns(f.View),
		Projection:   Mat4FromColumns(f.Projection),
		Mode:         mode,
		Orientation:  orientation,
		Viewport:     NewRect(f.Viewport[0], f.Viewport[1], f.Viewport[2], f.Viewport[3]),
		Snapping:     f.Snapping,
		SnapDistance: f.SnapDistance,
		SnapAngle:    f.SnapAngle,
		SnapScale:    f.SnapScale,
		Visuals: Visuals{
			StrokeWidth:    v.StrokeWidth,
			GizmoSize:      v.GizmoSize,
			InactiveAlpha:  v.InactiveAlpha,
			HighlightAlpha: v.HighlightAlpha,
			XColor:         v.XColor,
			YColor:         v.YColor,
			ZColor:         v.ZColor,
			CenterColor:    v.CenterColor,
		},
	}, nil
}

// SaveConfig writes cfg as TOML or JSON, picked by the file extension.
func SaveConfig(filename string, cfg Config) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".toml" && ext != ".json" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	f, err := toFile(cfg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}

	var buf bytes.Buffer
	switch ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return fmt.Errorf("encode %s: %w", filename, err)
		}
	case ".json":
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", filename, err)
		}
		buf.Write(data)
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

// LoadConfig reads a file written by SaveConfig. Fields missing from the
// file keep the values of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".toml" && ext != ".json" {
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}

	f, err := toFile(DefaultConfig(""))
	if err != nil {
		return Config{}, err
	}
	if ext == ".toml" {
		_, err = toml.Decode(string(data), &f)
	} else {
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", filename, err)
	}
	cfg, err := f.config()
	if err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", filename, err)
	}
	return cfg, nil
}
