package gizmokit

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"
)

const ringSegments = 48

// Line is a screen-space stroke.
type Line struct {
	From, To mgl32.Vec2
	Width    float32
	Color    color.NRGBA
}

// DrawList is the screen-space geometry of a gizmo for one frame.
type DrawList struct {
	Lines []Line
}

func (dl *DrawList) add(from, to mgl32.Vec2, width float32, c color.NRGBA) {
	dl.Lines = append(dl.Lines, Line{From: from, To: to, Width: width, Color: c})
}

// Draw lays out the gizmo's handles in viewport pixels. The hovered or
// dragged handle is drawn with the highlight alpha. mem may be nil.
func (g Gizmo) Draw(mem *Memory) DrawList {
	var dl DrawList
	f, err := g.frame()
	if err != nil {
		if mem != nil {
			mem.logger.Debugf("gizmo %q: nothing to draw: %v", g.config.Name, err)
		}
		return dl
	}

	highlighted := Handle{Kind: HandleNone, Axis: -1}
	if mem != nil {
		highlighted = mem.Hovered(g)
	}

	vis := g.config.Visuals
	for _, h := range f.handles() {
		alpha := vis.InactiveAlpha
		if h == highlighted {
			alpha = vis.HighlightAlpha
		}
		c := handleColor(vis, h, alpha)

		switch h.Kind {
		case HandleTranslateAxis:
			dl.arrow(f, h, vis.StrokeWidth, c)
		case HandleScaleAxis:
			dl.scaleAxis(f, h, vis.StrokeWidth, c)
		case HandleRotateAxis:
			dl.ring(f, f.axis(h), f.size, vis.StrokeWidth, c)
		case HandleTranslateView:
			dl.ring(f, f.forward.Mul(-1), centerRadius*f.size, vis.StrokeWidth, c)
		case HandleScaleUniform:
			if center, ok := worldToScreen(f.vp, f.viewport, f.origin); ok {
				dl.square(center, centerRadius*vis.GizmoSize, vis.StrokeWidth, c)
			}
		}
	}
	return dl
}

func handleColor(vis Visuals, h Handle, alpha float32) color.NRGBA {
	rgba := vis.CenterColor
	switch h.Axis {
	case 0:
		rgba = vis.XColor
	case 1:
		rgba = vis.YColor
	case 2:
		rgba = vis.ZColor
	}
	return color.NRGBA{
		R: toUint8(rgba[0]),
		G: toUint8(rgba[1]),
		B: toUint8(rgba[2]),
		A: toUint8(rgba[3] * alpha),
	}
}

func toUint8(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

func (dl *DrawList) segment(f *frame, a, b mgl32.Vec3, width float32, c color.NRGBA) (mgl32.Vec2, mgl32.Vec2, bool) {
	sa, okA := worldToScreen(f.vp, f.viewport, a)
	sb, okB := worldToScreen(f.vp, f.viewport, b)
	if !okA || !okB {
		return sa, sb, false
	}
	dl.add(sa, sb, width, c)
	return sa, sb, true
}

func (dl *DrawList) arrow(f *frame, h Handle, width float32, c color.NRGBA) {
	start := f.origin.Add(f.axis(h).Mul(centerRadius * f.size))
	tip := f.origin.Add(f.axis(h).Mul(axisLength * f.size))
	from, to, ok := dl.segment(f, start, tip, width, c)
	if !ok {
		return
	}
	dir := to.Sub(from)
	if dir.Len() < 1e-3 {
		return
	}
	dir = dir.Normalize()
	perp := mgl32.Vec2{-dir.Y(), dir.X()}
	head := width * 3
	back := to.Sub(dir.Mul(head))
	dl.add(to, back.Add(perp.Mul(head*0.6)), width, c)
	dl.add(to, back.Sub(perp.Mul(head*0.6)), width, c)
}

func (dl *DrawList) scaleAxis(f *frame, h Handle, width float32, c color.NRGBA) {
	start := f.origin.Add(f.axis(h).Mul(centerRadius * f.size))
	tip := f.origin.Add(f.axis(h).Mul(axisLength * f.size))
	if _, to, ok := dl.segment(f, start, tip, width, c); ok {
		dl.square(to, width*1.5, width, c)
	}
}

func (dl *DrawList) square(center mgl32.Vec2, half, width float32, c color.NRGBA) {
	corners := [4]mgl32.Vec2{
		center.Add(mgl32.Vec2{-half, -half}),
		center.Add(mgl32.Vec2{half, -half}),
		center.Add(mgl32.Vec2{half, half}),
		center.Add(mgl32.Vec2{-half, half}),
	}
	for i := range corners {
		dl.add(corners[i], corners[(i+1)%4], width, c)
	}
}

func (dl *DrawList) ring(f *frame, normal mgl32.Vec3, radius, width float32, c color.NRGBA) {
	u := normal.Cross(mgl32.Vec3{0, 1, 0})
	if u.Len() < 1e-3 {
		u = normal.Cross(mgl32.Vec3{1, 0, 0})
	}
	u = u.Normalize()
	v := normal.Cross(u).Normalize()

	step := 2 * math.Pi / float64(ringSegments)
	point := func(i int) mgl32.Vec3 {
		a := float64(i) * step
		offset := u.Mul(float32(math.Cos(a))).Add(v.Mul(float32(math.Sin(a))))
		return f.origin.Add(offset.Mul(radius))
	}
	for i := 0; i < ringSegments; i++ {
		dl.segment(f, point(i), point(i+1), width, c)
	}
}

// Rasterize paints every stroke onto dst, blending over what is there.
func (dl DrawList) Rasterize(dst *image.RGBA) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	var z vector.Rasterizer
	for _, l := range dl.Lines {
		dir := l.To.Sub(l.From)
		if dir.Len() < 1e-6 || l.Color.A == 0 {
			continue
		}
		n := mgl32.Vec2{-dir.Y(), dir.X()}.Normalize().Mul(l.Width / 2)
		ox, oy := float32(b.Min.X), float32(b.Min.Y)

		z.Reset(b.Dx(), b.Dy())
		z.DrawOp = draw.Over
		z.MoveTo(l.From.X()+n.X()-ox, l.From.Y()+n.Y()-oy)
		z.LineTo(l.To.X()+n.X()-ox, l.To.Y()+n.Y()-oy)
		z.LineTo(l.To.X()-n.X()-ox, l.To.Y()-n.Y()-oy)
		z.LineTo(l.From.X()-n.X()-ox, l.From.Y()-n.Y()-oy)
		z.ClosePath()
		z.Draw(dst, b, image.NewUniform(l.Color), image.Point{})
	}
}
