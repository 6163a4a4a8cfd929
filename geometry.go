package efield

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/efield/field"
)

// Geometry constants.
const (
	circleSegments = 32
	arrowHeadSize  = 5.0
	arrowHeadAngle = math.Pi / 6 // 30 degrees either side of the shaft
	maxMiterScale  = 2.0
)

// batch accumulates untextured, vertex-colored triangles that are drawn
// with a single DrawTriangles32 call on the white pixel. Buffers grow to a
// high-water mark and are reused across frames.
type batch struct {
	verts []ebiten.Vertex
	inds  []uint32
}

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// vertex appends one vertex with a premultiplied color and returns its index.
func (b *batch) vertex(x, y float64, c Color) uint32 {
	idx := uint32(len(b.verts))
	a := float32(c.A)
	b.verts = append(b.verts, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	})
	return idx
}

// appendPolyline appends a ribbon of the given width following points.
// For N points: 2N vertices, 6(N-1) indices. Fewer than two points emit
// nothing.
func (b *batch) appendPolyline(points []field.Vec2, width float64, c Color) {
	n := len(points)
	if n < 2 {
		return
	}
	halfW := width / 2
	base := uint32(len(b.verts))

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = perpendicular(points[0], points[1])
		} else if i == n-1 {
			nx, ny = perpendicular(points[n-2], points[n-1])
		} else {
			// Average of adjacent segment normals (miter).
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			// Keep the width at the joint, clamped at sharp corners.
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := math.Min(1/dot, maxMiterScale)
				nx *= scale
				ny *= scale
			}
		}
		p := points[i]
		b.vertex(p.X+nx*halfW, p.Y+ny*halfW, c)
		b.vertex(p.X-nx*halfW, p.Y-ny*halfW, c)
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		v := base + uint32(i*2)
		b.inds = append(b.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}
}

// appendSegment appends a single line segment of the given width.
func (b *batch) appendSegment(p0, p1 field.Vec2, width float64, c Color) {
	pts := [2]field.Vec2{p0, p1}
	b.appendPolyline(pts[:], width, c)
}

// appendTriangle appends one filled triangle.
func (b *batch) appendTriangle(p0, p1, p2 field.Vec2, c Color) {
	i0 := b.vertex(p0.X, p0.Y, c)
	i1 := b.vertex(p1.X, p1.Y, c)
	i2 := b.vertex(p2.X, p2.Y, c)
	b.inds = append(b.inds, i0, i1, i2)
}

// appendDisc appends a filled circle as a triangle fan: one hub vertex plus
// circleSegments rim vertices, 3*circleSegments indices.
func (b *batch) appendDisc(center field.Vec2, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	hub := b.vertex(center.X, center.Y, c)
	for i := 0; i < circleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		b.vertex(center.X+cos*radius, center.Y+sin*radius, c)
	}
	for i := 0; i < circleSegments; i++ {
		next := (i + 1) % circleSegments
		b.inds = append(b.inds, hub, hub+1+uint32(i), hub+1+uint32(next))
	}
}

// appendRing appends a circle outline of the given thickness drawn inward
// from radius: 2*circleSegments vertices, 6*circleSegments indices.
func (b *batch) appendRing(center field.Vec2, radius, thickness float64, c Color) {
	if radius <= 0 || thickness <= 0 {
		return
	}
	inner := math.Max(radius-thickness, 0)
	base := uint32(len(b.verts))
	for i := 0; i < circleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		b.vertex(center.X+cos*radius, center.Y+sin*radius, c)
		b.vertex(center.X+cos*inner, center.Y+sin*inner, c)
	}
	for i := 0; i < circleSegments; i++ {
		o := base + uint32(i*2)
		n := base + uint32(((i+1)%circleSegments)*2)
		b.inds = append(b.inds,
			o, o+1, n,
			o+1, n+1, n,
		)
	}
}

// appendRectOutline appends the outline of r as four quads of the given
// thickness drawn inside r.
func (b *batch) appendRectOutline(r field.Rect, thickness float64, c Color) {
	t := math.Min(thickness, math.Min(r.Width, r.Height)/2)
	if t <= 0 {
		return
	}
	b.appendQuad(r.X, r.Y, r.Width, t, c)                  // top
	b.appendQuad(r.X, r.Y+r.Height-t, r.Width, t, c)       // bottom
	b.appendQuad(r.X, r.Y+t, t, r.Height-2*t, c)           // left
	b.appendQuad(r.X+r.Width-t, r.Y+t, t, r.Height-2*t, c) // right
}

// appendQuad appends an axis-aligned filled rectangle.
func (b *batch) appendQuad(x, y, w, h float64, c Color) {
	tl := b.vertex(x, y, c)
	b.vertex(x+w, y, c)
	b.vertex(x, y+h, c)
	b.vertex(x+w, y+h, c)
	// TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		tl, tl+1, tl+2,
		tl+1, tl+3, tl+2,
	)
}

// appendArrow appends a shaft from start to end plus a filled head at end.
func (b *batch) appendArrow(start, end field.Vec2, width float64, c Color) {
	if start == end {
		return
	}
	b.appendSegment(start, end, width, c)
	left, right := arrowHead(start, end, arrowHeadSize)
	b.appendTriangle(end, left, right, c)
}

// arrowHead returns the two back corners of an arrow head of the given size
// at end, each 30 degrees off the shaft.
func arrowHead(start, end field.Vec2, size float64) (left, right field.Vec2) {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	ls, lc := math.Sincos(angle - arrowHeadAngle)
	rs, rc := math.Sincos(angle + arrowHeadAngle)
	left = field.Vec2{X: end.X - size*lc, Y: end.Y - size*ls}
	right = field.Vec2{X: end.X - size*rc, Y: end.Y - size*rs}
	return left, right
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b field.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
