// Copyright (C) 2022-2026, VigilantDoomer
//
// This file is part of VigilantEdit program.
//
// VigilantEdit is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantEdit.  If not, see <https://www.gnu.org/licenses/>.

package bsp

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the distance within which a point is considered to lie on a
// partition line
const Epsilon = 1e-6

// parallelEpsilon guards the cross product of two directions in Intersect
const parallelEpsilon = 1e-12

type Point struct {
	X float64
	Y float64
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func pointOf(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// PartitionLine is an infinite line through Start and End. The endpoints
// only fix the direction.
type PartitionLine struct {
	Start Point
	End   Point
}

func (l PartitionLine) direction() mgl64.Vec2 {
	return l.End.vec().Sub(l.Start.vec())
}

// Classify returns the signed distance from p to the line. Positive values
// are on the right-hand side of Start->End, which is the front side.
// A degenerate line (Start == End) puts every point on it.
func (l PartitionLine) Classify(p Point) float64 {
	d := l.direction()
	length := d.Len()
	if length == 0 {
		return 0
	}
	r := p.vec().Sub(l.Start.vec())
	return (d.Y()*r.X() - d.X()*r.Y()) / length
}

// Intersect returns the point where l crosses other. ok is false when the
// lines are parallel or either one is degenerate.
func (l PartitionLine) Intersect(other PartitionLine) (Point, bool) {
	d1 := l.direction()
	d2 := other.direction()
	denom := cross(d1, d2)
	if math.Abs(denom) <= parallelEpsilon*d1.Len()*d2.Len() {
		return Point{}, false
	}
	t := cross(other.Start.vec().Sub(l.Start.vec()), d2) / denom
	return pointOf(l.Start.vec().Add(d1.Mul(t))), true
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// BoundingBox is an axis-aligned rectangle. Its edges belong to it.
type BoundingBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBox returns a box that contains nothing and becomes the box of the
// first point expanded into it
func EmptyBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

func (b *BoundingBox) Expand(p Point) {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
}

func (b *BoundingBox) Combine(other BoundingBox) {
	if other.IsEmpty() {
		return
	}
	b.Expand(Point{other.MinX, other.MinY})
	b.Expand(Point{other.MaxX, other.MaxY})
}

func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b BoundingBox) Intersects(other BoundingBox) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

// Outcodes for clipSegment, Cohen-Sutherland style
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func (b BoundingBox) outcode(p Point) int {
	code := outInside
	if p.X < b.MinX {
		code |= outLeft
	} else if p.X > b.MaxX {
		code |= outRight
	}
	if p.Y < b.MinY {
		code |= outBottom
	} else if p.Y > b.MaxY {
		code |= outTop
	}
	return code
}

// TouchesSegment reports whether the segment a-b has at least one point in
// common with the box
func (b BoundingBox) TouchesSegment(a, e Point) bool {
	if b.IsEmpty() {
		return false
	}
	c1 := b.outcode(a)
	c2 := b.outcode(e)
	for i := 0; i < 8; i++ {
		if c1|c2 == 0 {
			return true
		}
		if c1&c2 != 0 {
			return false
		}
		code := c1
		if code == 0 {
			code = c2
		}
		var p Point
		dx := e.X - a.X
		dy := e.Y - a.Y
		switch {
		case code&outTop != 0:
			p = Point{a.X + dx*(b.MaxY-a.Y)/dy, b.MaxY}
		case code&outBottom != 0:
			p = Point{a.X + dx*(b.MinY-a.Y)/dy, b.MinY}
		case code&outRight != 0:
			p = Point{b.MaxX, a.Y + dy*(b.MaxX-a.X)/dx}
		default:
			p = Point{b.MinX, a.Y + dy*(b.MinX-a.X)/dx}
		}
		if code == c1 {
			a = p
			c1 = b.outcode(a)
		} else {
			e = p
			c2 = b.outcode(e)
		}
	}
	return c1|c2 == 0
}
